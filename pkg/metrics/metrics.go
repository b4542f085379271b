package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	CartOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_operations_total",
			Help: "Cart mutations by outcome",
		},
		[]string{"outcome"}, // added|stock_limited|out_of_stock|removed|cleared
	)
	OrdersCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_created_total",
			Help: "Orders registered locally",
		},
	)
	RegistryEvictions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "registry_evictions_total",
			Help: "Orders evicted from the registry under quota pressure",
		},
	)
	RegistrySize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "registry_size",
			Help: "Orders currently in the local registry",
		},
	)
)

var (
	BufferCacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "buffer_cache_operations_total",
			Help: "Paginated buffer cache operations",
		},
		[]string{"op"}, // hit|fetch|refresh
	)
	BufferCacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "buffer_cache_size",
			Help: "Entries currently buffered",
		},
	)
)

var (
	EventsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_published_total",
			Help: "Change-feed events published",
		},
		[]string{"type"},
	)
	EventsConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_consumed_total",
			Help: "Change-feed events fetched from the broker",
		},
		[]string{"topic"},
	)
	EventsProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_processed_total",
			Help: "Change-feed events handled successfully",
		},
		[]string{"topic"},
	)
	EventsFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "events_failed_total",
			Help: "Change-feed events skipped or retried",
		},
		[]string{"topic"},
	)
)

func MustRegister() {
	prometheus.MustRegister(
		CartOps, OrdersCreated, RegistryEvictions, RegistrySize,
		BufferCacheOps, BufferCacheSize,
		EventsPublished, EventsConsumed, EventsProcessed, EventsFailed,
	)
}
