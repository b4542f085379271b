package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/craftline/shopfront/config"
	"github.com/craftline/shopfront/internal/cart"
	"github.com/craftline/shopfront/internal/catalog"
	"github.com/craftline/shopfront/internal/kvstore"
	kvfile "github.com/craftline/shopfront/internal/kvstore/file"
	kvpg "github.com/craftline/shopfront/internal/kvstore/postgres"
	"github.com/craftline/shopfront/internal/notify"
	"github.com/craftline/shopfront/internal/orders"
	"github.com/craftline/shopfront/internal/pagebuf"
	"github.com/craftline/shopfront/internal/ports"
	rest "github.com/craftline/shopfront/internal/transport/http"
	"github.com/craftline/shopfront/internal/usecase"
	"github.com/craftline/shopfront/pkg/logger"
	"github.com/craftline/shopfront/pkg/metrics"
	"github.com/craftline/shopfront/pkg/telemetry"
	"github.com/craftline/shopfront/pkg/validate"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, consumer, watcher).
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	Consumer        ports.MessageConsumer // nil: лента событий выключена
	Watcher         *kvstore.Watcher
	gracefulTimeout time.Duration
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// newStore — выбор бэкенда хранилища по конфигурации.
// Возвращает хранилище и функцию закрытия пула (no-op для файлового).
func newStore(ctx context.Context, cfg *config.Config, log ports.Logger) (ports.KVStore, func(), error) {
	switch strings.ToLower(cfg.Store.Backend) {
	case "file":
		st, err := kvfile.New(cfg.Store.Dir, cfg.Store.QuotaBytes, log)
		if err != nil {
			return nil, nil, err
		}
		return st, func() {}, nil
	case "postgres":
		pool, err := kvpg.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
		if err != nil {
			return nil, nil, err
		}
		return kvpg.New(pool, cfg.Store.QuotaBytes, log), pool.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Хранилище состояния (file | postgres).
	store, closeStore, err := newStore(ctx, cfg, logg)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Клиент каталога и буферный кэш админ-таблицы.
	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.Token, cfg.Catalog.Timeout, logg)
	adminCatalog := pagebuf.New(catalogClient, cfg.Catalog.ChunkSize, logg)

	// Корзина и центр уведомлений: состояние поднимается из хранилища.
	cartManager := cart.NewManager(store, logg)
	if err := cartManager.Load(ctx); err != nil {
		logg.Warnf(ctx, "cart load failed, starting empty: %v", err)
	}
	center := notify.NewCenter(store, cfg.Notify.HistoryCap, logg)
	center.Load(ctx)

	// Публикатор событий (best-effort; может быть выключен конфигурацией).
	var publisher ports.EventPublisher
	if cfg.Kafka.Enabled {
		publisher = notify.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logg)
	}

	// Реестр заказов.
	registry := orders.NewRegistry(store, catalogClient, publisher, center, logg)
	if err := registry.Load(ctx); err != nil {
		logg.Warnf(ctx, "registry load failed, starting empty: %v", err)
	}

	// Наблюдатель хранилища: резервный путь сходимости между экземплярами.
	watcher := kvstore.NewWatcher(store, kvstore.KeyOrders, cfg.Watcher.Interval, registry.HandleExternalChange, logg)

	// Консьюмер ленты событий (основной путь сходимости).
	var consumer ports.MessageConsumer
	if cfg.Kafka.Enabled {
		kafkaCfg := notify.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			GroupID:        cfg.Kafka.GroupID,
			Topic:          cfg.Kafka.Topic,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}
		consumer = notify.NewConsumer(&kafkaCfg, notify.NewFeedHandler(registry, center), logg)
	}

	// Прикладной слой.
	orderValidator := validate.NewOrderValidator()
	checkout := usecase.NewCheckoutService(cartManager, registry, orderValidator, logg)

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(cartManager, checkout, registry, center, adminCatalog, catalogClient, logg, cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Consumer:        consumer,
		Watcher:         watcher,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				logg.Warnf(ctx, "consumer close error: %v", err)
			}
		}
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				logg.Warnf(ctx, "publisher close error: %v", err)
			}
		}
		closeStore()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер, консьюмера и наблюдателя; ждёт отмены контекста
// или фоновой ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 3)

	if a.Consumer != nil {
		go func() {
			a.Logger.Infof(ctx, "event consumer starting")
			if err := a.Consumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	if a.Watcher != nil {
		go func() {
			a.Logger.Infof(ctx, "store watcher starting")
			if err := a.Watcher.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Warnf(ctx, "background error: %v", err)
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if a.Consumer != nil {
		if err := a.Consumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
