package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.HTTP.Addr != ":8080" {
		t.Fatalf("unexpected http addr %q", cfg.HTTP.Addr)
	}
	if cfg.Store.Backend != "file" || cfg.Store.QuotaBytes != 5242880 {
		t.Fatalf("unexpected store defaults: %+v", cfg.Store)
	}
	if cfg.Catalog.ChunkSize != 100 {
		t.Fatalf("unexpected chunk size %d", cfg.Catalog.ChunkSize)
	}
	if cfg.Notify.HistoryCap != 50 {
		t.Fatalf("unexpected history cap %d", cfg.Notify.HistoryCap)
	}
	if cfg.Watcher.Interval != 2*time.Second {
		t.Fatalf("unexpected watcher interval %s", cfg.Watcher.Interval)
	}
	if !cfg.Kafka.Enabled || cfg.Kafka.Topic != "shopfront.orders" {
		t.Fatalf("unexpected kafka defaults: %+v", cfg.Kafka)
	}
	// пустая группа по умолчанию: уникальная группа на экземпляр (broadcast)
	if cfg.Kafka.GroupID != "" {
		t.Fatalf("group id must default to empty, got %q", cfg.Kafka.GroupID)
	}
}
