package kvstore

import (
	"context"
	"time"

	"github.com/craftline/shopfront/internal/ports"
)

// Watcher — poll-наблюдатель за ключом хранилища: замечает внешние записи
// (другой экземпляр сервиса) и дёргает обработчик. Это резервный путь
// сходимости для экземпляров, не получивших широковещательное событие.
type Watcher struct {
	store    ports.KVStore
	key      string
	interval time.Duration
	handler  func(ctx context.Context)
	log      ports.Logger

	lastVersion string
}

// NewWatcher — конструктор. interval <= 0 заменяется на 2s.
func NewWatcher(store ports.KVStore, key string, interval time.Duration, handler func(ctx context.Context), log ports.Logger) *Watcher {
	if interval <= 0 {
		interval = 2 * time.Second
	}
	return &Watcher{
		store:    store,
		key:      key,
		interval: interval,
		handler:  handler,
		log:      log,
	}
}

// Run — цикл опроса до отмены контекста. Ошибка чтения версии — временная:
// логируем и ждём следующего тика.
func (w *Watcher) Run(ctx context.Context) error {
	// стартовая версия, чтобы не сработать на уже известном состоянии
	if v, err := w.store.Version(ctx, w.key); err == nil {
		w.lastVersion = v
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			v, err := w.store.Version(ctx, w.key)
			if err != nil {
				w.log.Warnf(ctx, "watcher: version check failed key=%s err=%v", w.key, err)
				continue
			}
			if v == w.lastVersion {
				continue
			}
			w.lastVersion = v
			w.handler(ctx)
		}
	}
}
