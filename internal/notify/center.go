// Пакет notify — единая лента изменений: публикация событий в общий канал,
// консьюмер на другом конце и центр уведомлений с дедупликацией.
//
// Широковещательный путь и poll-наблюдатель хранилища оба сходятся в Center,
// поэтому логическое событие доезжает до подписчиков не более одного раза,
// какой бы путь ни сработал первым.
package notify

import (
	"context"
	"sync"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/kvstore"
	"github.com/craftline/shopfront/internal/ports"
)

// DefaultHistoryCap — глубина скользящей истории для центра уведомлений.
const DefaultHistoryCap = 50

var _ ports.NotificationHistory = (*Center)(nil)

// Center — центр уведомлений: дедупликация по id заказа, скользящая
// история последних событий (FIFO-вытеснение сверх ёмкости) и fan-out
// по подписчикам (например, админский тост «новый заказ»).
type Center struct {
	store ports.KVStore
	log   ports.Logger
	cap   int

	mu          sync.Mutex
	seen        map[string]struct{}
	history     []domain.NotificationEvent
	subscribers []func(domain.NotificationEvent)
}

// NewCenter — конструктор. historyCap <= 0 заменяется на DefaultHistoryCap.
func NewCenter(store ports.KVStore, historyCap int, log ports.Logger) *Center {
	if historyCap <= 0 {
		historyCap = DefaultHistoryCap
	}
	return &Center{
		store: store,
		log:   log,
		cap:   historyCap,
		seen:  make(map[string]struct{}),
	}
}

// Load — поднять сохранённую историю (события из прошлых запусков
// участвуют в дедупликации, чтобы не тостить старые заказы заново).
func (c *Center) Load(ctx context.Context) {
	var history []domain.NotificationEvent
	found, err := c.store.Get(ctx, kvstore.KeyNotifications, &history)
	if err != nil {
		c.log.Warnf(ctx, "notify: load history failed err=%v", err)
		return
	}
	if !found {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = trimHistory(history, c.cap)
	for _, evt := range c.history {
		c.seen[evt.OrderID] = struct{}{}
	}
}

// Subscribe — регистрация обработчика; вызывается по разу на доставленное
// событие. Подписка выполняется на этапе сборки, до запуска потоков.
func (c *Center) Subscribe(fn func(domain.NotificationEvent)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subscribers = append(c.subscribers, fn)
}

// Record — зафиксировать логическое событие. Повторное событие того же
// заказа (второй путь доставки) молча поглощается; возвращает true,
// если событие было новым и дошло до подписчиков.
func (c *Center) Record(ctx context.Context, evt domain.NotificationEvent) bool {
	if evt.OrderID == "" {
		return false
	}

	c.mu.Lock()
	if _, dup := c.seen[evt.OrderID]; dup {
		c.mu.Unlock()
		return false
	}
	c.seen[evt.OrderID] = struct{}{}
	c.history = append(c.history, evt)
	// запись дедупликации живёт ровно столько же, сколько событие в истории
	if over := len(c.history) - c.cap; over > 0 {
		for _, old := range c.history[:over] {
			delete(c.seen, old.OrderID)
		}
		c.history = append([]domain.NotificationEvent(nil), c.history[over:]...)
	}
	snapshot := append([]domain.NotificationEvent(nil), c.history...)
	subs := append([](func(domain.NotificationEvent))(nil), c.subscribers...)
	c.mu.Unlock()

	if err := c.store.Put(ctx, kvstore.KeyNotifications, snapshot); err != nil {
		c.log.Warnf(ctx, "notify: persist history failed err=%v", err)
	}
	for _, fn := range subs {
		fn(evt)
	}
	return true
}

// History — копия скользящей истории (от старых к новым).
func (c *Center) History(_ context.Context) []domain.NotificationEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]domain.NotificationEvent(nil), c.history...)
}

// trimHistory — FIFO-вытеснение: сверх ёмкости первыми уходят старейшие.
func trimHistory(history []domain.NotificationEvent, capacity int) []domain.NotificationEvent {
	if len(history) <= capacity {
		return history
	}
	return history[len(history)-capacity:]
}
