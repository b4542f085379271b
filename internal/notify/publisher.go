package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/ports"
	"github.com/craftline/shopfront/pkg/metrics"
	"github.com/segmentio/kafka-go"
)

var _ ports.EventPublisher = (*Publisher)(nil)

// Publisher — отправитель событий в общий канал (kafka.Writer).
// Доставка fire-and-forget: без подтверждений и без гарантии доставки в
// экземпляры, открытые позже, — они сойдутся через наблюдателя хранилища.
type Publisher struct {
	writer    *kafka.Writer
	log       ports.Logger
	closeOnce sync.Once
}

// NewPublisher — конструктор поверх списка брокеров и темы.
func NewPublisher(brokers []string, topic string, log ports.Logger) *Publisher {
	w := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireNone, // best-effort, подтверждения не ждём
		BatchTimeout: 10 * time.Millisecond,
	}
	return &Publisher{writer: w, log: log}
}

// Publish — сериализует конверт события и отправляет его в канал.
// Ключ сообщения — id заказа: FIFO в пределах одного отправителя и раздела.
func (p *Publisher) Publish(ctx context.Context, event domain.NotificationEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID),
		Value: raw,
	}); err != nil {
		return fmt.Errorf("publish %s: %w", event.Type, err)
	}

	metrics.EventsPublished.WithLabelValues(event.Type).Inc()
	return nil
}

// Close — закрывает writer. Вызывается при остановке приложения.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}
