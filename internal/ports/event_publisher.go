package ports

import (
	"context"

	"github.com/craftline/shopfront/internal/domain"
)

// EventPublisher — публикация событий в общий канал (fire-and-forget,
// без подтверждений; источник истины — всегда персистентный реестр).
type EventPublisher interface {
	Publish(ctx context.Context, event domain.NotificationEvent) error
	Close() error
}
