package ports

import (
	"context"

	"github.com/craftline/shopfront/internal/domain"
)

// NotificationHistory — центр уведомлений: скользящая история последних
// событий для админской панели.
type NotificationHistory interface {
	History(ctx context.Context) []domain.NotificationEvent
}
