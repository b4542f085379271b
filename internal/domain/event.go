package domain

import "time"

// Типы событий ленты изменений. Незнакомые типы подписчики игнорируют —
// конверт расширяемый.
const EventTypeNewOrder = "NEW_ORDER"

// NotificationEvent — событие «появился новый заказ», разлетающееся
// по всем запущенным экземплярам через общий канал.
type NotificationEvent struct {
	Type      string    `json:"type"`
	OrderID   string    `json:"order_id"`
	CreatedAt time.Time `json:"ts"`
}
