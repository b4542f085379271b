package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/craftline/shopfront/internal/domain"
)

// externalSyncer — реестр, умеющий перечитать себя из хранилища
// после внешнего изменения.
type externalSyncer interface {
	HandleExternalChange(ctx context.Context)
}

// FeedHandler — прикладная реакция консьюмера на конверт события:
// разобрать, отфильтровать чужие типы, синхронизировать реестр и
// зафиксировать событие в центре (дедупликация — забота центра).
type FeedHandler struct {
	registry externalSyncer
	center   *Center
}

// NewFeedHandler — конструктор.
func NewFeedHandler(registry externalSyncer, center *Center) *FeedHandler {
	return &FeedHandler{registry: registry, center: center}
}

// HandleEvent — обработка сырого конверта из канала.
// Незнакомый тип — не ошибка доставки: возвращаем ErrSkipEvent,
// консьюмер коммитит и идёт дальше (расширяемый конверт).
func (h *FeedHandler) HandleEvent(ctx context.Context, raw []byte) error {
	var evt domain.NotificationEvent
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&evt); err != nil {
		return fmt.Errorf("%w: invalid envelope: %v", ErrSkipEvent, err)
	}
	if evt.Type != domain.EventTypeNewOrder {
		return fmt.Errorf("%w: unknown type %q", ErrSkipEvent, evt.Type)
	}
	if evt.OrderID == "" {
		return fmt.Errorf("%w: empty order id", ErrSkipEvent)
	}

	// Шина не авторитетна: источник истины — хранилище, событие лишь
	// повод перечитать его и показать тост.
	h.registry.HandleExternalChange(ctx)
	h.center.Record(ctx, evt)
	return nil
}
