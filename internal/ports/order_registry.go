package ports

import (
	"context"

	"github.com/craftline/shopfront/internal/domain"
)

// OrderRegistry — локальный реестр заказов.
type OrderRegistry interface {
	// Create — присвоить свежий id, добавить в реестр, сохранить и
	// опубликовать событие NEW_ORDER.
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)

	// List — все заказы реестра (от старых к новым).
	List(ctx context.Context) []*domain.Order

	// ByID — заказ по id; (nil), если не найден.
	ByID(ctx context.Context, id string) *domain.Order

	// ByPhone — самый свежий заказ с указанным телефоном; nil, если нет.
	ByPhone(ctx context.Context, phone string) *domain.Order

	// UpdateStatus — перевести статус; переход в CANCELLED — односторонний
	// и ровно один раз возвращает остатки в каталог.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)

	// HandleExternalChange — перечитать реестр после внешнего изменения
	// хранилища (другой экземпляр дописал заказ).
	HandleExternalChange(ctx context.Context)
}
