package ports

import (
	"context"

	"github.com/craftline/shopfront/internal/domain"
)

// CatalogClient — типизированный клиент удалённого каталога товаров.
type CatalogClient interface {
	// ListProducts — страница списка по контракту skip/limit.
	ListProducts(ctx context.Context, skip, limit int) ([]domain.Product, error)

	// GetProduct — товар по id; (nil, nil), если не найден.
	GetProduct(ctx context.Context, id string) (*domain.Product, error)

	// RestoreStock — компенсирующий возврат остатка (отмена заказа).
	RestoreStock(ctx context.Context, productID string, qty int) error
}
