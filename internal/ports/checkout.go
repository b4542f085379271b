package ports

import (
	"context"

	"github.com/craftline/shopfront/internal/domain"
)

// CheckoutService — оформление заказа из текущей корзины.
type CheckoutService interface {
	PlaceOrder(ctx context.Context, draft *domain.Order) (*domain.Order, error)
}
