package ports

import (
	"context"

	"github.com/craftline/shopfront/internal/domain"
)

type OrderValidator interface {
	Validate(ctx context.Context, order *domain.Order) error
}
