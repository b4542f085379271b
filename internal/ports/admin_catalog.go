package ports

import (
	"context"

	"github.com/craftline/shopfront/internal/domain"
)

// AdminCatalog — буферизованная выдача окон каталога для админ-таблицы.
type AdminCatalog interface {
	// Window — записи окна [first, first+rows) и текущая оценка общего числа.
	Window(ctx context.Context, first, rows int) ([]domain.Product, int, error)

	// Refresh — полный сброс буфера (частичная инвалидация не поддерживается).
	Refresh(ctx context.Context)
}
