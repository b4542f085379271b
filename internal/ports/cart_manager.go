package ports

import (
	"context"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/shopspring/decimal"
)

// CartManager — менеджер состояния корзины.
// Требования к реализации: потокобезопасность; производные суммы считаются
// заново от текущих строк (никаких отдельных счётчиков, способных разойтись);
// ошибка персистентности не ломает состояние в памяти.
type CartManager interface {
	// Add — добавить товар; итог различает «принято» / «упёрлись в остаток» / «нет в наличии».
	Add(ctx context.Context, product domain.Product, qty int) (domain.CartOutcome, error)

	// UpdateQty — изменить количество на delta; строка с qty <= 0 удаляется.
	UpdateQty(ctx context.Context, productID string, delta int) (domain.CartOutcome, error)

	// Clear — опустошить корзину (вызывается после оформления заказа).
	Clear(ctx context.Context) error

	// Refresh — сверить снимки товаров со свежим каталогом;
	// персистит только при фактических изменениях.
	Refresh(ctx context.Context, catalog []domain.Product) error

	Lines() []domain.CartLine
	Subtotal() decimal.Decimal
	TotalItems() int
}
