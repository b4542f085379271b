package domain

import "github.com/shopspring/decimal"

// CartLine — одна пара «товар-количество» в корзине.
// Инвариант: Qty > 0 (строка с нулевым количеством удаляется, а не хранится).
type CartLine struct {
	Product Product `json:"product"`
	Qty     int     `json:"qty"`
}

// LineTotal — стоимость строки (цена × количество).
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Qty)))
}

// CartOutcome — итог мутации корзины, который показывается пользователю.
type CartOutcome string

const (
	OutcomeAdded        CartOutcome = "added"         // принято полностью
	OutcomeStockLimited CartOutcome = "stock_limited" // принято частично, упёрлись в остаток
	OutcomeRejected     CartOutcome = "out_of_stock"  // отклонено, товара нет
	OutcomeRemoved      CartOutcome = "removed"       // строка удалена (qty <= 0)
)
