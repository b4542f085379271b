package domain

import "github.com/shopspring/decimal"

// Ручные статусы наличия: переопределение от администратора,
// которое имеет приоритет над числовым остатком.
const (
	StockStatusIn  = "IN_STOCK"
	StockStatusOut = "OUT_OF_STOCK"
)

// Product — снимок товара из каталога на момент добавления в корзину.
type Product struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	Stock             int             `json:"stock"`
	ManualStockStatus string          `json:"manual_stock_status,omitempty"`
}

// Available — трёхуровневая политика наличия:
// ручной IN_STOCK разрешает всегда, ручной OUT_OF_STOCK запрещает всегда,
// иначе решает числовой остаток.
func (p *Product) Available() bool {
	switch p.ManualStockStatus {
	case StockStatusIn:
		return true
	case StockStatusOut:
		return false
	default:
		return p.Stock > 0
	}
}

// Unlimited — true, если ручной IN_STOCK снимает потолок по остатку.
func (p *Product) Unlimited() bool { return p.ManualStockStatus == StockStatusIn }
