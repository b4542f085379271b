package cart

import (
	"context"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/kvstore"
)

// addLocked — добавление под мьютексом. Возвращает итог для пользователя.
func (m *Manager) addLocked(product domain.Product, qty int) domain.CartOutcome {
	for i := range m.lines {
		if m.lines[i].Product.ID != product.ID {
			continue
		}
		want := m.lines[i].Qty + qty
		capped := capToStock(&product, want)
		m.lines[i].Qty = capped
		m.lines[i].Product = product
		if capped < want {
			return domain.OutcomeStockLimited
		}
		return domain.OutcomeAdded
	}

	want := qty
	capped := capToStock(&product, want)
	if capped <= 0 {
		return domain.OutcomeRejected
	}
	m.lines = append(m.lines, domain.CartLine{Product: product, Qty: capped})
	if capped < want {
		return domain.OutcomeStockLimited
	}
	return domain.OutcomeAdded
}

// updateQtyLocked — изменение количества под мьютексом.
// (outcome, true) если строка нашлась, ("", false) иначе.
func (m *Manager) updateQtyLocked(productID string, delta int) (domain.CartOutcome, bool) {
	for i := range m.lines {
		if m.lines[i].Product.ID != productID {
			continue
		}
		want := m.lines[i].Qty + delta
		capped := capToStock(&m.lines[i].Product, want)
		if capped <= 0 {
			m.lines = append(m.lines[:i], m.lines[i+1:]...)
			return domain.OutcomeRemoved, true
		}
		m.lines[i].Qty = capped
		if delta > 0 && capped < want {
			return domain.OutcomeStockLimited, true
		}
		return domain.OutcomeAdded, true
	}
	return "", false
}

// refreshLocked — обновление снимков товаров; true, если что-то изменилось.
// Товары, пропавшие из каталога, не трогаем: каталог может быть неполным.
func (m *Manager) refreshLocked(byID map[string]domain.Product) bool {
	changed := false
	kept := m.lines[:0]
	for i := range m.lines {
		line := m.lines[i]
		fresh, ok := byID[line.Product.ID]
		if ok && !sameProduct(&line.Product, &fresh) {
			line.Product = fresh
			changed = true
		}
		// новый остаток мог опуститься ниже количества в корзине
		if capped := capToStock(&line.Product, line.Qty); capped != line.Qty {
			line.Qty = capped
			changed = true
		}
		if line.Qty > 0 {
			kept = append(kept, line)
		} else {
			changed = true
		}
	}
	m.lines = kept
	return changed
}

// persist — зеркалирование снимка в хранилище. Ошибка персистентности
// логируется и глотается: корзина в памяти остаётся корректной.
func (m *Manager) persist(ctx context.Context, snapshot []domain.CartLine) {
	if err := m.store.Put(ctx, kvstore.KeyCart, snapshot); err != nil {
		m.log.Warnf(ctx, "cart: persist failed err=%v (in-memory state kept)", err)
	}
}

// capToStock — потолок количества по остатку; ручной IN_STOCK снимает потолок,
// ручной OUT_OF_STOCK опускает его до нуля независимо от числового остатка.
func capToStock(p *domain.Product, want int) int {
	if p.Unlimited() {
		return want
	}
	if p.ManualStockStatus == domain.StockStatusOut {
		return 0
	}
	if want > p.Stock {
		return p.Stock
	}
	return want
}

// sameProduct — сравнение снимка и свежей записи каталога по значимым полям.
func sameProduct(a, b *domain.Product) bool {
	return a.Name == b.Name &&
		a.Price.Equal(b.Price) &&
		a.Stock == b.Stock &&
		a.ManualStockStatus == b.ManualStockStatus
}

// cloneLines — копия строк, чтобы внешние изменения не отражались на корзине.
func cloneLines(lines []domain.CartLine) []domain.CartLine {
	return append([]domain.CartLine(nil), lines...)
}

// dropEmptyLines — фильтр снимка из хранилища: строки с qty <= 0 не живут.
func dropEmptyLines(lines []domain.CartLine) []domain.CartLine {
	kept := lines[:0]
	for _, l := range lines {
		if l.Qty > 0 && l.Product.ID != "" {
			kept = append(kept, l)
		}
	}
	return kept
}
