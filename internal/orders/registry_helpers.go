package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/kvstore"
	"github.com/craftline/shopfront/pkg/metrics"
	"github.com/shopspring/decimal"
)

// persistLocked — запись реестра с политикой вытеснения при нехватке места:
// при kvstore.ErrQuotaExceeded отбрасываем старейшие ~10% (минимум один)
// и повторяем, пока запись не пройдёт или реестр не опустеет.
// Намеренно lossy: «не потерять новейший заказ» важнее, чем «не потерять историю».
func (r *Registry) persistLocked(ctx context.Context) error {
	for {
		err := r.store.Put(ctx, kvstore.KeyOrders, r.list)
		if err == nil {
			return nil
		}
		if !errors.Is(err, kvstore.ErrQuotaExceeded) {
			return err
		}
		if len(r.list) == 0 {
			return fmt.Errorf("registry persist: empty registry still over quota: %w", err)
		}

		n := len(r.list) / 10
		if n < 1 {
			n = 1
		}
		if n >= len(r.list) {
			n = len(r.list) - 1
			if n < 1 {
				n = 1
			}
		}
		r.log.Warnf(ctx, "registry: quota exceeded, evicting %d oldest of %d", n, len(r.list))
		r.list = append([]*domain.Order(nil), r.list[n:]...)
		metrics.RegistryEvictions.Add(float64(n))
	}
}

// loadFiltered — чтение реестра из хранилища с фильтром валидности.
// Возвращает очищенный список и число отброшенных записей.
func (r *Registry) loadFiltered(ctx context.Context) ([]*domain.Order, int, error) {
	var raw []*domain.Order
	found, err := r.store.Get(ctx, kvstore.KeyOrders, &raw)
	if err != nil {
		return nil, 0, fmt.Errorf("load registry: %w", err)
	}
	if !found {
		return nil, 0, nil
	}

	list := make([]*domain.Order, 0, len(raw))
	dropped := 0
	for _, o := range raw {
		if o == nil || o.ID == "" || o.CustomerName == "" {
			dropped++
			continue
		}
		list = append(list, o)
	}
	return list, dropped, nil
}

// findLocked — заказ по id без копирования (для мутаций под мьютексом).
func (r *Registry) findLocked(id string) *domain.Order {
	for _, o := range r.list {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// restoreStock — компенсирующий возврат остатков по строкам отменённого
// заказа. Ошибки каталога не откатывают отмену: логируем и продолжаем.
func (r *Registry) restoreStock(ctx context.Context, orderID string, items []domain.CartLine) {
	for _, line := range items {
		if err := r.catalog.RestoreStock(ctx, line.Product.ID, line.Qty); err != nil {
			r.log.Warnf(ctx, "registry: restore stock failed order=%s product=%s qty=%d err=%v",
				orderID, line.Product.ID, line.Qty, err)
		}
	}
}

// itemsTotal — сумма строк заказа.
func itemsTotal(items []domain.CartLine) decimal.Decimal {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].LineTotal())
	}
	return total
}

// cloneOrder — копия заказа, чтобы внешние изменения не отражались
// на данных внутри реестра.
func cloneOrder(order *domain.Order) *domain.Order {
	if order == nil {
		return nil
	}
	clonedOrder := *order
	if order.Items != nil {
		clonedOrder.Items = append([]domain.CartLine(nil), order.Items...)
	}
	return &clonedOrder
}
