// Пакет cart — менеджер состояния корзины: авторитетные строки в памяти,
// зеркало в kvstore, потолок по остатку на каждой мутации.
package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/kvstore"
	"github.com/craftline/shopfront/internal/ports"
	"github.com/craftline/shopfront/pkg/metrics"
	"github.com/shopspring/decimal"
)

// Проверка, что Manager удовлетворяет порту CartManager.
var _ ports.CartManager = (*Manager)(nil)

// Manager — владелец корзины. Строки хранятся в порядке добавления;
// порядок значим только для отображения.
type Manager struct {
	store ports.KVStore
	log   ports.Logger

	mu    sync.Mutex
	lines []domain.CartLine
}

// NewManager — DI-конструктор.
func NewManager(store ports.KVStore, log ports.Logger) *Manager {
	return &Manager{store: store, log: log}
}

// Load — поднять сохранённый снимок корзины (вызывается на старте).
// Отсутствие или повреждение снимка — не ошибка: начинаем с пустой корзины.
func (m *Manager) Load(ctx context.Context) error {
	var lines []domain.CartLine
	found, err := m.store.Get(ctx, kvstore.KeyCart, &lines)
	if err != nil {
		return fmt.Errorf("load cart: %w", err)
	}
	if !found {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = dropEmptyLines(lines)
	return nil
}

// Add — добавить товар (или увеличить количество существующей строки).
// Политика наличия трёхуровневая: ручной IN_STOCK разрешает всё,
// ручной OUT_OF_STOCK запрещает всё, иначе решает числовой остаток.
// Превышение остатка не ошибка: количество урезается до потолка,
// вызывающему возвращается OutcomeStockLimited.
func (m *Manager) Add(ctx context.Context, product domain.Product, qty int) (domain.CartOutcome, error) {
	if product.ID == "" {
		return "", fmt.Errorf("add to cart: product id is required")
	}
	if qty <= 0 {
		qty = 1
	}
	if !product.Available() {
		metrics.CartOps.WithLabelValues(string(domain.OutcomeRejected)).Inc()
		return domain.OutcomeRejected, nil
	}

	m.mu.Lock()
	outcome := m.addLocked(product, qty)
	snapshot := cloneLines(m.lines)
	m.mu.Unlock()

	metrics.CartOps.WithLabelValues(string(outcome)).Inc()
	m.persist(ctx, snapshot)
	return outcome, nil
}

// UpdateQty — изменить количество строки на delta.
// Итоговое qty <= 0 удаляет строку; рост количества упирается в тот же
// потолок по остатку, что и Add.
func (m *Manager) UpdateQty(ctx context.Context, productID string, delta int) (domain.CartOutcome, error) {
	if productID == "" {
		return "", fmt.Errorf("update qty: product id is required")
	}

	m.mu.Lock()
	outcome, found := m.updateQtyLocked(productID, delta)
	snapshot := cloneLines(m.lines)
	m.mu.Unlock()

	if !found {
		return "", fmt.Errorf("update qty: no cart line for product %s", productID)
	}

	metrics.CartOps.WithLabelValues(string(outcome)).Inc()
	m.persist(ctx, snapshot)
	return outcome, nil
}

// Clear — опустошить корзину и сохранить пустое состояние.
func (m *Manager) Clear(ctx context.Context) error {
	m.mu.Lock()
	m.lines = nil
	m.mu.Unlock()

	metrics.CartOps.WithLabelValues("cleared").Inc()
	m.persist(ctx, []domain.CartLine{})
	return nil
}

// Refresh — сверить снимки товаров в строках со свежим каталогом
// (цена/остаток/ручной статус могли измениться с момента добавления).
// Сохраняем только если хотя бы одна строка действительно изменилась.
func (m *Manager) Refresh(ctx context.Context, catalog []domain.Product) error {
	byID := make(map[string]domain.Product, len(catalog))
	for _, p := range catalog {
		byID[p.ID] = p
	}

	m.mu.Lock()
	changed := m.refreshLocked(byID)
	snapshot := cloneLines(m.lines)
	m.mu.Unlock()

	if !changed {
		return nil
	}
	m.persist(ctx, snapshot)
	return nil
}

// Lines — копия строк корзины (порядок добавления).
func (m *Manager) Lines() []domain.CartLine {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneLines(m.lines)
}

// Subtotal — сумма цена × количество, считается заново при каждом вызове.
func (m *Manager) Subtotal() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := decimal.Zero
	for i := range m.lines {
		total = total.Add(m.lines[i].LineTotal())
	}
	return total
}

// TotalItems — суммарное количество единиц, считается заново при каждом вызове.
func (m *Manager) TotalItems() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := 0
	for i := range m.lines {
		n += m.lines[i].Qty
	}
	return n
}
