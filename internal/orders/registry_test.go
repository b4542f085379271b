package orders

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/kvstore"
	"github.com/craftline/shopfront/internal/ports/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// memStore — потокобезопасное хранилище в памяти; quotaItems > 0 включает
// квоту на число заказов в значении ключа (для теста вытеснения).
type memStore struct {
	mu         sync.Mutex
	data       map[string]json.RawMessage
	quotaItems int
}

func newMemStore() *memStore { return &memStore{data: make(map[string]json.RawMessage)} }

func (s *memStore) Get(_ context.Context, key string, dest any) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (s *memStore) Put(_ context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if s.quotaItems > 0 {
		var list []json.RawMessage
		if err := json.Unmarshal(raw, &list); err == nil && len(list) > s.quotaItems {
			return kvstore.ErrQuotaExceeded
		}
	}
	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
	return nil
}

func (s *memStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	delete(s.data, key)
	s.mu.Unlock()
	return nil
}

func (s *memStore) Version(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.data[key]), nil
}

// fakeCenter — счётчик уведомлений с дедупликацией по id заказа.
type fakeCenter struct {
	mu   sync.Mutex
	seen map[string]bool
}

func newFakeCenter() *fakeCenter { return &fakeCenter{seen: make(map[string]bool)} }

func (c *fakeCenter) Record(_ context.Context, evt domain.NotificationEvent) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.seen[evt.OrderID] {
		return false
	}
	c.seen[evt.OrderID] = true
	return true
}

func draft(name string) *domain.Order {
	return &domain.Order{
		CustomerName: name,
		Delivery:     domain.Delivery{Phone: "+70000000000", Address: "street 1"},
		Items: []domain.CartLine{
			{Product: domain.Product{ID: "p1", Name: "widget", Price: decimal.RequireFromString("10"), Stock: 5}, Qty: 2},
		},
	}
}

func TestCreate_AssignsIDAndDefaults(t *testing.T) {
	r := NewRegistry(newMemStore(), nil, nil, nil, noopLogger{})

	order, err := r.Create(context.Background(), draft("alice"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.HasPrefix(order.ID, "ORD-") {
		t.Fatalf("unexpected id format: %s", order.ID)
	}
	if order.Status != domain.StatusPending {
		t.Fatalf("expected PENDING, got %s", order.Status)
	}
	if !order.Total.Equal(decimal.RequireFromString("20")) {
		t.Fatalf("expected total 20, got %s", order.Total)
	}
	if order.CreatedAt.IsZero() {
		t.Fatalf("created_at must be set")
	}
}

func TestCreate_ConcurrentIDsUnique(t *testing.T) {
	r := NewRegistry(newMemStore(), nil, nil, nil, noopLogger{})
	ctx := context.Background()

	const n = 50
	ids := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			o, err := r.Create(ctx, draft("bob"))
			if err != nil {
				t.Errorf("create: %v", err)
				return
			}
			ids <- o.ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]bool)
	for id := range ids {
		if seen[id] {
			t.Fatalf("duplicate order id %s", id)
		}
		seen[id] = true
	}
}

func TestPersist_EvictsOldestOnQuota(t *testing.T) {
	store := newMemStore()
	store.quotaItems = 10
	r := NewRegistry(store, nil, nil, nil, noopLogger{})
	ctx := context.Background()

	var lastID string
	for i := 0; i < 15; i++ {
		o, err := r.Create(ctx, draft("carol"))
		if err != nil {
			t.Fatalf("create #%d: %v", i, err)
		}
		lastID = o.ID
	}

	list := r.List(ctx)
	if len(list) > store.quotaItems {
		t.Fatalf("registry over quota: %d", len(list))
	}
	if list[len(list)-1].ID != lastID {
		t.Fatalf("newest order must survive eviction")
	}
}

func TestUpdateStatus_CancelRestoresStockOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogClient(ctrl)
	r := NewRegistry(newMemStore(), catalog, nil, nil, noopLogger{})
	ctx := context.Background()

	o, err := r.Create(ctx, draft("dave"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	catalog.EXPECT().RestoreStock(gomock.Any(), "p1", 2).Return(nil).Times(1)

	if _, err := r.UpdateStatus(ctx, o.ID, domain.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	// повторная отмена — no-op без второго возврата остатков
	got, err := r.UpdateStatus(ctx, o.ID, domain.StatusCancelled)
	if err != nil {
		t.Fatalf("repeat cancel: %v", err)
	}
	if got.Status != domain.StatusCancelled {
		t.Fatalf("expected CANCELLED, got %s", got.Status)
	}
}

func TestUpdateStatus_CancelledIsTerminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogClient(ctrl)
	catalog.EXPECT().RestoreStock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	r := NewRegistry(newMemStore(), catalog, nil, nil, noopLogger{})
	ctx := context.Background()

	o, err := r.Create(ctx, draft("erin"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := r.UpdateStatus(ctx, o.ID, domain.StatusCancelled); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := r.UpdateStatus(ctx, o.ID, domain.StatusShipping); err == nil {
		t.Fatalf("expected error leaving CANCELLED")
	}
}

func TestUpdateStatus_Errors(t *testing.T) {
	r := NewRegistry(newMemStore(), nil, nil, nil, noopLogger{})
	ctx := context.Background()

	if _, err := r.UpdateStatus(ctx, "nope", "BOGUS"); err == nil {
		t.Fatalf("expected unknown status error")
	}
	if _, err := r.UpdateStatus(ctx, "nope", domain.StatusShipping); err == nil {
		t.Fatalf("expected not found error")
	}
}

func TestLoad_FiltersAndSelfHeals(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	seed := []*domain.Order{
		{ID: "ORD-1", CustomerName: "alice"},
		{ID: "", CustomerName: "ghost"},
		{ID: "ORD-2", CustomerName: ""},
		{ID: "ORD-3", CustomerName: "bob"},
	}
	if err := store.Put(ctx, kvstore.KeyOrders, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	r := NewRegistry(store, nil, nil, nil, noopLogger{})
	if err := r.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}

	list := r.List(ctx)
	if len(list) != 2 || list[0].ID != "ORD-1" || list[1].ID != "ORD-3" {
		t.Fatalf("unexpected filtered registry: %+v", list)
	}

	// самовосстановление: очищенное состояние записано обратно
	var rewritten []*domain.Order
	if found, err := store.Get(ctx, kvstore.KeyOrders, &rewritten); err != nil || !found {
		t.Fatalf("read back: found=%v err=%v", found, err)
	}
	if len(rewritten) != 2 {
		t.Fatalf("expected clean state rewritten, got %d records", len(rewritten))
	}
}

func TestHandleExternalChange_ConvergesWithSingleNotification(t *testing.T) {
	store := newMemStore()
	ctx := context.Background()

	// первый экземпляр создаёт заказ в общем хранилище
	writer := NewRegistry(store, nil, nil, newFakeCenter(), noopLogger{})
	created, err := writer.Create(ctx, draft("frank"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// второй экземпляр замечает внешнюю запись
	center := newFakeCenter()
	reader := NewRegistry(store, nil, nil, center, noopLogger{})
	if err := reader.Load(ctx); err != nil {
		t.Fatalf("load: %v", err)
	}
	// имитируем состояние «до записи»: пустой реестр в памяти
	reader.mu.Lock()
	reader.list = nil
	reader.mu.Unlock()

	reader.HandleExternalChange(ctx)
	reader.HandleExternalChange(ctx) // повторный тик наблюдателя

	if got := reader.ByID(ctx, created.ID); got == nil {
		t.Fatalf("reader must converge to shared state")
	}
	if len(center.seen) != 1 || !center.seen[created.ID] {
		t.Fatalf("expected exactly one notification, got %+v", center.seen)
	}
}

func TestByPhone_ReturnsNewest(t *testing.T) {
	r := NewRegistry(newMemStore(), nil, nil, nil, noopLogger{})
	ctx := context.Background()

	first, err := r.Create(ctx, draft("gina"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	second, err := r.Create(ctx, draft("gina"))
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got := r.ByPhone(ctx, "+70000000000")
	if got == nil || got.ID != second.ID {
		t.Fatalf("expected newest %s, got %+v (first was %s)", second.ID, got, first.ID)
	}
	if r.ByPhone(ctx, "+71111111111") != nil {
		t.Fatalf("unknown phone must return nil")
	}
}
