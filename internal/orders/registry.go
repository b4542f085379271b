// Пакет orders — локальный реестр заказов: подмена серверного стора,
// переживающая перезапуски через kvstore и сходящаяся между экземплярами
// через ленту изменений и наблюдателя хранилища.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/ports"
	"github.com/craftline/shopfront/pkg/metrics"
	"github.com/google/uuid"
)

// Проверка, что Registry удовлетворяет порту OrderRegistry.
var _ ports.OrderRegistry = (*Registry)(nil)

var (
	// ErrOrderNotFound — заказа с таким id в реестре нет.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderCancelled — заказ отменён, смена статуса запрещена.
	ErrOrderCancelled = errors.New("order is cancelled")
	// ErrUnknownStatus — статус вне доменного набора.
	ErrUnknownStatus = errors.New("unknown order status")
)

// recorder — центр уведомлений; сам дедуплицирует повторные события.
type recorder interface {
	Record(ctx context.Context, evt domain.NotificationEvent) bool
}

// Registry — реестр заказов. Память авторитетна внутри процесса,
// хранилище — между процессами (last-writer-wins, см. kvstore).
type Registry struct {
	store     ports.KVStore
	catalog   ports.CatalogClient
	publisher ports.EventPublisher // может быть nil: лента выключена конфигурацией
	center    recorder
	log       ports.Logger

	mu   sync.Mutex
	list []*domain.Order
}

// NewRegistry — DI-конструктор.
func NewRegistry(
	store ports.KVStore,
	catalog ports.CatalogClient,
	publisher ports.EventPublisher,
	center recorder,
	log ports.Logger,
) *Registry {
	return &Registry{
		store:     store,
		catalog:   catalog,
		publisher: publisher,
		center:    center,
		log:       log,
	}
}

// Load — поднять реестр из хранилища с фильтром валидности:
// записи без id или имени клиента отбрасываются, и если что-то отброшено —
// очищенный реестр немедленно записывается обратно (самовосстановление).
func (r *Registry) Load(ctx context.Context) error {
	list, dropped, err := r.loadFiltered(ctx)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.list = list
	r.mu.Unlock()
	metrics.RegistrySize.Set(float64(len(list)))

	if dropped > 0 {
		r.log.Warnf(ctx, "registry: dropped %d invalid records, rewriting clean state", dropped)
		r.mu.Lock()
		defer r.mu.Unlock()
		return r.persistLocked(ctx)
	}
	return nil
}

// Create — присвоить свежий id, добавить заказ, сохранить и разослать событие.
// Id собирается из даты и случайного суффикса: создание не координируется
// между экземплярами, счётчик дал бы коллизии.
func (r *Registry) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	if order == nil {
		return nil, fmt.Errorf("create order: order is nil")
	}

	o := cloneOrder(order)
	o.ID = newOrderID()
	if o.CreatedAt.IsZero() {
		o.CreatedAt = time.Now().UTC()
	}
	if o.Status == "" {
		o.Status = domain.StatusPending
	}
	if o.Total.IsZero() {
		o.Total = itemsTotal(o.Items)
	}

	r.mu.Lock()
	r.list = append(r.list, o)
	// Вытеснение при нехватке места жертвует историей, но не новым заказом.
	if err := r.persistLocked(ctx); err != nil {
		r.log.Errorf(ctx, "registry: persist failed id=%s err=%v (kept in memory)", o.ID, err)
	}
	size := len(r.list)
	r.mu.Unlock()

	metrics.OrdersCreated.Inc()
	metrics.RegistrySize.Set(float64(size))

	evt := domain.NotificationEvent{
		Type:      domain.EventTypeNewOrder,
		OrderID:   o.ID,
		CreatedAt: o.CreatedAt,
	}
	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, evt); err != nil {
			// Шина best-effort: остальные экземпляры сойдутся через наблюдателя.
			r.log.Warnf(ctx, "registry: publish NEW_ORDER failed id=%s err=%v", o.ID, err)
		}
	}
	if r.center != nil {
		r.center.Record(ctx, evt)
	}

	return cloneOrder(o), nil
}

// List — копии всех заказов (от старых к новым).
func (r *Registry) List(_ context.Context) []*domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*domain.Order, 0, len(r.list))
	for _, o := range r.list {
		out = append(out, cloneOrder(o))
	}
	return out
}

// ByID — заказ по id; nil, если не найден.
func (r *Registry) ByID(_ context.Context, id string) *domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, o := range r.list {
		if o.ID == id {
			return cloneOrder(o)
		}
	}
	return nil
}

// ByPhone — самый свежий заказ с этим телефоном; nil, если нет.
func (r *Registry) ByPhone(_ context.Context, phone string) *domain.Order {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(r.list) - 1; i >= 0; i-- {
		if r.list[i].Delivery.Phone == phone {
			return cloneOrder(r.list[i])
		}
	}
	return nil
}

// UpdateStatus — перевести статус заказа.
// CANCELLED — односторонняя граница: вход в него возвращает остатки в каталог
// ровно один раз, повторная отмена — no-op, выход из него запрещён.
func (r *Registry) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !domain.KnownStatus(status) {
		return nil, fmt.Errorf("update status %q: %w", status, ErrUnknownStatus)
	}

	r.mu.Lock()
	target := r.findLocked(id)
	if target == nil {
		r.mu.Unlock()
		return nil, fmt.Errorf("update status %s: %w", id, ErrOrderNotFound)
	}

	if target.Status == domain.StatusCancelled {
		result := cloneOrder(target)
		r.mu.Unlock()
		if status == domain.StatusCancelled {
			return result, nil // повторная отмена — без второго возврата остатков
		}
		return nil, fmt.Errorf("update status %s: %w", id, ErrOrderCancelled)
	}

	restore := status == domain.StatusCancelled
	items := append([]domain.CartLine(nil), target.Items...)
	target.Status = status
	if err := r.persistLocked(ctx); err != nil {
		r.log.Errorf(ctx, "registry: persist failed id=%s err=%v", id, err)
	}
	result := cloneOrder(target)
	r.mu.Unlock()

	if restore {
		r.restoreStock(ctx, id, items)
	}
	return result, nil
}

// HandleExternalChange — перечитать реестр после внешней записи в хранилище.
// Если перечитанный реестр больше текущего, новейшая запись считается
// «новым заказом» и отдаётся в центр уведомлений; дедупликация центра
// гарантирует не более одной доставки, даже если шина уже принесла событие.
func (r *Registry) HandleExternalChange(ctx context.Context) {
	list, dropped, err := r.loadFiltered(ctx)
	if err != nil {
		r.log.Warnf(ctx, "registry: external reload failed err=%v", err)
		return
	}

	r.mu.Lock()
	grew := len(list) > len(r.list)
	r.list = list
	if dropped > 0 {
		if err := r.persistLocked(ctx); err != nil {
			r.log.Warnf(ctx, "registry: self-heal rewrite failed err=%v", err)
		}
	}
	var newest *domain.Order
	if grew && len(r.list) > 0 {
		newest = cloneOrder(r.list[len(r.list)-1])
	}
	r.mu.Unlock()

	metrics.RegistrySize.Set(float64(len(list)))

	if newest != nil && r.center != nil {
		r.center.Record(ctx, domain.NotificationEvent{
			Type:      domain.EventTypeNewOrder,
			OrderID:   newest.ID,
			CreatedAt: newest.CreatedAt,
		})
	}
}

// newOrderID — локальный id: дата + высокоэнтропийный суффикс.
func newOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:10]
	return fmt.Sprintf("ORD-%s-%s", time.Now().UTC().Format("20060102"), suffix)
}
