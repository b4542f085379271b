package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/ports"
)

// Проверка, что CheckoutService удовлетворяет интерфейсу CheckoutService.
var _ ports.CheckoutService = (*CheckoutService)(nil)

// ErrEmptyCart — попытка оформить заказ с пустой корзиной.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService — прикладная логика оформления заказа (без знаний о транспорте).
type CheckoutService struct {
	cart      ports.CartManager
	registry  ports.OrderRegistry
	validator ports.OrderValidator
	log       ports.Logger
}

// NewCheckoutService — DI-конструктор.
func NewCheckoutService(
	cart ports.CartManager,
	registry ports.OrderRegistry,
	validator ports.OrderValidator,
	log ports.Logger,
) *CheckoutService {
	return &CheckoutService{
		cart:      cart,
		registry:  registry,
		validator: validator,
		log:       log,
	}
}

// PlaceOrder — оформить заказ из текущей корзины.
// Шаги:
//  1. снимок строк корзины (позже корзина может меняться параллельно);
//  2. доменная валидация черновика (вернёт validate.ErrInvalidOrder при проблемах);
//  3. регистрация в реестре (id, сохранение, событие NEW_ORDER);
//  4. очистка корзины.
func (s *CheckoutService) PlaceOrder(ctx context.Context, draft *domain.Order) (*domain.Order, error) {
	if draft == nil {
		return nil, errors.New("nil order draft")
	}

	lines := s.cart.Lines()
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}

	draft.Items = lines
	draft.Total = s.cart.Subtotal()
	draft.Status = domain.StatusPending
	if draft.CreatedAt.IsZero() {
		draft.CreatedAt = time.Now().UTC()
	}

	if err := s.validator.Validate(ctx, draft); err != nil {
		s.log.Warnf(ctx, "checkout rejected: %v", err)
		return nil, err
	}

	start := time.Now()
	order, err := s.registry.Create(ctx, draft)
	if err != nil {
		s.log.Errorf(ctx, "registry.Create failed err=%v", err)
		return nil, err
	}
	s.log.Infof(ctx, "order placed id=%s items=%d took=%s", order.ID, len(order.Items), time.Since(start))

	// Оформленный заказ зафиксирован; неудачная очистка корзины его не отменяет.
	if err := s.cart.Clear(ctx); err != nil {
		s.log.Warnf(ctx, "cart clear after checkout failed: %v", err)
	}

	return order, nil
}
