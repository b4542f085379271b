package validate

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strconv"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/ports"
)

// Проверка, что OrderValidator удовлетворяет интерфейсу OrderValidator.
var _ ports.OrderValidator = (*OrderValidator)(nil)

// ErrInvalidOrder — базовая (sentinel error) ошибка валидации.
var ErrInvalidOrder = errors.New("order validation failed")

// OrderValidator — структура для валидации заказа.
// Возвращает ErrInvalidOrder (с обёрнутой причиной) при любой проблеме.
type OrderValidator struct{}

// NewOrderValidator — конструктор OrderValidator.
func NewOrderValidator() *OrderValidator { return &OrderValidator{} }

// Validate — проверяет корректность полей заказа.
func (v *OrderValidator) Validate(_ context.Context, order *domain.Order) error {
	if err := v.validateCore(order); err != nil {
		return err
	}
	if err := v.validateDelivery(&order.Delivery); err != nil {
		return err
	}
	return v.validateItems(order.Items)
}

// validateCore — валидация основных полей заказа.
func (v *OrderValidator) validateCore(order *domain.Order) error {
	if order == nil {
		return fmt.Errorf("%w: заказ не может быть nil", ErrInvalidOrder)
	}
	// id пустой у черновика до регистрации в реестре, поэтому здесь не проверяется.
	if order.CustomerName == "" {
		return fmt.Errorf("%w: customer_name обязателен", ErrInvalidOrder)
	}
	if order.Status != "" && !domain.KnownStatus(order.Status) {
		return fmt.Errorf("%w: статус %q неизвестен", ErrInvalidOrder, order.Status)
	}
	if order.Total.IsNegative() {
		return fmt.Errorf("%w: total должен быть неотрицательным", ErrInvalidOrder)
	}
	return nil
}

// Валидация доставки
func (v *OrderValidator) validateDelivery(d *domain.Delivery) error {
	if d.Phone == "" {
		return fmt.Errorf("%w: delivery.phone обязателен", ErrInvalidOrder)
	}
	if d.Address == "" {
		return fmt.Errorf("%w: delivery.address обязателен", ErrInvalidOrder)
	}
	if d.Email != "" {
		if _, err := mail.ParseAddress(d.Email); err != nil {
			return fmt.Errorf("%w: delivery.email некорректен", ErrInvalidOrder)
		}
	}
	return nil
}

// Валидация строк заказа
func (v *OrderValidator) validateItems(items []domain.CartLine) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: items не должен быть пустым", ErrInvalidOrder)
	}

	for i := range items {
		line := &items[i]
		idx := strconv.Itoa(i)

		if line.Product.ID == "" {
			return fmt.Errorf("%w: items[%s].product.id обязателен", ErrInvalidOrder, idx)
		}
		if line.Product.Name == "" {
			return fmt.Errorf("%w: items[%s].product.name обязателен", ErrInvalidOrder, idx)
		}
		if line.Qty <= 0 {
			return fmt.Errorf("%w: items[%s].qty должен быть положительным", ErrInvalidOrder, idx)
		}
		if line.Product.Price.IsNegative() {
			return fmt.Errorf("%w: items[%s].price должен быть неотрицательным", ErrInvalidOrder, idx)
		}
	}
	return nil
}
