package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus — перечисление статусов заказа.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusConfirmed OrderStatus = "CONFIRMED"
	StatusShipping  OrderStatus = "SHIPPING"
	StatusDelivered OrderStatus = "DELIVERED"
	StatusCompleted OrderStatus = "COMPLETED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// KnownStatus — проверка, что строка входит в перечисление статусов.
func KnownStatus(s OrderStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusShipping, StatusDelivered, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Delivery — адресные поля получателя.
type Delivery struct {
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
	City    string `json:"city"`
	Region  string `json:"region,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// Order — локально зарегистрированный заказ.
// Items — снимок строк корзины на момент оформления (корзина после
// оформления очищается, поэтому живой ссылки быть не может).
// После создания Items неизменяемы; меняться могут только статус и оплата.
type Order struct {
	ID            string          `json:"id"`
	CustomerName  string          `json:"customer_name"`
	Delivery      Delivery        `json:"delivery"`
	Items         []CartLine      `json:"items"`
	Total         decimal.Decimal `json:"total"`
	Status        OrderStatus     `json:"status"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	PaymentStatus string          `json:"payment_status,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
}
