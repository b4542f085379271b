//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/shopspring/decimal"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// Мини-генератор валидного заказа
func MakeOrder(opts ...func(*domain.Order)) domain.Order {
	now := time.Now().UTC().Truncate(time.Second)

	o := domain.Order{
		ID:           "ORD-" + now.Format("20060102") + "-" + UniqSuffix(),
		CustomerName: "John Smith",
		Delivery: domain.Delivery{
			Phone:   "+1-202-555-01",
			Email:   "john@example.com",
			Address: "Main st 1",
			City:    "Metropolis",
			Region:  "NA",
			Zip:     "000000",
		},
		Items: []domain.CartLine{
			{
				Product: domain.Product{
					ID:    "prod-" + UniqSuffix(),
					Name:  "Widget",
					Price: decimal.RequireFromString("100"),
					Stock: 10,
				},
				Qty: 1,
			},
		},
		Total:     decimal.RequireFromString("100"),
		Status:    domain.StatusPending,
		CreatedAt: now,
	}

	for _, fn := range opts {
		fn(&o)
	}
	return o
}

func WithCustomer(name string) func(*domain.Order) {
	return func(o *domain.Order) { o.CustomerName = name }
}

func WithPhone(phone string) func(*domain.Order) {
	return func(o *domain.Order) { o.Delivery.Phone = phone }
}

func WithItems(n int) func(*domain.Order) {
	return func(o *domain.Order) {
		o.Items = make([]domain.CartLine, 0, n)
		total := decimal.Zero
		for i := 0; i < n; i++ {
			price := decimal.NewFromInt(int64(10 * (i + 1)))
			o.Items = append(o.Items, domain.CartLine{
				Product: domain.Product{
					ID:    "prod-" + UniqSuffix(),
					Name:  "Item",
					Price: price,
					Stock: 10,
				},
				Qty: 1,
			})
			total = total.Add(price)
		}
		o.Total = total
	}
}
