package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrMalformedProduct — запись каталога не удалось привести к Product.
var ErrMalformedProduct = errors.New("malformed product")

// Normalize — граница нормализации: бэкенд присылает товары в нескольких
// исторических формах (разные имена полей, регистр статусов, строки вместо
// чисел). Вся эта терпимость сосредоточена здесь; дальше по коду живёт
// только строгий domain.Product.
func Normalize(raw json.RawMessage) (domain.Product, error) {
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return domain.Product{}, fmt.Errorf("%w: %v", ErrMalformedProduct, err)
	}

	id := firstString(m, "id", "_id", "productId")
	if id == "" {
		return domain.Product{}, fmt.Errorf("%w: missing id", ErrMalformedProduct)
	}
	name := firstString(m, "name", "title")
	if name == "" {
		return domain.Product{}, fmt.Errorf("%w: missing name (id=%s)", ErrMalformedProduct, id)
	}

	price, err := firstDecimal(m, "price", "unitPrice", "unit_price")
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: bad price (id=%s): %v", ErrMalformedProduct, id, err)
	}

	stock, err := firstInt(m, "stock", "quantity", "countInStock", "count_in_stock")
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: bad stock (id=%s): %v", ErrMalformedProduct, id, err)
	}

	status := strings.ToUpper(strings.TrimSpace(firstString(m, "manualStockStatus", "manual_stock_status", "stockStatus")))
	switch status {
	case "", domain.StockStatusIn, domain.StockStatusOut:
		// известные значения
	default:
		return domain.Product{}, fmt.Errorf("%w: unknown stock status %q (id=%s)", ErrMalformedProduct, status, id)
	}

	return domain.Product{
		ID:                id,
		Name:              name,
		Price:             price,
		Stock:             stock,
		ManualStockStatus: status,
	}, nil
}

// firstString — первое непустое строковое поле из списка кандидатов.
func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
			// числовые id тоже встречаются
			if f, ok := v.(float64); ok {
				return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%f", f), "0"), ".")
			}
		}
	}
	return ""
}

// firstDecimal — первое числовое поле (число или числовая строка).
func firstDecimal(m map[string]any, keys ...string) (decimal.Decimal, error) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			return decimal.NewFromFloat(t), nil
		case string:
			return decimal.NewFromString(t)
		default:
			return decimal.Zero, fmt.Errorf("field %s has type %T", k, v)
		}
	}
	return decimal.Zero, nil // цены может не быть вовсе — тогда ноль
}

// firstInt — первое целочисленное поле (число или числовая строка).
func firstInt(m map[string]any, keys ...string) (int, error) {
	for _, k := range keys {
		v, ok := m[k]
		if !ok || v == nil {
			continue
		}
		switch t := v.(type) {
		case float64:
			return int(t), nil
		case string:
			d, err := decimal.NewFromString(t)
			if err != nil {
				return 0, fmt.Errorf("field %s: %v", k, err)
			}
			return int(d.IntPart()), nil
		default:
			return 0, fmt.Errorf("field %s has type %T", k, v)
		}
	}
	return 0, nil
}
