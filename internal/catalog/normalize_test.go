package catalog

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/shopspring/decimal"
)

func TestNormalize_CanonicalForm(t *testing.T) {
	p, err := Normalize(json.RawMessage(`{"id":"p1","name":"widget","price":9.99,"stock":5}`))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.ID != "p1" || p.Name != "widget" || p.Stock != 5 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if !p.Price.Equal(decimal.RequireFromString("9.99")) {
		t.Fatalf("unexpected price: %s", p.Price)
	}
}

func TestNormalize_LegacyFieldNames(t *testing.T) {
	raw := json.RawMessage(`{"_id":"p2","title":"gadget","unit_price":"12.50","countInStock":"7","manual_stock_status":"in_stock"}`)
	p, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if p.ID != "p2" || p.Name != "gadget" || p.Stock != 7 {
		t.Fatalf("unexpected product: %+v", p)
	}
	if !p.Price.Equal(decimal.RequireFromString("12.50")) {
		t.Fatalf("unexpected price: %s", p.Price)
	}
	// регистр статуса нормализуется
	if p.ManualStockStatus != domain.StockStatusIn {
		t.Fatalf("unexpected status: %q", p.ManualStockStatus)
	}
}

func TestNormalize_MissingPriceIsZero(t *testing.T) {
	p, err := Normalize(json.RawMessage(`{"id":"p3","name":"freebie","stock":1}`))
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !p.Price.IsZero() {
		t.Fatalf("missing price must normalize to zero, got %s", p.Price)
	}
}

func TestNormalize_Malformed(t *testing.T) {
	cases := []string{
		`{broken`,
		`{"name":"no id"}`,
		`{"id":"x"}`,
		`{"id":"x","name":"y","price":{"amount":1}}`,
		`{"id":"x","name":"y","stock":"not-a-number"}`,
		`{"id":"x","name":"y","manualStockStatus":"MAYBE"}`,
	}
	for i, raw := range cases {
		if _, err := Normalize(json.RawMessage(raw)); !errors.Is(err, ErrMalformedProduct) {
			t.Fatalf("case %d: want ErrMalformedProduct, got %v", i, err)
		}
	}
}
