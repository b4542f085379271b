package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/craftline/shopfront/internal/domain"
)

func line(t *testing.T, o *domain.Order) string {
	t.Helper()
	raw, err := json.Marshal(o)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return string(raw)
}

func TestValidateJSONLStream_RepairsRegistry(t *testing.T) {
	v := NewOrderValidator()

	good := validOrder()
	broken := validOrder()
	broken.CustomerName = ""
	noID := validOrder()
	noID.ID = ""

	input := strings.Join([]string{
		line(t, good),
		"",
		"{garbage",
		line(t, broken),
		line(t, noID), // без id запись реестра невалидна
		line(t, good),
	}, "\n")

	var out bytes.Buffer
	res, err := ValidateJSONLStream(context.Background(), v, strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("stream: %v", err)
	}
	if res.ValidLinesCount != 2 || res.InvalidLinesCount != 3 {
		t.Fatalf("unexpected counts: %+v", res)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 output lines, got %d", len(lines))
	}
	for _, l := range lines {
		var o domain.Order
		if err := json.Unmarshal([]byte(l), &o); err != nil || o.ID == "" {
			t.Fatalf("output line not canonical: %q err=%v", l, err)
		}
	}
}

func TestValidateOrderFromJSON_TrailingData(t *testing.T) {
	v := NewOrderValidator()
	raw := []byte(line(t, validOrder()) + `{"extra":true}`)
	if _, err := ValidateOrderFromJSON(context.Background(), v, raw); err == nil {
		t.Fatalf("trailing data must be rejected")
	}
}

func TestValidateOrderFromJSON_UnknownFields(t *testing.T) {
	v := NewOrderValidator()
	if _, err := ValidateOrderFromJSON(context.Background(), v, []byte(`{"id":"x","bogus":1}`)); err == nil {
		t.Fatalf("unknown field must be rejected")
	}
}
