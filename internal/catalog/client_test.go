package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

func TestListProducts_SkipsMalformedEntries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("skip"); got != "100" {
			t.Errorf("unexpected skip %s", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected auth header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"p1","name":"a","price":1,"stock":1},
			{"name":"broken"},
			{"id":"p2","name":"b","price":2,"stock":2}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "secret", 0, nopLogger{})
	products, err := c.ListProducts(context.Background(), 100, 50)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(products) != 2 || products[0].ID != "p1" || products[1].ID != "p2" {
		t.Fatalf("unexpected products: %+v", products)
	}
}

func TestGetProduct_NotFoundIsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no such product", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0, nopLogger{})
	p, err := c.GetProduct(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil for missing product, got %+v", p)
	}
}

func TestGetProduct_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0, nopLogger{})
	if _, err := c.GetProduct(context.Background(), "p1"); err == nil {
		t.Fatalf("expected error on 500")
	}
}

func TestRestoreStock(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/products/p1/stock" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		buf := make([]byte, r.ContentLength)
		_, _ = r.Body.Read(buf)
		gotBody = string(buf)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "", 0, nopLogger{})
	if err := c.RestoreStock(context.Background(), "p1", 3); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if gotBody != `{"delta":3}` {
		t.Fatalf("unexpected body %q", gotBody)
	}

	// нулевой возврат — no-op без сетевого вызова
	if err := c.RestoreStock(context.Background(), "p1", 0); err != nil {
		t.Fatalf("noop restore: %v", err)
	}
}
