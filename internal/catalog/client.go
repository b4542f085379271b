// Пакет catalog — типизированный клиент удалённого каталога товаров
// (REST, пагинация skip/limit) и граница нормализации его ответов.
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/ports"
)

var _ ports.CatalogClient = (*Client)(nil)

// Client — HTTP-клиент каталога. Токен (если задан) уходит в
// Authorization: Bearer; обновление токена — забота внешнего слоя.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
	log     ports.Logger
}

// NewClient — конструктор. timeout <= 0 заменяется на 10s.
func NewClient(baseURL, token string, timeout time.Duration, log ports.Logger) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: baseURL,
		token:   token,
		http:    &http.Client{Timeout: timeout},
		log:     log,
	}
}

// ListProducts — страница каталога. Ответ приходит в вольной форме;
// каждая запись прогоняется через Normalize, непригодные пропускаются с логом.
func (c *Client) ListProducts(ctx context.Context, skip, limit int) ([]domain.Product, error) {
	q := url.Values{}
	q.Set("skip", strconv.Itoa(skip))
	q.Set("limit", strconv.Itoa(limit))

	var raw []json.RawMessage
	if err := c.getJSON(ctx, "/products?"+q.Encode(), &raw); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(raw))
	for i, entry := range raw {
		p, err := Normalize(entry)
		if err != nil {
			c.log.Warnf(ctx, "catalog: skipping malformed product skip=%d idx=%d err=%v", skip, i, err)
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

// GetProduct — товар по id; (nil, nil), если каталог его не знает.
func (c *Client) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	var raw json.RawMessage
	err := c.getJSON(ctx, "/products/"+url.PathEscape(id), &raw)
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	p, err := Normalize(raw)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", id, err)
	}
	return &p, nil
}

// RestoreStock — компенсирующее увеличение остатка (отмена заказа).
func (c *Client) RestoreStock(ctx context.Context, productID string, qty int) error {
	if qty <= 0 {
		return nil
	}
	body, _ := json.Marshal(map[string]int{"delta": qty})
	return c.do(ctx, http.MethodPatch, "/products/"+url.PathEscape(productID)+"/stock", body, nil)
}

// ------вспомогательные функции------

type statusError struct {
	code int
	body string
}

func (e *statusError) Error() string {
	return fmt.Sprintf("catalog: unexpected status %d: %s", e.code, e.body)
}

func isNotFound(err error) bool {
	se, ok := err.(*statusError)
	return ok && se.code == http.StatusNotFound
}

func (c *Client) getJSON(ctx context.Context, path string, dest any) error {
	return c.do(ctx, http.MethodGet, path, nil, dest)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, dest any) error {
	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return fmt.Errorf("catalog: build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("catalog: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return &statusError{code: resp.StatusCode, body: string(snippet)}
	}
	if dest == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("catalog: decode %s: %w", path, err)
	}
	return nil
}
