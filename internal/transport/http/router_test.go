package rest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/orders"
	"github.com/craftline/shopfront/internal/ports/mocks"
	"github.com/craftline/shopfront/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

type testDeps struct {
	cart          *mocks.MockCartManager
	checkout      *mocks.MockCheckoutService
	registry      *mocks.MockOrderRegistry
	notifications *mocks.MockNotificationHistory
	admin         *mocks.MockAdminCatalog
	catalog       *mocks.MockCatalogClient
}

func newTestRouter(t *testing.T) (*gin.Engine, *testDeps) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	d := &testDeps{
		cart:          mocks.NewMockCartManager(ctrl),
		checkout:      mocks.NewMockCheckoutService(ctrl),
		registry:      mocks.NewMockOrderRegistry(ctrl),
		notifications: mocks.NewMockNotificationHistory(ctrl),
		admin:         mocks.NewMockAdminCatalog(ctrl),
		catalog:       mocks.NewMockCatalogClient(ctrl),
	}
	h := NewHandler(d.cart, d.checkout, d.registry, d.notifications, d.admin, d.catalog, noopLogger{}, time.Second)
	return NewRouter(h, ""), d
}

func doRequest(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var rd *strings.Reader
	if body == "" {
		rd = strings.NewReader("")
	} else {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// снимок корзины, который хэндлеры добавляют к ответам мутаций
func expectCartSnapshot(d *testDeps) {
	d.cart.EXPECT().Lines().Return(nil).AnyTimes()
	d.cart.EXPECT().Subtotal().Return(decimal.Zero).AnyTimes()
	d.cart.EXPECT().TotalItems().Return(0).AnyTimes()
}

func TestPing(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doRequest(r, http.MethodGet, "/ping", "")
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("code=%d body=%q", w.Code, w.Body.String())
	}
}

func TestGetCart(t *testing.T) {
	r, d := newTestRouter(t)
	expectCartSnapshot(d)

	w := doRequest(r, http.MethodGet, "/cart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestAddCartItem_OK(t *testing.T) {
	r, d := newTestRouter(t)
	expectCartSnapshot(d)

	p := &domain.Product{ID: "p1", Name: "widget", Stock: 5}
	d.catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(p, nil)
	d.cart.EXPECT().Add(gomock.Any(), *p, 2).Return(domain.OutcomeAdded, nil)

	w := doRequest(r, http.MethodPost, "/cart/items", `{"product_id":"p1","qty":2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"outcome":"added"`) {
		t.Fatalf("outcome missing: %s", w.Body.String())
	}
}

func TestAddCartItem_ProductNotFound(t *testing.T) {
	r, d := newTestRouter(t)
	d.catalog.EXPECT().GetProduct(gomock.Any(), "ghost").Return(nil, nil)

	w := doRequest(r, http.MethodPost, "/cart/items", `{"product_id":"ghost"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestAddCartItem_OutOfStockConflict(t *testing.T) {
	r, d := newTestRouter(t)
	expectCartSnapshot(d)

	p := &domain.Product{ID: "p1", Name: "widget", ManualStockStatus: domain.StockStatusOut}
	d.catalog.EXPECT().GetProduct(gomock.Any(), "p1").Return(p, nil)
	d.cart.EXPECT().Add(gomock.Any(), *p, 1).Return(domain.OutcomeRejected, nil)

	w := doRequest(r, http.MethodPost, "/cart/items", `{"product_id":"p1"}`)
	if w.Code != http.StatusConflict {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestAddCartItem_BadBody(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doRequest(r, http.MethodPost, "/cart/items", `{"qty":2}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateCartItem_Removed(t *testing.T) {
	r, d := newTestRouter(t)
	expectCartSnapshot(d)

	d.cart.EXPECT().UpdateQty(gomock.Any(), "p1", -2).Return(domain.OutcomeRemoved, nil)

	w := doRequest(r, http.MethodPatch, "/cart/items/p1", `{"delta":-2}`)
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"outcome":"removed"`) {
		t.Fatalf("outcome missing: %s", w.Body.String())
	}
}

func TestClearCart(t *testing.T) {
	r, d := newTestRouter(t)
	expectCartSnapshot(d)
	d.cart.EXPECT().Clear(gomock.Any()).Return(nil)

	w := doRequest(r, http.MethodDelete, "/cart", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestPlaceOrder_Created(t *testing.T) {
	r, d := newTestRouter(t)
	d.checkout.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).
		Return(&domain.Order{ID: "ORD-1", Status: domain.StatusPending}, nil)

	body := `{"customer_name":"alice","delivery":{"phone":"+7000","address":"street 1"}}`
	w := doRequest(r, http.MethodPost, "/checkout", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	r, d := newTestRouter(t)
	d.checkout.EXPECT().PlaceOrder(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrEmptyCart)

	body := `{"customer_name":"alice","delivery":{"phone":"+7000","address":"street 1"}}`
	w := doRequest(r, http.MethodPost, "/checkout", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestGetOrderByID(t *testing.T) {
	r, d := newTestRouter(t)
	d.registry.EXPECT().ByID(gomock.Any(), "ORD-1").Return(&domain.Order{ID: "ORD-1"})
	d.registry.EXPECT().ByID(gomock.Any(), "ORD-404").Return(nil)

	if w := doRequest(r, http.MethodGet, "/orders/ORD-1", ""); w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	if w := doRequest(r, http.MethodGet, "/orders/ORD-404", ""); w.Code != http.StatusNotFound {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestGetOrderByPhone(t *testing.T) {
	r, d := newTestRouter(t)
	d.registry.EXPECT().ByPhone(gomock.Any(), "+7000").Return(&domain.Order{ID: "ORD-1"})

	w := doRequest(r, http.MethodGet, "/orders/by-phone/+7000", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestUpdateOrderStatus_ErrorMapping(t *testing.T) {
	r, d := newTestRouter(t)

	d.registry.EXPECT().UpdateStatus(gomock.Any(), "ORD-1", domain.OrderStatus("BOGUS")).
		Return(nil, orders.ErrUnknownStatus)
	d.registry.EXPECT().UpdateStatus(gomock.Any(), "ORD-404", domain.StatusShipping).
		Return(nil, orders.ErrOrderNotFound)
	d.registry.EXPECT().UpdateStatus(gomock.Any(), "ORD-2", domain.StatusShipping).
		Return(nil, orders.ErrOrderCancelled)
	d.registry.EXPECT().UpdateStatus(gomock.Any(), "ORD-3", domain.StatusShipping).
		Return(&domain.Order{ID: "ORD-3", Status: domain.StatusShipping}, nil)

	cases := []struct {
		path, body string
		want       int
	}{
		{"/orders/ORD-1/status", `{"status":"BOGUS"}`, http.StatusBadRequest},
		{"/orders/ORD-404/status", `{"status":"SHIPPING"}`, http.StatusNotFound},
		{"/orders/ORD-2/status", `{"status":"SHIPPING"}`, http.StatusConflict},
		{"/orders/ORD-3/status", `{"status":"SHIPPING"}`, http.StatusOK},
	}
	for _, tc := range cases {
		if w := doRequest(r, http.MethodPatch, tc.path, tc.body); w.Code != tc.want {
			t.Fatalf("%s: code=%d want=%d body=%s", tc.path, w.Code, tc.want, w.Body.String())
		}
	}
}

func TestListNotifications(t *testing.T) {
	r, d := newTestRouter(t)
	d.notifications.EXPECT().History(gomock.Any()).
		Return([]domain.NotificationEvent{{Type: domain.EventTypeNewOrder, OrderID: "ORD-1"}})

	w := doRequest(r, http.MethodGet, "/notifications", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ORD-1") {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestAdminProductsWindow(t *testing.T) {
	r, d := newTestRouter(t)
	d.admin.EXPECT().Window(gomock.Any(), 40, 20).
		Return([]domain.Product{{ID: "p40", Name: "x"}}, 101, nil)

	w := doRequest(r, http.MethodGet, "/admin/products?first=40&rows=20", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"total":101`) {
		t.Fatalf("total missing: %s", w.Body.String())
	}
}

func TestAdminProductsWindow_DefaultsAndClamp(t *testing.T) {
	r, d := newTestRouter(t)
	// rows сверх максимума урезается до 200, отрицательный first игнорируется
	d.admin.EXPECT().Window(gomock.Any(), 0, 200).Return(nil, 0, nil)

	w := doRequest(r, http.MethodGet, "/admin/products?first=-5&rows=10000", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestAdminProductsRefresh(t *testing.T) {
	r, d := newTestRouter(t)
	d.admin.EXPECT().Refresh(gomock.Any())

	w := doRequest(r, http.MethodPost, "/admin/products/refresh", "")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
}

func TestNoRouteAndNoMethod(t *testing.T) {
	r, _ := newTestRouter(t)
	if w := doRequest(r, http.MethodGet, "/nope", ""); w.Code != http.StatusNotFound {
		t.Fatalf("no route: code=%d", w.Code)
	}
	if w := doRequest(r, http.MethodPut, "/cart", ""); w.Code != http.StatusMethodNotAllowed {
		t.Fatalf("no method: code=%d", w.Code)
	}
}
