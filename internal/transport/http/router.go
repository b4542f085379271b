// Пакет rest — HTTP-обвязка витрины: корзина, оформление, реестр заказов,
// уведомления и буферизованная админ-таблица каталога.
package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/craftline/shopfront/internal/ports"
	"github.com/craftline/shopfront/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-обработчики поверх портов приложения.
type Handler struct {
	cart          ports.CartManager
	checkout      ports.CheckoutService
	registry      ports.OrderRegistry
	notifications ports.NotificationHistory
	admin         ports.AdminCatalog
	catalog       ports.CatalogClient
	log           ports.Logger
	timeout       time.Duration // бюджет обработки одного запроса
}

// NewHandler — DI-конструктор.
func NewHandler(
	cart ports.CartManager,
	checkout ports.CheckoutService,
	registry ports.OrderRegistry,
	notifications ports.NotificationHistory,
	admin ports.AdminCatalog,
	catalog ports.CatalogClient,
	log ports.Logger,
	timeout time.Duration,
) *Handler {
	return &Handler{
		cart:          cart,
		checkout:      checkout,
		registry:      registry,
		notifications: notifications,
		admin:         admin,
		catalog:       catalog,
		log:           log,
		timeout:       timeout,
	}
}

// NewRouter — собирает маршруты и middleware.
// Непустой otelServiceName включает otelgin-трейсинг входящих запросов.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cart := r.Group("/cart")
	{
		cart.GET("", h.getCart)
		cart.POST("/items", h.addCartItem)
		cart.PATCH("/items/:productID", h.updateCartItem)
		cart.POST("/refresh", h.refreshCart)
		cart.DELETE("", h.clearCart)
	}

	r.POST("/checkout", h.placeOrder)

	orders := r.Group("/orders")
	{
		orders.GET("", h.listOrders)
		orders.GET("/:id", h.getOrderByID)
		orders.GET("/by-phone/:phone", h.getOrderByPhone)
		orders.PATCH("/:id/status", h.updateOrderStatus)
	}

	r.GET("/notifications", h.listNotifications)

	admin := r.Group("/admin/products")
	{
		admin.GET("", h.adminProductsWindow)
		admin.POST("/refresh", h.adminProductsRefresh)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	return r
}

// reqCtx — контекст запроса, ограниченный бюджетом обработчика.
func (h *Handler) reqCtx(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return c.Request.Context(), func() {}
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}
