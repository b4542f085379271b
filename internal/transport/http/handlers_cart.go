package rest

import (
	"net/http"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/gin-gonic/gin"
)

// cartView — ответ со срезом корзины и производными суммами.
type cartView struct {
	Lines      []domain.CartLine `json:"lines"`
	Subtotal   string            `json:"subtotal"`
	TotalItems int               `json:"total_items"`
}

func (h *Handler) cartSnapshot() cartView {
	return cartView{
		Lines:      h.cart.Lines(),
		Subtotal:   h.cart.Subtotal().String(),
		TotalItems: h.cart.TotalItems(),
	}
}

func (h *Handler) getCart(c *gin.Context) {
	c.JSON(http.StatusOK, h.cartSnapshot())
}

type addItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Qty       int    `json:"qty"`
}

func (h *Handler) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	product, err := h.catalog.GetProduct(ctx, req.ProductID)
	if err != nil {
		h.log.Errorf(ctx, "catalog.GetProduct failed id=%s err=%v", req.ProductID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}
	if product == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	outcome, err := h.cart.Add(ctx, *product, req.Qty)
	if err != nil {
		h.log.Errorf(ctx, "cart.Add failed id=%s err=%v", req.ProductID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status := http.StatusOK
	if outcome == domain.OutcomeRejected {
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"outcome": outcome, "cart": h.cartSnapshot()})
}

type updateItemRequest struct {
	Delta int `json:"delta" binding:"required"`
}

func (h *Handler) updateCartItem(c *gin.Context) {
	productID := c.Param("productID")
	if productID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty product id"})
		return
	}

	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	outcome, err := h.cart.UpdateQty(ctx, productID, req.Delta)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "cart line not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"outcome": outcome, "cart": h.cartSnapshot()})
}

// refreshCart — сверка снимков корзины со свежими данными каталога.
// Товары, которых каталог больше не отдаёт, остаются как есть:
// локальный снимок авторитетен.
func (h *Handler) refreshCart(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	fresh := make([]domain.Product, 0, len(h.cart.Lines()))
	for _, line := range h.cart.Lines() {
		p, err := h.catalog.GetProduct(ctx, line.Product.ID)
		if err != nil {
			h.log.Warnf(ctx, "cart refresh: GetProduct failed id=%s err=%v", line.Product.ID, err)
			continue
		}
		if p != nil {
			fresh = append(fresh, *p)
		}
	}

	if err := h.cart.Refresh(ctx, fresh); err != nil {
		h.log.Errorf(ctx, "cart.Refresh failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, h.cartSnapshot())
}

func (h *Handler) clearCart(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	if err := h.cart.Clear(ctx); err != nil {
		h.log.Errorf(ctx, "cart.Clear failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, h.cartSnapshot())
}
