package rest

import (
	"errors"
	"net/http"

	"github.com/craftline/shopfront/internal/domain"
	"github.com/craftline/shopfront/internal/orders"
	"github.com/craftline/shopfront/internal/usecase"
	"github.com/craftline/shopfront/pkg/validate"
	"github.com/gin-gonic/gin"
)

type checkoutRequest struct {
	CustomerName  string          `json:"customer_name" binding:"required"`
	Delivery      domain.Delivery `json:"delivery" binding:"required"`
	PaymentMethod string          `json:"payment_method"`
}

func (h *Handler) placeOrder(c *gin.Context) {
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	draft := &domain.Order{
		CustomerName:  req.CustomerName,
		Delivery:      req.Delivery,
		PaymentMethod: req.PaymentMethod,
	}

	order, err := h.checkout.PlaceOrder(ctx, draft)
	switch {
	case errors.Is(err, usecase.ErrEmptyCart):
		c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
		return
	case errors.Is(err, validate.ErrInvalidOrder):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	case err != nil:
		h.log.Errorf(ctx, "PlaceOrder failed err=%v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusCreated, order)
}

func (h *Handler) listOrders(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()
	c.JSON(http.StatusOK, h.registry.List(ctx))
}

func (h *Handler) getOrderByID(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	order := h.registry.ByID(ctx, id)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *Handler) getOrderByPhone(c *gin.Context) {
	phone := c.Param("phone")
	if phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty phone"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	order := h.registry.ByPhone(ctx, phone)
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, order)
}

type updateStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required"`
}

func (h *Handler) updateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty id"})
		return
	}

	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	order, err := h.registry.UpdateStatus(ctx, id, req.Status)
	switch {
	case errors.Is(err, orders.ErrUnknownStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
		return
	case errors.Is(err, orders.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	case errors.Is(err, orders.ErrOrderCancelled):
		c.JSON(http.StatusConflict, gin.H{"error": "order is cancelled"})
		return
	case err != nil:
		h.log.Errorf(ctx, "UpdateStatus failed id=%s err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (h *Handler) listNotifications(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()
	c.JSON(http.StatusOK, h.notifications.History(ctx))
}
