package rest

import (
	"net/http"

	"github.com/craftline/shopfront/pkg/httpx"
	"github.com/gin-gonic/gin"
)

const (
	defaultWindowRows = 20
	maxWindowRows     = 200
)

// adminProductsWindow — окно [first, first+rows) админ-таблицы.
// total — оценка: точная, только когда каталог уже отдал короткий чанк.
func (h *Handler) adminProductsWindow(c *gin.Context) {
	first, rows := httpx.ParseWindow(c, defaultWindowRows, maxWindowRows)

	ctx, cancel := h.reqCtx(c)
	defer cancel()

	items, total, err := h.admin.Window(ctx, first, rows)
	if err != nil {
		h.log.Errorf(ctx, "admin.Window failed first=%d rows=%d err=%v", first, rows, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "catalog unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"first": first,
		"total": total,
	})
}

func (h *Handler) adminProductsRefresh(c *gin.Context) {
	ctx, cancel := h.reqCtx(c)
	defer cancel()

	h.admin.Refresh(ctx)
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}
