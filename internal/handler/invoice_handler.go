package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/hygienicomfort/shop_api/internal/invoice"
	"github.com/hygienicomfort/shop_api/internal/service"
)

// InvoiceHandler serves printable invoice HTML for orders.
type InvoiceHandler struct {
	orderService *service.OrderService
	renderer     *invoice.Renderer
}

func NewInvoiceHandler(orderService *service.OrderService, renderer *invoice.Renderer) *InvoiceHandler {
	return &InvoiceHandler{orderService: orderService, renderer: renderer}
}

// Invoice handles GET /v1/orders/:id/invoice.
func (h *InvoiceHandler) Invoice(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.orderService.Get(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	html, err := h.renderer.RenderInvoice(order)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(200, html)
}
