package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hygienicomfort/shop_api/internal/models"
	"github.com/hygienicomfort/shop_api/internal/service"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

type OrderHandler struct {
	orderService *service.OrderService
}

func NewOrderHandler(orderService *service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func orderID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid order id")
		return uuid.Nil, false
	}
	return id, true
}

// List handles GET /v1/orders?search=&status=.
func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.orderService.List(c.Query("search"), c.Query("status"))
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Orders retrieved", orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.orderService.Get(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Order retrieved", order)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var req service.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, err := h.orderService.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Order created", order)
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req service.SaveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, err := h.orderService.Update(id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Order updated", order)
}

// Approve handles POST /v1/orders/:id/approve. The response carries the
// WhatsApp confirmation link for the frontend to open.
func (h *OrderHandler) Approve(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	result, err := h.orderService.Approve(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Order approved", result)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	order, err := h.orderService.Cancel(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Order cancelled", order)
}

// UpdateStatus handles PATCH /v1/orders/:id/status.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateStatus(id, models.OrderStatus(req.Status))
	if err != nil {
		serviceError(c, err)
		return
	}

	utils.Success(c, 200, "Order status updated", gin.H{
		"order":        order,
		"whatsappLink": h.orderService.StatusLink(order),
	})
}

// Delete is admin-only, enforced by route middleware.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	if err := h.orderService.Delete(id); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Order deleted", nil)
}

// SuggestCustomers handles GET /v1/orders/customer-suggestions?term= for
// the order form autocomplete.
func (h *OrderHandler) SuggestCustomers(c *gin.Context) {
	customers, err := h.orderService.SuggestCustomers(c.Query("term"))
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Suggestions retrieved", customers)
}
