package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hygienicomfort/shop_api/internal/service"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

type InventoryHandler struct {
	inventoryService *service.InventoryService
}

func NewInventoryHandler(inventoryService *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

// Move handles POST /v1/inventory/movements. The log entry and the
// stock change commit together.
func (h *InventoryHandler) Move(c *gin.Context) {
	var req service.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	result, err := h.inventoryService.ApplyMovement(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Movement recorded", result)
}

// History handles GET /v1/inventory/products/:id/history.
func (h *InventoryHandler) History(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}

	logs, err := h.inventoryService.History(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Movement history retrieved", logs)
}

// Recent handles GET /v1/inventory/movements?limit=.
func (h *InventoryHandler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	logs, err := h.inventoryService.Recent(limit)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Recent movements retrieved", logs)
}
