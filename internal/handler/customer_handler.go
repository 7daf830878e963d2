package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/hygienicomfort/shop_api/internal/invoice"
	"github.com/hygienicomfort/shop_api/internal/service"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

type CustomerHandler struct {
	customerService *service.CustomerService
	renderer        *invoice.Renderer
}

func NewCustomerHandler(customerService *service.CustomerService, renderer *invoice.Renderer) *CustomerHandler {
	return &CustomerHandler{customerService: customerService, renderer: renderer}
}

func customerID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid customer id")
		return uuid.Nil, false
	}
	return id, true
}

// List handles GET /v1/customers?search=&sortBy=.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.List(c.Query("search"), c.Query("sortBy"))
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Customers retrieved", customers)
}

// Profile handles GET /v1/customers/:id/profile with the resolved order
// history and recomputed lifetime figures.
func (h *CustomerHandler) Profile(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	profile, err := h.customerService.Profile(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Customer profile retrieved", profile)
}

func (h *CustomerHandler) Create(c *gin.Context) {
	var req service.SaveCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	customer, err := h.customerService.Create(&req)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Customer created", customer)
}

func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	var req service.SaveCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	customer, err := h.customerService.Update(id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Customer updated", customer)
}

func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	if err := h.customerService.Delete(id); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Customer deleted", nil)
}

// Statement handles GET /v1/customers/:id/statement and returns the
// printable HTML account statement.
func (h *CustomerHandler) Statement(c *gin.Context) {
	id, ok := customerID(c)
	if !ok {
		return
	}

	profile, err := h.customerService.Profile(id)
	if err != nil {
		serviceError(c, err)
		return
	}

	html, err := h.renderer.RenderStatement(profile.Customer, profile.Orders, profile.TotalSpend)
	if err != nil {
		serviceError(c, err)
		return
	}

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(200, html)
}
