package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hygienicomfort/shop_api/internal/service"
	"github.com/hygienicomfort/shop_api/internal/utils"
)

type ProductHandler struct {
	productService *service.ProductService
}

func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles GET /v1/products with search, category, stock and sort
// query parameters plus 8-per-page pagination.
func (h *ProductHandler) List(c *gin.Context) {
	var q service.ProductQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid query parameters")
		return
	}

	page, err := h.productService.List(c.Request.Context(), q)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Products retrieved", page)
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}

	product, err := h.productService.Get(id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Product retrieved", product)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var req service.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.Create(c.Request.Context(), &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Product created", product)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}

	var req service.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, &req)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Product updated", product)
}

// Clone handles POST /v1/products/:id/clone.
func (h *ProductHandler) Clone(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}

	product, err := h.productService.Clone(c.Request.Context(), id)
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 201, "Product cloned", product)
}

func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Product deleted", nil)
}

func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.productService.Categories(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Categories retrieved", categories)
}

// LowStock handles GET /v1/products/low-stock for the restocking list.
func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.productService.LowStock(c.Request.Context())
	if err != nil {
		serviceError(c, err)
		return
	}
	utils.Success(c, 200, "Low stock products retrieved", products)
}
