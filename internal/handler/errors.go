package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/hygienicomfort/shop_api/internal/utils"
)

// serviceError maps service-layer sentinel errors onto the HTTP envelope.
// Anything unrecognized becomes a 500 without leaking internals.
func serviceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, utils.ErrInvalidCredentials):
		utils.Error(c, 401, "INVALID_CREDENTIALS", "Invalid email or password")
	case errors.Is(err, utils.ErrAccountInactive):
		utils.Error(c, 403, "ACCOUNT_INACTIVE", "Account is inactive")
	case errors.Is(err, utils.ErrInvalidToken):
		utils.Error(c, 401, "INVALID_TOKEN", "Invalid or expired token")
	case errors.Is(err, utils.ErrInvalidPhone):
		utils.Error(c, 400, "INVALID_PHONE", "Phone number must be 10 digits")
	case errors.Is(err, utils.ErrInvalidQuantity):
		utils.Error(c, 400, "INVALID_QUANTITY", "Quantity must be at least 1")
	case errors.Is(err, utils.ErrInvalidReason):
		utils.Error(c, 400, "INVALID_REASON", "Unknown movement type or reason")
	case errors.Is(err, utils.ErrInvalidStatus):
		utils.Error(c, 400, "INVALID_STATUS", "Unknown order status")
	case errors.Is(err, utils.ErrInvalidTransition):
		utils.Error(c, 409, "INVALID_TRANSITION", "Order status can only move forward")
	case errors.Is(err, utils.ErrOrderCancelled):
		utils.Error(c, 409, "ORDER_CANCELLED", "Cancelled orders cannot be changed")
	case errors.Is(err, utils.ErrOrderNotApproved):
		utils.Error(c, 409, "ORDER_NOT_APPROVED", "Order must be approved first")
	case errors.Is(err, utils.ErrAlreadyApproved):
		utils.Error(c, 409, "ALREADY_APPROVED", "Order is already approved")
	case errors.Is(err, utils.ErrOrderNotFound):
		utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
	case errors.Is(err, utils.ErrProductNotFound):
		utils.Error(c, 404, "PRODUCT_NOT_FOUND", "Product not found")
	case errors.Is(err, utils.ErrCustomerNotFound):
		utils.Error(c, 404, "CUSTOMER_NOT_FOUND", "Customer not found")
	case errors.Is(err, utils.ErrDuplicatePhone):
		utils.Error(c, 409, "DUPLICATE_PHONE", "A customer with this phone already exists")
	case errors.Is(err, utils.ErrInsufficientStock):
		utils.Error(c, 409, "INSUFFICIENT_STOCK", "Not enough stock for this movement")
	case errors.Is(err, utils.ErrMovementLogFailed):
		utils.Error(c, 500, "MOVEMENT_LOG_FAILED", "Failed to record stock movement")
	case errors.Is(err, utils.ErrStockUpdateFailed):
		utils.Error(c, 500, "STOCK_UPDATE_FAILED", "Failed to update stock level")
	default:
		utils.Error(c, 500, "INTERNAL_ERROR", "Something went wrong")
	}
}
