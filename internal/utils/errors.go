package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrAccountInactive    = errors.New("ACCOUNT_INACTIVE")
	ErrInvalidToken       = errors.New("INVALID_TOKEN")

	ErrInvalidPhone      = errors.New("INVALID_PHONE")
	ErrInvalidQuantity   = errors.New("INVALID_QUANTITY")
	ErrInvalidReason     = errors.New("INVALID_REASON")
	ErrInvalidStatus     = errors.New("INVALID_STATUS")
	ErrInvalidTransition = errors.New("INVALID_TRANSITION")
	ErrOrderCancelled    = errors.New("ORDER_CANCELLED")
	ErrOrderNotApproved  = errors.New("ORDER_NOT_APPROVED")
	ErrAlreadyApproved   = errors.New("ALREADY_APPROVED")
	ErrOrderNotFound     = errors.New("ORDER_NOT_FOUND")
	ErrProductNotFound   = errors.New("PRODUCT_NOT_FOUND")
	ErrCustomerNotFound  = errors.New("CUSTOMER_NOT_FOUND")
	ErrDuplicatePhone    = errors.New("DUPLICATE_PHONE")
	ErrInsufficientStock = errors.New("INSUFFICIENT_STOCK")
	ErrMovementLogFailed = errors.New("MOVEMENT_LOG_FAILED")
	ErrStockUpdateFailed = errors.New("STOCK_UPDATE_FAILED")
)
