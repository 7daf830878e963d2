package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hygienicomfort/shop_api/internal/models"
)

func TestFormatAmountMasksForStaff(t *testing.T) {
	amount := decimal.RequireFromString("12345.50")

	assert.Equal(t, "₹12345.50", FormatAmount(amount, models.RoleAdmin))
	assert.Equal(t, MaskedAmount, FormatAmount(amount, models.RoleStaff))
	assert.Equal(t, MaskedAmount, FormatAmount(amount, ""))
}
