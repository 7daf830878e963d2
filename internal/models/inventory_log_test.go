package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidReason(t *testing.T) {
	for _, r := range []string{ReasonNewShipment, ReasonReturn, ReasonCorrection, ReasonDamage} {
		assert.True(t, ValidReason(r), r)
	}
	assert.False(t, ValidReason("Theft"))
	assert.False(t, ValidReason(""))
}
