package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"plain ten digits", "9876543210", "9876543210", true},
		{"spaces and dashes", "98-765 43210", "9876543210", true},
		{"with country prefix", "+919876543210", "9876543210", true},
		{"country prefix no plus", "919876543210", "9876543210", true},
		{"too short", "98765", "", false},
		{"too long", "98765432101", "", false},
		{"empty", "", "", false},
		{"letters only", "phone", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizePhone(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFormatPhone(t *testing.T) {
	assert.Equal(t, "+919876543210", FormatPhone("9876543210"))
}
