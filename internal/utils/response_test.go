package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNowISO(t *testing.T) {
	parsed, err := time.Parse(time.RFC3339, NowISO())
	require.NoError(t, err)

	// Envelope timestamps carry the shop's IST offset.
	_, offset := parsed.Zone()
	assert.Equal(t, 5*3600+1800, offset)
}
