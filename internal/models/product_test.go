package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLowStock(t *testing.T) {
	// At the threshold counts as low
	p := &Product{Stock: 5, MinStock: 5}
	assert.True(t, p.IsLowStock())

	p = &Product{Stock: 6, MinStock: 5}
	assert.False(t, p.IsLowStock())

	p = &Product{Stock: 0, MinStock: 5}
	assert.True(t, p.IsLowStock())
}

func TestImageListScan(t *testing.T) {
	var imgs ImageList
	require.NoError(t, imgs.Scan([]byte(`["a.jpg","b.jpg"]`)))
	assert.Equal(t, ImageList{"a.jpg", "b.jpg"}, imgs)

	require.NoError(t, imgs.Scan(nil))
	assert.Empty(t, imgs)
}
