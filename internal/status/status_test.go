package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFor(t *testing.T) {
	assert.Equal(t, Negative, For(-1, DefaultLowThreshold))
	assert.Equal(t, Zero, For(0, DefaultLowThreshold))
	assert.Equal(t, Low, For(1, DefaultLowThreshold))
	assert.Equal(t, Low, For(99, DefaultLowThreshold))
	assert.Equal(t, Healthy, For(100, DefaultLowThreshold))
	assert.Equal(t, Healthy, For(5000, DefaultLowThreshold))
}

func TestFor_CustomThreshold(t *testing.T) {
	assert.Equal(t, Low, For(499, 500))
	assert.Equal(t, Healthy, For(500, 500))
	assert.Equal(t, Healthy, For(1, 0), "a zero threshold leaves no low band")
}
