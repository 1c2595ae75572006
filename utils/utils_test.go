package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(5, 0, 10))
	assert.Equal(t, 0.0, Clamp(-3, 0, 10))
	assert.Equal(t, 10.0, Clamp(42, 0, 10))
	assert.Equal(t, 0.0, Clamp(0, 0, 10))
	assert.Equal(t, 10.0, Clamp(10, 0, 10))
}

func TestMean(t *testing.T) {
	assert.Zero(t, Mean(nil))
	assert.Zero(t, Mean([]float64{}))
	assert.InDelta(t, 2.0, Mean([]float64{1, 2, 3}), 1e-9)
}

func TestMeanInts(t *testing.T) {
	assert.Zero(t, MeanInts(nil))
	assert.InDelta(t, 2.5, MeanInts([]int{2, 3}), 1e-9)
}

func TestPercentChange(t *testing.T) {
	assert.InDelta(t, 100.0, PercentChange(0.5, 1.0), 1e-9)
	assert.InDelta(t, -50.0, PercentChange(1.0, 0.5), 1e-9)
	// Zero previous value guards against division by zero.
	assert.Zero(t, PercentChange(0, 1.0))
}
