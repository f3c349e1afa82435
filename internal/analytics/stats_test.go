package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregatesOnEmptyInput(t *testing.T) {
	assert.Equal(t, 0.0, mean(nil))
	assert.Equal(t, 0.0, median(nil))
	assert.Equal(t, 0.0, minOf(nil))
	assert.Equal(t, 0.0, maxOf(nil))
	assert.Equal(t, 0.0, percentile(nil, 50))
	assert.Equal(t, 0.0, sum(nil))
}

func TestStdDevIsSampleBased(t *testing.T) {
	assert.Equal(t, 0.0, stdDev(nil))
	assert.Equal(t, 0.0, stdDev([]float64{42}))
	// Sample variance of {2,4} is 2.
	assert.InDelta(t, 1.41421, stdDev([]float64{2, 4}), 0.0001)
}

func TestPctFormatting(t *testing.T) {
	assert.Equal(t, "30.0%", pct(3, 10))
	assert.Equal(t, "33.3%", pct(1, 3))
	assert.Equal(t, "0.0%", pct(5, 0))
	assert.Equal(t, "100.0%", pct(10, 10))
}
