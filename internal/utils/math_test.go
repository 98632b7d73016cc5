package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSecureRandomFloat_Range(t *testing.T) {
	for i := 0; i < 1000; i++ {
		f := SecureRandomFloat()
		require.GreaterOrEqual(t, f, 0.0)
		require.Less(t, f, 1.0)
	}
}

func TestCumulativeWeights(t *testing.T) {
	assert.Equal(t, []int{50, 80, 80, 95}, CumulativeWeights([]int{50, 30, -2, 15}))
	assert.Empty(t, CumulativeWeights(nil))
}

func TestPickWeighted(t *testing.T) {
	cumulative := CumulativeWeights([]int{50, 30, 0, 20})

	tests := []struct {
		name string
		roll float64
		want int
	}{
		{"lowest roll", 0.0, 0},
		{"end of first bucket", 0.499, 0},
		{"start of second bucket", 0.5, 1},
		{"zero weight bucket is skipped", 0.8, 3},
		{"top roll", 0.9999, 3},
		{"out of range roll is clamped", 1.5, 3},
		{"negative roll is clamped", -0.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PickWeighted(cumulative, tt.roll))
		})
	}
}

func TestPickWeighted_NoWeight(t *testing.T) {
	assert.Equal(t, -1, PickWeighted(nil, 0.5))
	assert.Equal(t, -1, PickWeighted([]int{0, 0}, 0.5))
}
