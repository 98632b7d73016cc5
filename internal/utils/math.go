package utils

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sort"
)

// RandomFloat returns a random float64 in [0.0, 1.0)
func RandomFloat() float64 {
	return rand.Float64() //nolint:gosec // Game logic randomness, not security critical
}

// SecureRandomFloat returns a float64 in [0.0, 1.0) drawn from crypto/rand.
// Falls back to math/rand if the system source fails.
func SecureRandomFloat() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return RandomFloat()
	}
	// 53 random bits map exactly onto the float64 mantissa
	return float64(binary.BigEndian.Uint64(b[:])>>11) / (1 << 53)
}

// CumulativeWeights returns running totals of weights. Non-positive weights add nothing.
func CumulativeWeights(weights []int) []int {
	out := make([]int, len(weights))
	total := 0
	for i, w := range weights {
		if w > 0 {
			total += w
		}
		out[i] = total
	}
	return out
}

// PickWeighted maps roll in [0,1) onto an index of the cumulative weights.
// Returns -1 when the total weight is zero.
func PickWeighted(cumulative []int, roll float64) int {
	if len(cumulative) == 0 {
		return -1
	}
	total := cumulative[len(cumulative)-1]
	if total <= 0 {
		return -1
	}
	if roll < 0 {
		roll = 0
	}
	target := int(roll * float64(total))
	if target >= total {
		target = total - 1
	}
	// First index whose running total exceeds target
	return sort.Search(len(cumulative), func(i int) bool {
		return cumulative[i] > target
	})
}
