package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSimulatedClock(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	c := NewSimulatedClock(start)

	assert.Equal(t, start, c.Now())

	c.Advance(90 * time.Minute)
	assert.Equal(t, 90*time.Minute, c.Since(start))
	assert.Equal(t, -90*time.Minute, c.Until(start))

	c.Advance(-2 * time.Hour)
	assert.True(t, c.Now().Before(start))

	c.Set(start)
	assert.Equal(t, start, c.Now())
}

func TestRealClock(t *testing.T) {
	c := NewRealClock()
	before := time.Now()
	assert.False(t, c.Now().Before(before))
}
