package qtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuantize(t *testing.T) {
	tt := []struct {
		name  string
		input time.Duration
		want  Ticks
	}{
		{"zero", 0, 0},
		{"sub resolution truncates", 3 * time.Millisecond, 0},
		{"exactly one tick", 4 * time.Millisecond, 1},
		{"rounds down", 7 * time.Millisecond, 1},
		{"default click window", 400 * time.Millisecond, 100},
		{"default press threshold", 800 * time.Millisecond, 200},
		{"one minute", time.Minute, 15000},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Quantize(tc.input))
		})
	}
}

func TestSubWrapsAround(t *testing.T) {
	// The same true gap must yield the same tick count no matter where it
	// lands relative to the counter boundary.
	const gap = Ticks(150)

	for _, start := range []Ticks{0, 1000, 0xffff - 200, 0xffff - 75, 0xffff} {
		end := start + gap
		assert.Equal(t, gap, end.Sub(start), "start=%d", start)
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 600*time.Millisecond, Ticks(150).Duration())
	assert.Equal(t, time.Duration(0), Ticks(0).Duration())
}

func TestSpan(t *testing.T) {
	assert.Equal(t, 262144*time.Millisecond, Span)
}
