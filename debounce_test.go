package tinybutton

import (
	"testing"

	"github.com/callebjorkell/tiny-button/internal/qtime"
	"github.com/stretchr/testify/assert"
)

func TestDebouncerAcceptsStableLevel(t *testing.T) {
	d := debouncer{window: 12} // 48 ms

	assert.False(t, d.stabilize(true, 0), "a fresh flip must not be accepted")
	assert.False(t, d.stabilize(true, 11), "window has not elapsed yet")
	assert.True(t, d.stabilize(true, 12), "level held for a full window")
	assert.True(t, d.stabilize(true, 200))
}

func TestDebouncerFlipRestartsWindow(t *testing.T) {
	d := debouncer{window: 12}

	d.stabilize(true, 0)
	d.stabilize(false, 6)
	assert.False(t, d.stabilize(true, 10), "flip at t=10 restarts the window")
	assert.False(t, d.stabilize(true, 21))
	assert.True(t, d.stabilize(true, 22))
}

func TestDebouncerSuppressesBounce(t *testing.T) {
	d := debouncer{window: 12}

	// Rapid alternation for 40 ms (10 ticks), always shorter than the
	// window: output must never leave false.
	level := true
	for now := qtime.Ticks(0); now < 10; now++ {
		assert.False(t, d.stabilize(level, now))
		level = !level
	}

	// Settles high at tick 10; accepted exactly one window later.
	for now := qtime.Ticks(10); now < 22; now++ {
		assert.False(t, d.stabilize(true, now), "now=%d", now)
	}
	assert.True(t, d.stabilize(true, 22))
}

func TestDebouncerZeroWindowAcceptsHeldLevel(t *testing.T) {
	d := debouncer{window: 0}

	assert.False(t, d.stabilize(true, 5), "the flip call itself never accepts")
	assert.True(t, d.stabilize(true, 5))
}
