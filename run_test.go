package tinybutton

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/callebjorkell/tiny-button/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRecognizesClick(t *testing.T) {
	s := sim.New("sim0")
	b := New(s, true)
	b.SetDebounce(5 * time.Millisecond)
	b.SetClickWindow(50 * time.Millisecond)
	b.SetPressThreshold(200 * time.Millisecond)

	var clicks int32
	b.OnClick(func() { atomic.AddInt32(&clicks, 1) })

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx, time.Millisecond)
		close(done)
	}()

	s.Press()
	time.Sleep(30 * time.Millisecond)
	s.Release()

	require.Eventually(t, func() bool {
		return atomic.LoadInt32(&clicks) == 1
	}, time.Second, 5*time.Millisecond, "the run loop should drive a click")

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run loop did not stop on cancel")
	}
}

func TestRunDefaultsInterval(t *testing.T) {
	s := sim.New("sim0")
	b := New(s, true)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		b.Run(ctx, 0)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("run loop did not stop on cancel")
	}
	assert.True(t, b.IsIdle())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "click", Click.String())
	assert.Equal(t, "double_click", DoubleClick.String())
	assert.Equal(t, "long_press", LongPress.String())
	assert.Equal(t, "unknown", Kind(9).String())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "init", StateInit.String())
	assert.Equal(t, "down", StateDown.String())
	assert.Equal(t, "up", StateUp.String())
	assert.Equal(t, "count", StateCount.String())
	assert.Equal(t, "press", StatePress.String())
	assert.Equal(t, "pressend", StatePressEnd.String())
	assert.Equal(t, "unknown", State(7).String())
}
