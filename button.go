// Package tinybutton turns the noisy level of a momentary pushbutton into
// debounced click, double click and long press events.
//
// A Button is driven by calling Tick (or TickLevel) at a short, regular
// interval. Each tick samples the level, runs it through a fixed-window
// debounce filter, and advances a small state machine that measures press and
// gap durations. Registered callbacks fire synchronously inside the tick.
//
// A Button is not safe for concurrent use: ticks, setters and callback
// registration must all happen from the single goroutine driving the button.
// Run satisfies this by doing everything from one loop.
package tinybutton

import (
	"time"

	"github.com/callebjorkell/tiny-button/internal/qtime"
)

const (
	// DefaultDebounce is the default contact settle window.
	DefaultDebounce = 50 * time.Millisecond
	// DefaultClickWindow is the default wait for a possible second click.
	DefaultClickWindow = 400 * time.Millisecond
	// DefaultPressThreshold is the default hold time for a long press.
	DefaultPressThreshold = 800 * time.Millisecond

	// Clicks beyond a double are not distinguished, the counter just
	// saturates.
	maxClicks = 3
)

// Button recognizes gestures on a single input channel. All state is fixed
// size; nothing allocates after construction.
type Button struct {
	src       LevelSource
	activeLow bool

	debounce   debouncer
	clickTicks qtime.Ticks
	pressTicks qtime.Ticks

	state     State
	clicks    uint8
	startTime qtime.Ticks

	clickFunc       func()
	doubleClickFunc func()
	longPressFunc   func()

	epoch time.Time
	now   func() time.Time
}

// New creates a Button bound to the given level source. With activeLow set,
// an electrically low level counts as pressed (the usual wiring for a button
// against ground with a pull-up). Pull resistor setup belongs to the source
// adapter, not here.
func New(src LevelSource, activeLow bool) *Button {
	b := newButton(activeLow)
	b.src = src
	return b
}

// NewForLevels creates an unbound Button that is driven exclusively through
// TickLevel. Tick on an unbound button sees a constant inactive level.
func NewForLevels(activeLow bool) *Button {
	return newButton(activeLow)
}

func newButton(activeLow bool) *Button {
	b := &Button{
		activeLow: activeLow,
		now:       time.Now,
	}
	b.epoch = b.now()
	b.SetDebounce(DefaultDebounce)
	b.SetClickWindow(DefaultClickWindow)
	b.SetPressThreshold(DefaultPressThreshold)
	return b
}

// SetDebounce sets the window a raw level must hold steady before it is
// accepted. Takes effect on the next tick; an in-flight window is not
// re-evaluated retroactively.
func (b *Button) SetDebounce(d time.Duration) {
	b.debounce.window = qtime.Quantize(d)
}

// SetClickWindow sets how long the recognizer waits after a release for a
// possible second press before dispatching.
func (b *Button) SetClickWindow(d time.Duration) {
	b.clickTicks = qtime.Quantize(d)
}

// SetPressThreshold sets how long the button must be held before a long
// press fires.
func (b *Button) SetPressThreshold(d time.Duration) {
	b.pressTicks = qtime.Quantize(d)
}

// OnClick registers the single click handler. Re-registering replaces the
// previous handler; nil disables dispatch.
func (b *Button) OnClick(f func()) {
	b.clickFunc = f
}

// OnDoubleClick registers the double click handler.
func (b *Button) OnDoubleClick(f func()) {
	b.doubleClickFunc = f
}

// OnLongPress registers the handler fired when a hold crosses the press
// threshold. It fires at the crossing, not at release. There is no
// corresponding long-press-end event.
func (b *Button) OnLongPress(f func()) {
	b.longPressFunc = f
}

// Tick samples the bound source, maps polarity and advances the recognizer.
// Callbacks fire synchronously before Tick returns.
func (b *Button) Tick() {
	raw := false
	if b.src != nil {
		raw = b.src.Read()
	}
	active := raw
	if b.activeLow {
		active = !raw
	}
	b.advance(active)
}

// TickLevel advances the recognizer with a caller-supplied active level,
// bypassing the source and the polarity mapping. The level still passes
// through the debounce filter.
func (b *Button) TickLevel(active bool) {
	b.advance(active)
}

func (b *Button) advance(active bool) {
	now := b.ticks()
	b.fsm(b.debounce.stabilize(active, now), now)
}

func (b *Button) fsm(active bool, now qtime.Ticks) {
	elapsed := now.Sub(b.startTime)

	switch b.state {
	case StateInit:
		if active {
			b.state = StateDown
			b.startTime = now
			b.clicks = 0
		}

	case StateDown:
		if !active {
			b.state = StateUp
			b.startTime = now
		} else if elapsed > b.pressTicks {
			if b.longPressFunc != nil {
				b.longPressFunc()
			}
			b.state = StatePress
		}

	case StateUp:
		if b.clicks < maxClicks {
			b.clicks++
		}
		b.state = StateCount

	case StateCount:
		if active {
			b.state = StateDown
			b.startTime = now
		} else if elapsed >= b.clickTicks || b.clicks >= 2 {
			if b.clicks == 1 && b.clickFunc != nil {
				b.clickFunc()
			} else if b.clicks >= 2 && b.doubleClickFunc != nil {
				b.doubleClickFunc()
			}
			b.Reset()
		}

	case StatePress:
		if !active {
			b.state = StatePressEnd
			b.startTime = now
		}

	case StatePressEnd:
		b.Reset()

	default:
		// Unreachable unless the state value is corrupted elsewhere.
		b.Reset()
	}
}

// Reset forces the recognizer back to idle, discarding any press or click
// sequence in progress. Useful before suspending the driving loop.
func (b *Button) Reset() {
	b.state = StateInit
	b.clicks = 0
	b.startTime = 0
}

// IsIdle reports whether no gesture is in progress, meaning it is safe to
// stop ticking without losing anything.
func (b *Button) IsIdle() bool {
	return b.state == StateInit
}

// State returns the recognizer's current state.
func (b *Button) State() State {
	return b.state
}

// Channel returns the name of the bound input channel, or the empty string
// for an unbound button.
func (b *Button) Channel() string {
	if b.src == nil {
		return ""
	}
	return b.src.Name()
}

func (b *Button) ticks() qtime.Ticks {
	return qtime.Quantize(b.now().Sub(b.epoch))
}
