package tinybutton

import "github.com/callebjorkell/tiny-button/internal/qtime"

// debouncer is a fixed-window contact bounce filter. The accepted level only
// follows the raw level once the raw level has held steady for a full window;
// any flip restarts the window.
type debouncer struct {
	window   qtime.Ticks
	lastSeen bool
	lastFlip qtime.Ticks
	accepted bool
}

func (d *debouncer) stabilize(level bool, now qtime.Ticks) bool {
	if d.lastSeen == level {
		if now.Sub(d.lastFlip) >= d.window {
			d.accepted = level
		}
	} else {
		// A flip never becomes the accepted level in the same call.
		d.lastFlip = now
		d.lastSeen = level
	}
	return d.accepted
}
