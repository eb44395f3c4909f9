// Package display drives a 2x16 HD44780 character LCD showing the last
// recognized gesture and running per-kind counters. Off a Pi it degrades to
// log lines.
package display

import (
	"fmt"

	tinybutton "github.com/callebjorkell/tiny-button"
)

// Line addresses one of the two display rows.
type Line byte

const (
	Line1 Line = 0x80
	Line2 Line = 0xC0

	lineWidth = 16
)

func (l Line) String() string {
	switch l {
	case Line1:
		return "L1"
	case Line2:
		return "L2"
	}
	return "N/A"
}

// Counters tracks how many of each gesture have been seen.
type Counters struct {
	Clicks       int
	DoubleClicks int
	LongPresses  int
}

// Count records one more event of the given kind.
func (c *Counters) Count(kind tinybutton.Kind) {
	switch kind {
	case tinybutton.Click:
		c.Clicks++
	case tinybutton.DoubleClick:
		c.DoubleClicks++
	case tinybutton.LongPress:
		c.LongPresses++
	}
}

// fitLine pads or truncates to the display width.
func fitLine(s string) string {
	if len(s) > lineWidth {
		return s[:lineWidth]
	}
	return fmt.Sprintf("%-16s", s)
}

func eventLine(ev tinybutton.Event) string {
	return fitLine(fmt.Sprintf("%s %s", ev.Kind, ev.Channel))
}

func counterLine(c Counters) string {
	return fitLine(fmt.Sprintf("1x%d 2x%d hold%d", c.Clicks, c.DoubleClicks, c.LongPresses))
}

// Show puts the event on the top row and the counters on the bottom one.
func (d *Display) Show(ev tinybutton.Event, c Counters) {
	d.Print(Line1, eventLine(ev))
	d.Print(Line2, counterLine(c))
}

// Reset shows the idle banner.
func (d *Display) Reset() {
	d.Print(Line1, fitLine("  tiny-button"))
	d.Print(Line2, fitLine(""))
}
