package display

import (
	"testing"

	tinybutton "github.com/callebjorkell/tiny-button"
	"github.com/stretchr/testify/assert"
)

func TestFitLine(t *testing.T) {
	tt := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", "                "},
		{"short is padded", "click", "click           "},
		{"exact width", "0123456789abcdef", "0123456789abcdef"},
		{"long is truncated", "0123456789abcdefgh", "0123456789abcdef"},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			got := fitLine(tc.input)
			assert.Equal(t, tc.want, got)
			assert.Len(t, got, lineWidth)
		})
	}
}

func TestEventLine(t *testing.T) {
	ev := tinybutton.Event{Kind: tinybutton.Click, Channel: "GPIO20"}
	assert.Equal(t, "click GPIO20    ", eventLine(ev))

	// A long kind + channel gets cut at the display edge.
	ev.Kind = tinybutton.DoubleClick
	assert.Equal(t, "double_click GPI", eventLine(ev))
}

func TestCounterLine(t *testing.T) {
	c := Counters{Clicks: 3, DoubleClicks: 1, LongPresses: 2}
	assert.Equal(t, "1x3 2x1 hold2   ", counterLine(c))
}

func TestCount(t *testing.T) {
	c := Counters{}
	c.Count(tinybutton.Click)
	c.Count(tinybutton.Click)
	c.Count(tinybutton.DoubleClick)
	c.Count(tinybutton.LongPress)

	assert.Equal(t, Counters{Clicks: 2, DoubleClicks: 1, LongPresses: 1}, c)
}

func TestLineString(t *testing.T) {
	assert.Equal(t, "L1", Line1.String())
	assert.Equal(t, "L2", Line2.String())
	assert.Equal(t, "N/A", Line(0).String())
}
