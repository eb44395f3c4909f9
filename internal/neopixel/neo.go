// Package neopixel gives visual feedback on a ws281x LED ring: short flashes
// for clicks and a breathing glow while a long press is held.
package neopixel

const (
	brightness = 90
	ledCounts  = 24
)

type wsEngine interface {
	Init() error
	Render() error
	Wait() error
	Fini()
	Leds(channel int) []uint32
}

// LedController owns the LED strip. Animations queue on the interruptor so a
// new effect preempts a running one instead of fighting it for the strip.
type LedController struct {
	ws          wsEngine
	interruptor Queue
}

func (l *LedController) setColor(color uint32) error {
	leds := l.ws.Leds(0)
	for i := 0; i < len(leds); i++ {
		leds[i] = color
	}
	return l.ws.Render()
}

func (l *LedController) clear() {
	l.setColor(0)
}

// Stop interrupts any running animation and turns the strip off.
func (l *LedController) Stop() {
	done := l.interruptor.Queue()
	defer done()
	l.clear()
}

// Close stops animations and releases the strip.
func (l *LedController) Close() {
	l.Stop()
	l.ws.Fini()
}

// Get the same color, but with a lower or equal brightness, on a scale from 0-100, where 100 is the same as the input.
func withBrightness(color, light uint32) uint32 {
	if light >= 100 {
		return color
	}
	if light == 0 {
		return 0
	}

	r, g, b := (color>>16)&0xff, (color>>8)&0xff, color&0xff

	red := r * light / 100
	green := g * light / 100
	blue := b * light / 100

	return (red << 16) | (green << 8) | blue
}
