package neopixel

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
)

// Flash blinks the whole strip once in the given color.
func (l *LedController) Flash(color uint32) {
	l.FlashN(color, 1)
}

// FlashN blinks the strip n times. It blocks until the blinking is done.
func (l *LedController) FlashN(color uint32, n int) {
	done := l.interruptor.Queue()
	defer done()
	defer l.clear()

	log.Debugf("Flashing color %06x %d time(s)", color, n)
	for i := 0; i < n; i++ {
		if i > 0 {
			<-time.After(80 * time.Millisecond)
		}
		l.setColor(color)
		<-time.After(150 * time.Millisecond)
		l.setColor(0)
	}
}

// Breathe pulses the strip in the given color until interrupted by another
// effect or Stop. It returns immediately; the animation runs in the
// background.
func (l *LedController) Breathe(color uint32) {
	done := l.interruptor.Queue()

	go func() {
		defer done()
		defer l.clear()
		for {
			if err := l.singleBreath(color); err != nil {
				log.Debug("Stopping breathing: ", err)
				break
			}
		}
	}()
}

func (l *LedController) singleBreath(color uint32) error {
	light := uint32(0)
	increase := true
	log.Debugf("Breathing color: %06x", color)
	tick := time.NewTicker(10 * time.Millisecond)
	defer tick.Stop()
	for {
		if l.interruptor.IsInterrupted() {
			return fmt.Errorf("animation is interrupted")
		}

		if err := l.setColor(withBrightness(color, light)); err != nil {
			return err
		}

		if increase {
			light++
			if light > 100 {
				increase = false
			}
		} else {
			if light == 0 {
				break
			}
			light--
		}

		<-tick.C
	}
	return nil
}
