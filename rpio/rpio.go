// Package rpio adapts a go-rpio pin into a tinybutton level source. It talks
// to the BCM283x memory-mapped registers directly, so it works on Raspberry
// Pis without the GPIO character device, but offers no edge notification:
// buttons on this source are poll-only.
package rpio

import (
	"fmt"

	"github.com/stianeikeland/go-rpio/v4"
)

// Pin is a go-rpio backed input channel.
type Pin struct {
	pin  rpio.Pin
	name string
}

// Open memory-maps the GPIO registers (once per process) and configures the
// given BCM pin as an input. With pullup set the internal pull-up is enabled,
// otherwise the pull is left off.
func Open(pin uint8, pullup bool) (*Pin, error) {
	if err := rpio.Open(); err != nil {
		return nil, fmt.Errorf("map gpio registers: %w", err)
	}

	p := rpio.Pin(pin)
	p.Input()
	if pullup {
		p.PullUp()
	} else {
		p.PullOff()
	}

	return &Pin{pin: p, name: fmt.Sprintf("GPIO%d", pin)}, nil
}

// Read returns the current raw level, true meaning high.
func (p *Pin) Read() bool {
	return p.pin.Read() == rpio.High
}

// Name returns the BCM pin name.
func (p *Pin) Name() string {
	return p.name
}

// Close unmaps the GPIO registers.
func (p *Pin) Close() error {
	return rpio.Close()
}
