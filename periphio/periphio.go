// Package periphio adapts a periph.io GPIO pin into a tinybutton level
// source with edge wake-ups.
package periphio

import (
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

var hostOnce sync.Once
var hostErr error

// Pin is a periph.io-backed input channel.
type Pin struct {
	pin   gpio.PinIO
	edges chan struct{}
	done  chan struct{}
}

// Open resolves a pin by name (e.g. "GPIO20") and configures it as an input
// watching both edges. With pullup set the internal pull-up is enabled,
// otherwise the pin floats.
func Open(name string, pullup bool) (*Pin, error) {
	hostOnce.Do(func() {
		_, hostErr = host.Init()
	})
	if hostErr != nil {
		return nil, fmt.Errorf("initialize periph host: %w", hostErr)
	}

	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no such pin: %v", name)
	}

	pull := gpio.Float
	if pullup {
		pull = gpio.PullUp
	}
	if err := pin.In(pull, gpio.BothEdges); err != nil {
		return nil, fmt.Errorf("configure %v as input: %w", name, err)
	}

	p := &Pin{
		pin:   pin,
		edges: make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	go p.watch()
	return p, nil
}

// Read returns the current raw level, true meaning high.
func (p *Pin) Read() bool {
	return p.pin.Read() == gpio.High
}

// Name returns the pin name.
func (p *Pin) Name() string {
	return p.pin.Name()
}

// Edges returns the edge wake-up channel.
func (p *Pin) Edges() <-chan struct{} {
	return p.edges
}

// Close stops the edge watcher and halts the pin.
func (p *Pin) Close() error {
	close(p.done)
	return p.pin.Halt()
}

func (p *Pin) watch() {
	for {
		select {
		case <-p.done:
			return
		default:
		}

		// The timeout lets the loop notice Close.
		if !p.pin.WaitForEdge(time.Second) {
			continue
		}

		log.Debugf("Edge on %v", p.pin.Name())
		select {
		case p.edges <- struct{}{}:
		default:
		}
	}
}
