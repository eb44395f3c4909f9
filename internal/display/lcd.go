//go:build pi

package display

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// 4-bit bus wiring (BCM names).
const (
	registerSelectionPin = "GPIO4"
	clockEdgePin         = "GPIO17"
	data4Pin             = "GPIO25"
	data5Pin             = "GPIO22"
	data6Pin             = "GPIO23"
	data7Pin             = "GPIO24"

	character   = gpio.High
	command     = gpio.Low
	signalPulse = 500000 * time.Nanosecond
	signalDelay = 500000 * time.Nanosecond
)

// Display is a bit-banged HD44780 on the Pi header.
type Display struct {
	registerSelection gpio.PinIO
	clockEdge         gpio.PinIO
	dataPins          [4]gpio.PinIO
}

// New resolves the display pins and runs the HD44780 4-bit init sequence.
func New() (*Display, error) {
	log.Infoln("Initializing LCD")
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("initialize periph host: %w", err)
	}

	d := &Display{}
	names := []string{registerSelectionPin, clockEdgePin, data4Pin, data5Pin, data6Pin, data7Pin}
	pins := make([]gpio.PinIO, 0, len(names))
	for _, name := range names {
		pin := gpioreg.ByName(name)
		if pin == nil {
			return nil, fmt.Errorf("no such pin: %v", name)
		}
		pins = append(pins, pin)
	}
	d.registerSelection = pins[0]
	d.clockEdge = pins[1]
	copy(d.dataPins[:], pins[2:])

	d.sendByte(0x33, command)
	d.sendByte(0x32, command)
	d.sendByte(0x28, command)
	d.sendByte(0x0C, command)
	d.sendByte(0x06, command)
	d.sendByte(0x01, command)

	return d, nil
}

// Print writes a message to the given row, padded to the full width.
func (d *Display) Print(l Line, msg string) {
	d.sendByte(byte(l), command)
	m := fitLine(msg)
	for i := 0; i < lineWidth; i++ {
		d.sendByte(m[i], character)
	}
}

func (d *Display) sendByte(bits byte, mode gpio.Level) {
	d.registerSelection.Out(mode)
	d.pulseByte(bits, 0x10)
	d.pulseByte(bits, 0x01)
}

func (d *Display) pulseByte(bits, mask byte) {
	for i, pin := range d.dataPins {
		pin.Out(gpio.Low)
		if bits&(mask<<uint(i)) != 0 {
			pin.Out(gpio.High)
		}
	}
	time.Sleep(signalDelay)
	d.clockEdge.Out(gpio.High)
	time.Sleep(signalPulse)
	d.clockEdge.Out(gpio.Low)
	time.Sleep(signalDelay)
}
