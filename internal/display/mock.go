//go:build !pi

package display

import (
	log "github.com/sirupsen/logrus"
)

// Display logs lines instead of driving hardware.
type Display struct{}

func New() (*Display, error) {
	log.Infoln("Initializing LCD (mock)")
	return &Display{}, nil
}

func (d *Display) Print(l Line, msg string) {
	log.Infof("lcd %v: %q", l, fitLine(msg))
}
