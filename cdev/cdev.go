//go:build linux

// Package cdev adapts a Linux GPIO character device line into a tinybutton
// level source with edge wake-ups.
package cdev

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/warthog618/go-gpiocdev"
)

// Line is a gpiocdev-backed input channel.
type Line struct {
	name  string
	line  *gpiocdev.Line
	edges chan struct{}

	// last good read, so a transient read error degrades to stale data
	// instead of a spurious level change.
	last bool
}

// Open requests a line from the given chip (e.g. "gpiochip0") as an input
// watching both edges. With pullup set the line bias is pull-up.
func Open(chip string, offset int, pullup bool) (*Line, error) {
	l := &Line{
		name:  fmt.Sprintf("%s:%d", chip, offset),
		edges: make(chan struct{}, 1),
	}

	opts := []gpiocdev.LineReqOption{
		gpiocdev.AsInput,
		gpiocdev.WithBothEdges,
		gpiocdev.WithEventHandler(l.onEvent),
	}
	if pullup {
		opts = append(opts, gpiocdev.WithPullUp)
	}

	line, err := gpiocdev.RequestLine(chip, offset, opts...)
	if err != nil {
		return nil, fmt.Errorf("request line %v: %w", l.name, err)
	}
	l.line = line

	if v, err := line.Value(); err == nil {
		l.last = v != 0
	}
	return l, nil
}

// Read returns the current raw level, true meaning high. A read error is
// logged and the last good level returned.
func (l *Line) Read() bool {
	v, err := l.line.Value()
	if err != nil {
		log.Warnf("Reading %v failed, keeping last level: %v", l.name, err)
		return l.last
	}
	l.last = v != 0
	return l.last
}

// Name returns the chip:offset identifier of the line.
func (l *Line) Name() string {
	return l.name
}

// Edges returns the edge wake-up channel.
func (l *Line) Edges() <-chan struct{} {
	return l.edges
}

// Close releases the line.
func (l *Line) Close() error {
	return l.line.Close()
}

func (l *Line) onEvent(gpiocdev.LineEvent) {
	select {
	case l.edges <- struct{}{}:
	default:
	}
}
