//go:build !linux

package cdev

import "fmt"

// Line is only available on Linux, where the GPIO character device exists.
type Line struct{}

func Open(chip string, offset int, pullup bool) (*Line, error) {
	return nil, fmt.Errorf("gpio character device is not available on this platform")
}

func (l *Line) Read() bool { return false }

func (l *Line) Name() string { return "" }

func (l *Line) Edges() <-chan struct{} { return nil }

func (l *Line) Close() error { return nil }
