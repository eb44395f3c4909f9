// Package sim provides an in-memory level source for tests and for running
// the daemon on machines without GPIO hardware.
package sim

import "sync"

// Source is a simulated input channel. It assumes active-low wiring: the
// level idles high (as with a pull-up) and Press drives it low. It implements
// tinybutton.EdgeSource, announcing every level change on a one-slot edge
// channel.
type Source struct {
	name string

	mu    sync.Mutex
	level bool
	edges chan struct{}
}

// New creates a simulated source with the level idling high.
func New(name string) *Source {
	return &Source{
		name:  name,
		level: true,
		edges: make(chan struct{}, 1),
	}
}

// Read returns the current simulated level.
func (s *Source) Read() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.level
}

// Name returns the simulated channel name.
func (s *Source) Name() string {
	return s.name
}

// Edges returns the edge wake-up channel.
func (s *Source) Edges() <-chan struct{} {
	return s.edges
}

// Set drives the level directly, true meaning electrically high.
func (s *Source) Set(level bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.level == level {
		return
	}
	s.level = level

	// Non-blocking: a pending wake-up already covers this change.
	select {
	case s.edges <- struct{}{}:
	default:
	}
}

// Press drives the level low, as a button against ground would.
func (s *Source) Press() {
	s.Set(false)
}

// Release lets the level float back high.
func (s *Source) Release() {
	s.Set(true)
}

// Toggle flips the current level.
func (s *Source) Toggle() {
	s.mu.Lock()
	level := s.level
	s.mu.Unlock()
	s.Set(!level)
}
