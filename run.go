package tinybutton

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
)

// DefaultPollInterval is used by Run when no interval is given.
const DefaultPollInterval = 10 * time.Millisecond

// Run drives the button until the context is cancelled, ticking at the given
// interval. If the bound source also delivers edge wake-ups, an extra tick
// happens on every edge so a press is noticed without waiting for the next
// poll. Everything runs on the calling goroutine, which keeps ticks
// serialized as the Button requires.
func (b *Button) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	var edges <-chan struct{}
	if es, ok := b.src.(EdgeSource); ok {
		edges = es.Edges()
	}

	log.Debugf("Starting button loop for %q at %v", b.Channel(), interval)
	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debugf("Stopping button loop for %q", b.Channel())
			return
		case <-edges:
			b.Tick()
		case <-t.C:
			b.Tick()
		}
	}
}
