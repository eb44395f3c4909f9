package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tinybutton "github.com/callebjorkell/tiny-button"
	"github.com/callebjorkell/tiny-button/cdev"
	"github.com/callebjorkell/tiny-button/internal/config"
	"github.com/callebjorkell/tiny-button/periphio"
	"github.com/callebjorkell/tiny-button/rpio"
	"github.com/callebjorkell/tiny-button/sim"
	log "github.com/sirupsen/logrus"
)

func startWatch(path string) error {
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM)

	watcher, err := config.NewWatcher(path)
	if err != nil {
		return err
	}
	defer watcher.Stop()
	conf := watcher.Get()

	src, closeSrc, err := openSource(conf)
	if err != nil {
		return err
	}
	defer closeSrc()

	b := tinybutton.New(src, *conf.Source.ActiveLow)
	applyTimings(b, conf)

	out, err := newSinks(conf)
	if err != nil {
		return err
	}
	defer out.close()

	// Gesture callbacks run inside the tick loop; hand the events over to
	// the fan-out loop without ever blocking a tick.
	events := make(chan tinybutton.Event, 5)
	emit := func(kind tinybutton.Kind) func() {
		return func() {
			ev := tinybutton.Event{Kind: kind, Channel: b.Channel(), At: time.Now()}
			select {
			case events <- ev:
			default:
				log.Warnf("Dropping %v, the fan-out is not keeping up", kind)
			}
		}
	}
	b.OnClick(emit(tinybutton.Click))
	b.OnDoubleClick(emit(tinybutton.DoubleClick))
	b.OnLongPress(emit(tinybutton.LongPress))

	// Reloads go through channels so the button and the notifier are only
	// ever touched from their owning loops.
	timingReloads := make(chan *config.Config, 1)
	hookReloads := make(chan *config.Config, 1)
	watcher.OnReload(func(c *config.Config) {
		for _, ch := range []chan *config.Config{timingReloads, hookReloads} {
			select {
			case ch <- c:
			default:
			}
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-signalChan
		log.Info("Shutting down...")
		cancel()
	}()

	released := make(chan struct{}, 1)
	go tickLoop(ctx, b, src, pollInterval(conf), timingReloads, released)

	log.Infof("Watching %v", b.Channel())
	out.run(ctx, events, released, hookReloads)

	log.Info("Done...")
	return nil
}

func pollInterval(c *config.Config) time.Duration {
	return time.Duration(c.Timings.PollMs) * time.Millisecond
}

func applyTimings(b *tinybutton.Button, c *config.Config) {
	b.SetDebounce(time.Duration(c.Timings.DebounceMs) * time.Millisecond)
	b.SetClickWindow(time.Duration(c.Timings.ClickMs) * time.Millisecond)
	b.SetPressThreshold(time.Duration(c.Timings.PressMs) * time.Millisecond)
}

// tickLoop owns the button: all ticks, setter calls and state queries happen
// here, which keeps the single goroutine contract intact. It also watches for
// the end of a long press, which produces no callback of its own, and nudges
// the fan-out so feedback can stop.
func tickLoop(ctx context.Context, b *tinybutton.Button, src tinybutton.LevelSource, interval time.Duration, reloads <-chan *config.Config, released chan<- struct{}) {
	var edges <-chan struct{}
	if es, ok := src.(tinybutton.EdgeSource); ok {
		edges = es.Edges()
	}

	t := time.NewTicker(interval)
	defer t.Stop()

	pressing := false
	tick := func() {
		b.Tick()
		if b.State() == tinybutton.StatePress {
			pressing = true
		} else if pressing && b.IsIdle() {
			pressing = false
			select {
			case released <- struct{}{}:
			default:
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return
		case c := <-reloads:
			applyTimings(b, c)
			log.Debug("Applied reloaded timings")
		case <-edges:
			tick()
		case <-t.C:
			tick()
		}
	}
}

func openSource(c *config.Config) (tinybutton.LevelSource, func(), error) {
	pullup := *c.Source.Pullup
	noop := func() {}

	switch c.Source.Backend {
	case "sim":
		s := sim.New("sim0")
		simulateToggles(s)
		return s, noop, nil
	case "periphio":
		p, err := periphio.Open(c.Source.Pin, pullup)
		if err != nil {
			return nil, nil, err
		}
		return p, func() { p.Close() }, nil
	case "cdev":
		l, err := cdev.Open(c.Source.Chip, c.Source.Line, pullup)
		if err != nil {
			return nil, nil, err
		}
		return l, func() { l.Close() }, nil
	case "rpio":
		p, err := rpio.Open(uint8(c.Source.Line), pullup)
		if err != nil {
			return nil, nil, err
		}
		return p, func() { p.Close() }, nil
	}
	return nil, nil, fmt.Errorf("unknown source backend %q", c.Source.Backend)
}

// simulateToggles flips the simulated level on SIGHUP, so clicks, double
// clicks and long presses can all be played by hand:
// kill -HUP twice quickly for a click, hold the second one back for a press.
func simulateToggles(s *sim.Source) {
	hupChan := make(chan os.Signal, 1)
	signal.Notify(hupChan, syscall.SIGHUP)

	go func() {
		for range hupChan {
			s.Toggle()
			log.Debugf("Simulated level now %v", s.Read())
		}
	}()
}
