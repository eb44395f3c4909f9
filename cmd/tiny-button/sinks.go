package main

import (
	"context"

	tinybutton "github.com/callebjorkell/tiny-button"
	"github.com/callebjorkell/tiny-button/internal/config"
	"github.com/callebjorkell/tiny-button/internal/display"
	"github.com/callebjorkell/tiny-button/internal/mqtt"
	"github.com/callebjorkell/tiny-button/internal/neopixel"
	"github.com/callebjorkell/tiny-button/internal/notify"
	log "github.com/sirupsen/logrus"
)

// sinks is everything a recognized gesture fans out to.
type sinks struct {
	led      *neopixel.LedController
	disp     *display.Display
	pub      mqtt.Publisher
	notifier *notify.Notifier

	colors   map[tinybutton.Kind]uint32
	counters display.Counters
}

func newSinks(c *config.Config) (*sinks, error) {
	s := &sinks{
		notifier: notify.New(hookTargets(c)),
	}

	if c.Led.Enabled {
		led, err := neopixel.NewLedController()
		if err != nil {
			return nil, err
		}
		s.led = led
		s.colors = map[tinybutton.Kind]uint32{
			tinybutton.Click:       c.Led.ClickColor,
			tinybutton.DoubleClick: c.Led.DoubleClickColor,
			tinybutton.LongPress:   c.Led.LongPressColor,
		}
	}

	if c.Lcd.Enabled {
		disp, err := display.New()
		if err != nil {
			return nil, err
		}
		s.disp = disp
		s.disp.Reset()
	}

	if c.Mqtt.Broker != "" {
		pub, err := mqtt.NewRealPublisher(c.Mqtt.Broker, c.Mqtt.ClientId, c.Mqtt.Topic)
		if err != nil {
			return nil, err
		}
		s.pub = pub
	}

	return s, nil
}

func hookTargets(c *config.Config) []notify.Target {
	targets := make([]notify.Target, 0, len(c.Webhooks))
	for _, hook := range c.Webhooks {
		targets = append(targets, notify.Target{
			Url:    hook.Url,
			Token:  hook.Token,
			Events: hook.Events,
		})
	}
	return targets
}

// run is the fan-out loop. It blocks until the context is cancelled.
func (s *sinks) run(ctx context.Context, events <-chan tinybutton.Event, released <-chan struct{}, reloads <-chan *config.Config) {
	for {
		select {
		case <-ctx.Done():
			return
		case c := <-reloads:
			s.notifier.SetTargets(hookTargets(c))
			log.Debug("Applied reloaded webhook targets")
		case <-released:
			// A long press ended; stop the feedback.
			if s.led != nil {
				s.led.Stop()
			}
			if s.disp != nil {
				s.disp.Reset()
			}
		case ev := <-events:
			s.handle(ev)
		}
	}
}

func (s *sinks) handle(ev tinybutton.Event) {
	log.Infof("Recognized %v on %v", ev.Kind, ev.Channel)
	s.counters.Count(ev.Kind)

	if s.disp != nil {
		s.disp.Show(ev, s.counters)
	}

	if s.pub != nil {
		if err := s.pub.Publish(ev); err != nil {
			log.Warn("Unable to publish event: ", err)
		}
	}

	// Per-target failures are logged by the notifier itself.
	s.notifier.Notify(ev)

	if s.led != nil {
		switch ev.Kind {
		case tinybutton.Click:
			s.led.Flash(s.colors[ev.Kind])
		case tinybutton.DoubleClick:
			s.led.FlashN(s.colors[ev.Kind], 2)
		case tinybutton.LongPress:
			// Breathes until the release nudge stops it.
			s.led.Breathe(s.colors[ev.Kind])
		}
	}
}

func (s *sinks) close() {
	if s.led != nil {
		s.led.Close()
	}
	if s.disp != nil {
		s.disp.Reset()
	}
	if s.pub != nil {
		s.pub.Close()
	}
}
