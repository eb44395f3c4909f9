package mqtt

import (
	tinybutton "github.com/callebjorkell/tiny-button"
)

// FakePublisher records published events for test assertions.
type FakePublisher struct {
	Events   []tinybutton.Event
	Payloads [][]byte

	// PublishError, when set, is returned by Publish.
	PublishError error
	Closed       bool
}

func NewFakePublisher() *FakePublisher {
	return &FakePublisher{}
}

func (f *FakePublisher) Publish(ev tinybutton.Event) error {
	if f.PublishError != nil {
		return f.PublishError
	}

	f.Events = append(f.Events, ev)
	payload, err := FormatPayload(ev)
	if err != nil {
		return err
	}
	f.Payloads = append(f.Payloads, payload)
	return nil
}

func (f *FakePublisher) Close() error {
	f.Closed = true
	return nil
}
