// Package mqtt publishes recognized gestures to an MQTT broker.
package mqtt

import (
	"encoding/json"
	"time"

	tinybutton "github.com/callebjorkell/tiny-button"
)

// Publisher sends gesture events to a broker.
type Publisher interface {
	Publish(ev tinybutton.Event) error
	Close() error
}

// Payload is the published message structure.
type Payload struct {
	Button ButtonPayload `json:"button"`
}

type ButtonPayload struct {
	Channel   string `json:"channel"`
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
}

// FormatPayload creates the JSON payload for a gesture event.
func FormatPayload(ev tinybutton.Event) ([]byte, error) {
	return json.Marshal(Payload{
		Button: ButtonPayload{
			Channel:   ev.Channel,
			Event:     ev.Kind.String(),
			Timestamp: ev.At.UTC().Format(time.RFC3339),
		},
	})
}
