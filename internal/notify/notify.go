// Package notify POSTs recognized gestures to configured webhooks.
package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	tinybutton "github.com/callebjorkell/tiny-button"
	log "github.com/sirupsen/logrus"
)

// Target is one webhook endpoint. An empty event list subscribes to all
// gesture kinds.
type Target struct {
	Url    string
	Token  string
	Events []string
}

type Notifier struct {
	targets []Target
	client  *http.Client
}

func New(targets []Target) *Notifier {
	return &Notifier{
		targets: targets,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

// SetTargets replaces the webhook targets, e.g. after a config reload.
func (n *Notifier) SetTargets(targets []Target) {
	n.targets = targets
}

type payload struct {
	Channel   string `json:"channel"`
	Event     string `json:"event"`
	Timestamp string `json:"timestamp"`
}

// Notify delivers the event to every subscribed target. All targets are
// attempted; the first failure is returned.
func (n *Notifier) Notify(ev tinybutton.Event) error {
	body, err := json.Marshal(payload{
		Channel:   ev.Channel,
		Event:     ev.Kind.String(),
		Timestamp: ev.At.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}

	var firstErr error
	for _, target := range n.targets {
		if !target.wants(ev.Kind) {
			continue
		}
		if err := n.post(target, body); err != nil {
			log.Warnf("Webhook %v failed: %v", target.Url, err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

func (t Target) wants(kind tinybutton.Kind) bool {
	if len(t.Events) == 0 {
		return true
	}
	for _, e := range t.Events {
		if e == kind.String() {
			return true
		}
	}
	return false
}

func (n *Notifier) post(target Target, body []byte) error {
	req, err := http.NewRequest("POST", target.Url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if target.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %v", target.Token))
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %v", resp.Status)
	}
	return nil
}
