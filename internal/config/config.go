// Package config holds the daemon configuration: which pin backend to watch,
// gesture timings, and where recognized gestures get fanned out to.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	defaultDebounceMs = 50
	defaultClickMs    = 400
	defaultPressMs    = 800
	defaultPollMs     = 5

	defaultChip     = "gpiochip0"
	defaultTopic    = "tinybutton/events"
	defaultClientID = "tiny-button"

	defaultClickColor       = 0x00ff00
	defaultDoubleClickColor = 0x0066ff
	defaultLongPressColor   = 0xff0000
)

var validEvents = map[string]bool{
	"click":        true,
	"double_click": true,
	"long_press":   true,
}

type Config struct {
	Source struct {
		Backend   string `yaml:"backend"` // sim, periphio, cdev or rpio
		Pin       string `yaml:"pin"`     // periphio pin name, e.g. GPIO20
		Chip      string `yaml:"chip"`    // cdev chip, e.g. gpiochip0
		Line      int    `yaml:"line"`    // cdev/rpio BCM line number
		Pullup    *bool  `yaml:"pullup"`
		ActiveLow *bool  `yaml:"activeLow"`
	} `yaml:"source"`
	Timings struct {
		DebounceMs int `yaml:"debounceMs"`
		ClickMs    int `yaml:"clickMs"`
		PressMs    int `yaml:"pressMs"`
		PollMs     int `yaml:"pollMs"`
	} `yaml:"timings"`
	Led struct {
		Enabled          bool   `yaml:"enabled"`
		ClickColor       uint32 `yaml:"clickColor"`
		DoubleClickColor uint32 `yaml:"doubleClickColor"`
		LongPressColor   uint32 `yaml:"longPressColor"`
	} `yaml:"led"`
	Lcd struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"lcd"`
	Mqtt struct {
		Broker   string `yaml:"broker"`
		Topic    string `yaml:"topic"`
		ClientId string `yaml:"clientId"`
	} `yaml:"mqtt"`
	Webhooks []Webhook `yaml:"webhooks"`
}

type Webhook struct {
	Url    string   `yaml:"url"`
	Token  string   `yaml:"token"`
	Events []string `yaml:"events"` // empty means all
}

// Load reads and parses the configuration file.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return parseConfig(content)
}

func parseConfig(content []byte) (*Config, error) {
	c := &Config{}
	if err := yaml.Unmarshal(content, c); err != nil {
		return nil, err
	}

	switch c.Source.Backend {
	case "sim":
	case "periphio":
		if c.Source.Pin == "" {
			return nil, fmt.Errorf("the periphio backend needs a pin name")
		}
	case "cdev":
		if c.Source.Line <= 0 {
			return nil, fmt.Errorf("the cdev backend needs a line number")
		}
		if c.Source.Chip == "" {
			c.Source.Chip = defaultChip
		}
	case "rpio":
		if c.Source.Line <= 0 {
			return nil, fmt.Errorf("the rpio backend needs a line number")
		}
	case "":
		return nil, fmt.Errorf("source backend is missing")
	default:
		return nil, fmt.Errorf("unknown source backend %q", c.Source.Backend)
	}

	if c.Source.Pullup == nil {
		pullup := true
		c.Source.Pullup = &pullup
	}
	if c.Source.ActiveLow == nil {
		activeLow := true
		c.Source.ActiveLow = &activeLow
	}

	if c.Timings.DebounceMs <= 0 {
		c.Timings.DebounceMs = defaultDebounceMs
	}
	if c.Timings.ClickMs <= 0 {
		c.Timings.ClickMs = defaultClickMs
	}
	if c.Timings.PressMs <= 0 {
		c.Timings.PressMs = defaultPressMs
	}
	if c.Timings.PollMs <= 0 {
		c.Timings.PollMs = defaultPollMs
	}

	if c.Led.Enabled {
		if c.Led.ClickColor == 0 {
			c.Led.ClickColor = defaultClickColor
		}
		if c.Led.DoubleClickColor == 0 {
			c.Led.DoubleClickColor = defaultDoubleClickColor
		}
		if c.Led.LongPressColor == 0 {
			c.Led.LongPressColor = defaultLongPressColor
		}
	}

	if c.Mqtt.Broker != "" {
		if c.Mqtt.Topic == "" {
			c.Mqtt.Topic = defaultTopic
		}
		if c.Mqtt.ClientId == "" {
			c.Mqtt.ClientId = defaultClientID
		}
	}

	for i, hook := range c.Webhooks {
		if hook.Url == "" {
			return nil, fmt.Errorf("url missing for webhook %d", i)
		}
		for _, e := range hook.Events {
			if !validEvents[e] {
				return nil, fmt.Errorf("unknown event %q for webhook %d", e, i)
			}
		}
	}

	return c, nil
}
