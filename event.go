package tinybutton

import "time"

// Kind identifies a recognized gesture.
type Kind uint8

const (
	Click Kind = iota
	DoubleClick
	LongPress
)

func (k Kind) String() string {
	switch k {
	case Click:
		return "click"
	case DoubleClick:
		return "double_click"
	case LongPress:
		return "long_press"
	}
	return "unknown"
}

// Event pairs a recognized gesture with the channel it came from and the time
// it was recognized. The Button itself dispatches plain callbacks; Event is
// the record consumers fan out to logs, brokers and webhooks.
type Event struct {
	Kind    Kind
	Channel string
	At      time.Time
}
