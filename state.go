package tinybutton

// State is the recognizer's current position in the gesture state machine.
type State uint8

const (
	// StateInit means idle, no press in progress.
	StateInit State = iota
	// StateDown means the button is held, timing for release or long press.
	StateDown
	// StateUp means a release was just confirmed.
	StateUp
	// StateCount means the recognizer is waiting out the double click window.
	StateCount
	// StatePress means a long press is ongoing.
	StatePress
	// StatePressEnd means a long press just ended.
	StatePressEnd
)

func (s State) String() string {
	switch s {
	case StateInit:
		return "init"
	case StateDown:
		return "down"
	case StateUp:
		return "up"
	case StateCount:
		return "count"
	case StatePress:
		return "press"
	case StatePressEnd:
		return "pressend"
	}
	return "unknown"
}
