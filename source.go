package tinybutton

// LevelSource reads the raw electrical level of a single input channel. The
// level is electrical, not logical: polarity mapping is the Button's job.
type LevelSource interface {
	// Read returns the current raw level, true meaning electrically high.
	Read() bool
	// Name identifies the bound channel, e.g. "GPIO20" or "gpiochip0:20".
	Name() string
}

// EdgeSource is a LevelSource that can additionally announce level changes.
// The edge stream is a best effort wake-up only: deliveries may be coalesced
// and the receiver must re-sample the level itself. Run uses it to tick
// without waiting for the next poll interval.
type EdgeSource interface {
	LevelSource
	Edges() <-chan struct{}
}
