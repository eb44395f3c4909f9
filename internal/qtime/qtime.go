// Package qtime stores timestamps as 16 bit counters with 4 ms resolution.
// A full counter spans about 262 seconds, which is plenty for button gesture
// timing, and unsigned subtraction keeps elapsed calculations correct across
// the wrap as long as the true gap is shorter than the span.
package qtime

import "time"

// Resolution is the smallest distinguishable time step.
const Resolution = 4 * time.Millisecond

// Span is the full range of a Ticks counter before it wraps.
const Span = time.Duration(1<<16) * Resolution

// Ticks is a quantized timestamp or duration, counted in Resolution steps.
type Ticks uint16

// Quantize truncates a duration to Ticks. Sub-resolution precision is lost.
func Quantize(d time.Duration) Ticks {
	return Ticks(d.Milliseconds() >> 2)
}

// Sub returns the number of ticks elapsed from then to t. The unsigned
// subtraction wraps, so the result is correct even when the counter has
// rolled over between the two samples.
func (t Ticks) Sub(then Ticks) Ticks {
	return t - then
}

// Duration converts t back to wall time. Mostly useful for logging.
func (t Ticks) Duration() time.Duration {
	return time.Duration(t) * Resolution
}
