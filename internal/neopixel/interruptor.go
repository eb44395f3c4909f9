package neopixel

import (
	"errors"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Queue shares the LED strip between concurrent effects. A new effect queues
// for the strip, which raises an "interrupted" state that a running animation
// is expected to poll. When the current owner sees the interruption it SHOULD
// release the strip and let the queued effect continue.
type Queue struct {
	waiting       int
	runLock       sync.Mutex
	interruptLock sync.Mutex
}

type Unlocker func()

// Queue waits for a turn on the strip. It sets the interrupted state and then
// blocks on the run lock until the current owner releases. The returned
// Unlocker must be called when the effect is done.
func (i *Queue) Queue() Unlocker {
	i.interrupt()
	i.runLock.Lock()

	i.running()
	return func() {
		i.done()
	}
}

// IsInterrupted reports whether another effect is waiting for the strip.
func (i *Queue) IsInterrupted() bool {
	i.interruptLock.Lock()
	defer i.interruptLock.Unlock()

	return i.waiting != 0
}

func (i *Queue) interrupt() {
	i.interruptLock.Lock()
	defer i.interruptLock.Unlock()

	i.waiting++
	log.Debug("Added to queue: ", i.waiting)
}

func (i *Queue) running() {
	i.interruptLock.Lock()
	defer i.interruptLock.Unlock()

	i.waiting--
}

func (i *Queue) done() {
	defer i.runLock.Unlock()

	log.Debug("Marked done. Currently waiting: ", i.waiting)
	if i.waiting < 0 {
		log.Warn(errors.New("number waiting in queue less than zero"))
	}
}
