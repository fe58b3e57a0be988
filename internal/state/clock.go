package state

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// SessionID identifies this drawing session in logs.
var SessionID = uuid.NewString()

// Clock hands out millisecond timestamps relative to its creation, for hosts
// whose pointer events carry no timestamp of their own. Timestamps never go
// backwards.
type Clock struct {
	start time.Time
	last  atomic.Int64
	now   func() time.Time
}

// NewClock returns a clock starting at the current time.
func NewClock() *Clock {
	return newClock(time.Now)
}

func newClock(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Tick returns the current session timestamp in milliseconds.
func (c *Clock) Tick() int64 {
	ts := c.now().Sub(c.start).Milliseconds()
	for {
		last := c.last.Load()
		if ts < last {
			ts = last
		}
		if c.last.CompareAndSwap(last, ts) {
			return ts
		}
	}
}
