// Package countdown turns wall-clock time into fixed-interval ticks for a
// polling game loop.
package countdown

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Countdown is polled once per frame. It is not safe for concurrent use.
// In production, use clockwork.NewRealClock(). In tests, a FakeClock.
type Countdown struct {
	clock    clockwork.Clock
	interval time.Duration

	active bool
	last   time.Time
	carry  time.Duration
	left   time.Duration
}

func New(clock clockwork.Clock, interval time.Duration) *Countdown {
	if interval <= 0 {
		interval = time.Second
	}
	return &Countdown{clock: clock, interval: interval}
}

// Start counts down total from now. The last step is shorter than the
// interval when the interval does not divide total.
func (c *Countdown) Start(total time.Duration) {
	if total <= 0 {
		c.Stop()
		return
	}
	c.active = true
	c.last = c.clock.Now()
	c.carry = 0
	c.left = total
}

// Stop cancels the countdown. Time that passes while stopped is never
// reported.
func (c *Countdown) Stop() {
	c.active = false
	c.carry = 0
	c.left = 0
}

func (c *Countdown) Active() bool { return c.active }

func (c *Countdown) Interval() time.Duration { return c.interval }

// Due returns the steps that completed since the previous call, each one
// interval long except a possibly shorter final step. The remainder carries
// over to the next call. The countdown stops itself after the final step.
func (c *Countdown) Due() []time.Duration {
	if !c.active {
		return nil
	}

	now := c.clock.Now()
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed > 0 {
		c.carry += elapsed
	}

	var steps []time.Duration
	for c.left > 0 {
		step := min(c.interval, c.left)
		if c.carry < step {
			break
		}
		c.carry -= step
		c.left -= step
		steps = append(steps, step)
	}
	if c.left == 0 {
		c.Stop()
	}
	return steps
}
