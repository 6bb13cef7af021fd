// Package round holds the score/countdown state machine for a single round.
//
// The controller never owns a timer. The host drives Tick at its own cadence,
// so the machine can be exercised without real time passing.
package round

import "time"

type State int

const (
	Idle    State = iota // Fresh, waiting for the first tap
	Running              // Countdown active, taps score
	Ended                // Countdown hit zero
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Ended:
		return "ended"
	}
	return "unknown"
}

const (
	DefaultInitial  = 60 * time.Second
	DefaultInterval = time.Second
)

// Snapshot is the persisted form of a round: exactly a score and the time
// left on the countdown.
type Snapshot struct {
	Score     int
	Remaining time.Duration
}

// Controller is not safe for concurrent use.
type Controller struct {
	state     State
	score     int
	remaining time.Duration
	initial   time.Duration
	interval  time.Duration
}

func New(initial, interval time.Duration) *Controller {
	c := &Controller{}
	c.Reset(initial, interval)
	return c
}

// Reset replaces the round wholesale. It does not start the countdown.
func (c *Controller) Reset(initial, interval time.Duration) {
	if initial <= 0 {
		initial = DefaultInitial
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	c.initial = initial
	c.interval = interval
	c.score = 0
	c.remaining = initial
	c.state = Idle
}

// Tap scores one point and returns the new score. The first tap after a
// reset starts the round. Taps after the round ended are ignored.
func (c *Controller) Tap() int {
	switch c.state {
	case Ended:
		return c.score
	case Idle:
		c.state = Running
	}
	c.score++
	return c.score
}

// Tick counts elapsed time off the round. It reports true only on the call
// that ends the round; ticks while idle or ended do nothing.
func (c *Controller) Tick(elapsed time.Duration) bool {
	if c.state != Running {
		return false
	}
	if elapsed < 0 {
		elapsed = 0
	}

	c.remaining -= elapsed
	if c.remaining > 0 {
		return false
	}
	c.remaining = 0
	c.state = Ended
	return true
}

func (c *Controller) Snapshot() Snapshot {
	return Snapshot{Score: c.score, Remaining: c.remaining}
}

// Restore loads a prior snapshot. Out of range values are clamped. A round
// with time left resumes running, one without is ended.
func (c *Controller) Restore(s Snapshot) {
	c.score = max(s.Score, 0)
	c.remaining = min(max(s.Remaining, 0), c.initial)

	if c.remaining > 0 {
		c.state = Running
	} else {
		c.state = Ended
	}
}

func (c *Controller) State() State             { return c.state }
func (c *Controller) Score() int               { return c.score }
func (c *Controller) Remaining() time.Duration { return c.remaining }
func (c *Controller) Initial() time.Duration   { return c.initial }
func (c *Controller) Interval() time.Duration  { return c.interval }
func (c *Controller) Running() bool            { return c.state == Running }
func (c *Controller) Ended() bool              { return c.state == Ended }
