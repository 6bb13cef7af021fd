package round

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestReset_Fresh(t *testing.T) {
	c := New(60*time.Second, time.Second)

	if c.State() != Idle {
		t.Errorf("expected idle, got %s", c.State())
	}
	if c.Score() != 0 {
		t.Errorf("expected score 0, got %d", c.Score())
	}
	if c.Remaining() != 60*time.Second {
		t.Errorf("expected 60s left, got %v", c.Remaining())
	}
}

func TestReset_ClampsConfig(t *testing.T) {
	c := New(0, -time.Second)

	if c.Initial() != DefaultInitial {
		t.Errorf("expected initial %v, got %v", DefaultInitial, c.Initial())
	}
	if c.Interval() != DefaultInterval {
		t.Errorf("expected interval %v, got %v", DefaultInterval, c.Interval())
	}
}

func TestTap_CountsWhileNotEnded(t *testing.T) {
	c := New(10*time.Second, time.Second)

	for i := 1; i <= 25; i++ {
		if got := c.Tap(); got != i {
			t.Fatalf("tap %d: expected score %d, got %d", i, i, got)
		}
		if i%5 == 0 {
			c.Tick(time.Second)
		}
	}
	if c.State() != Running {
		t.Errorf("expected running, got %s", c.State())
	}
}

func TestTickWhileIdle(t *testing.T) {
	c := New(10*time.Second, time.Second)

	if c.Tick(5 * time.Second) {
		t.Error("tick while idle reported round over")
	}
	if c.Remaining() != 10*time.Second {
		t.Errorf("expected 10s left, got %v", c.Remaining())
	}
}

func TestTick_NeverBelowZero(t *testing.T) {
	c := New(3*time.Second, time.Second)
	c.Tap()

	if !c.Tick(time.Hour) {
		t.Error("expected round over")
	}
	if c.Remaining() != 0 {
		t.Errorf("expected 0 left, got %v", c.Remaining())
	}
	if c.Tick(time.Second) {
		t.Error("round over reported twice")
	}
	if c.Remaining() != 0 {
		t.Errorf("expected 0 left after extra tick, got %v", c.Remaining())
	}
}

func TestTick_NegativeElapsed(t *testing.T) {
	c := New(3*time.Second, time.Second)
	c.Tap()
	c.Tick(-5 * time.Second)

	if c.Remaining() != 3*time.Second {
		t.Errorf("expected 3s left, got %v", c.Remaining())
	}
}

func TestScenario_FullRound(t *testing.T) {
	c := New(60*time.Second, time.Second)

	if got := c.Tap(); got != 1 {
		t.Errorf("expected score 1, got %d", got)
	}
	if c.State() != Running {
		t.Errorf("expected running, got %s", c.State())
	}

	if !c.Tick(60 * time.Second) {
		t.Error("expected round over")
	}
	if c.Remaining() != 0 || c.State() != Ended {
		t.Errorf("expected ended with 0 left, got %s with %v", c.State(), c.Remaining())
	}

	if got := c.Tap(); got != 1 {
		t.Errorf("tap after end changed score to %d", got)
	}
}

func TestScenario_FiveTicks(t *testing.T) {
	c := New(10*time.Second, time.Second)
	c.Tap()

	for i := 0; i < 5; i++ {
		c.Tick(time.Second)
	}

	if c.Remaining() != 5*time.Second {
		t.Errorf("expected 5s left, got %v", c.Remaining())
	}
	if c.State() != Running {
		t.Errorf("expected running, got %s", c.State())
	}
}

func TestScenario_RestoreEnded(t *testing.T) {
	c := New(60*time.Second, time.Second)
	c.Restore(Snapshot{Score: 3, Remaining: 0})

	if c.State() != Ended {
		t.Errorf("expected ended, got %s", c.State())
	}
	if got := c.Tap(); got != 3 {
		t.Errorf("expected score 3 after tap, got %d", got)
	}
}

func TestSnapshotRestore_RoundTrip(t *testing.T) {
	src := New(30*time.Second, time.Second)
	for i := 0; i < 7; i++ {
		src.Tap()
	}
	src.Tick(12 * time.Second)
	snap := src.Snapshot()

	dst := New(30*time.Second, time.Second)
	dst.Restore(snap)

	if diff := cmp.Diff(snap, dst.Snapshot()); diff != "" {
		t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
	}
	if dst.State() != Running {
		t.Errorf("expected running, got %s", dst.State())
	}
}

func TestSnapshot_DoesNotMutate(t *testing.T) {
	c := New(30*time.Second, time.Second)
	c.Tap()
	before := c.Snapshot()
	c.Snapshot()

	if diff := cmp.Diff(before, c.Snapshot()); diff != "" {
		t.Errorf("snapshot changed state (-want +got):\n%s", diff)
	}
	if c.State() != Running {
		t.Errorf("expected running, got %s", c.State())
	}
}

func TestRestore_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		in    Snapshot
		want  Snapshot
		state State
	}{
		{"negative time", Snapshot{Score: 2, Remaining: -time.Second}, Snapshot{Score: 2}, Ended},
		{"negative score", Snapshot{Score: -4, Remaining: time.Second}, Snapshot{Remaining: time.Second}, Running},
		{"too much time", Snapshot{Score: 1, Remaining: time.Hour}, Snapshot{Score: 1, Remaining: 10 * time.Second}, Running},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(10*time.Second, time.Second)
			c.Restore(tt.in)

			if diff := cmp.Diff(tt.want, c.Snapshot()); diff != "" {
				t.Errorf("snapshot mismatch (-want +got):\n%s", diff)
			}
			if c.State() != tt.state {
				t.Errorf("expected %s, got %s", tt.state, c.State())
			}
		})
	}
}

func TestResetAfterEnd(t *testing.T) {
	c := New(2*time.Second, time.Second)
	c.Tap()
	c.Tick(2 * time.Second)
	c.Reset(5*time.Second, 500*time.Millisecond)

	if c.State() != Idle || c.Score() != 0 || c.Remaining() != 5*time.Second {
		t.Errorf("expected fresh idle round, got %s score=%d left=%v", c.State(), c.Score(), c.Remaining())
	}
	if c.Interval() != 500*time.Millisecond {
		t.Errorf("expected interval 500ms, got %v", c.Interval())
	}
}
