package panzoom

import (
	"testing"
	"time"
)

func TestNewSchedulerDefaultRate(t *testing.T) {
	for _, rate := range []int{0, -5} {
		s := NewScheduler(rate)
		if s.TickRate() != DefaultTickRate {
			t.Errorf("NewScheduler(%d).TickRate() = %d, want %d", rate, s.TickRate(), DefaultTickRate)
		}
	}
	if got := NewScheduler(120).TickInterval(); got != time.Second/120 {
		t.Errorf("TickInterval = %v, want %v", got, time.Second/120)
	}
}

func TestAfterRunsAtDueTime(t *testing.T) {
	s := NewScheduler(60)
	var firedAt time.Duration = -1
	s.After(&Token{}, 100*time.Millisecond, func() { firedAt = s.Now() })

	s.Advance(99 * time.Millisecond)
	if firedAt != -1 {
		t.Fatal("fired early")
	}
	s.Advance(50 * time.Millisecond)
	if firedAt != 100*time.Millisecond {
		t.Errorf("Now() inside callback = %v, want 100ms", firedAt)
	}
	if s.Now() != 149*time.Millisecond {
		t.Errorf("Now() = %v, want 149ms", s.Now())
	}
}

func TestAfterNegativeDelayRunsOnNextAdvance(t *testing.T) {
	s := NewScheduler(60)
	fired := false
	s.After(&Token{}, -time.Second, func() { fired = true })
	s.Advance(0)
	if !fired {
		t.Error("negative delay should fire on the next Advance")
	}
}

func TestTasksRunInOrder(t *testing.T) {
	s := NewScheduler(60)
	tok := &Token{}
	var order []int
	s.After(tok, 30*time.Millisecond, func() { order = append(order, 3) })
	s.After(tok, 10*time.Millisecond, func() { order = append(order, 1) })
	s.After(tok, 20*time.Millisecond, func() { order = append(order, 2) })
	s.After(tok, 20*time.Millisecond, func() { order = append(order, 22) })

	s.Advance(time.Second)
	want := []int{1, 2, 22, 3}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestTokenCancel(t *testing.T) {
	s := NewScheduler(60)
	a, b := &Token{}, &Token{}
	var ranA, ranB bool
	s.After(a, 10*time.Millisecond, func() { ranA = true })
	s.After(b, 10*time.Millisecond, func() { ranB = true })
	if s.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", s.Pending())
	}

	a.Cancel()
	a.Cancel()
	if !a.Cancelled() {
		t.Error("Cancelled should be true")
	}
	if s.Pending() != 1 {
		t.Errorf("Pending = %d, want 1", s.Pending())
	}
	s.Advance(time.Second)
	if ranA || !ranB {
		t.Errorf("ranA = %v ranB = %v, want false true", ranA, ranB)
	}
}

func TestNilToken(t *testing.T) {
	var tok *Token
	tok.Cancel() // should not panic
	if tok.Cancelled() {
		t.Error("nil token should not report cancelled")
	}
}

func TestTickerCadence(t *testing.T) {
	s := NewScheduler(60)
	var ticks []int
	var times []time.Duration
	s.Ticker(&Token{}, func(tick int) bool {
		ticks = append(ticks, tick)
		times = append(times, s.Now())
		return tick < 60
	})

	s.Advance(2 * time.Second)
	if len(ticks) != 60 {
		t.Fatalf("ran %d ticks, want 60", len(ticks))
	}
	for i, tick := range ticks {
		if tick != i+1 {
			t.Fatalf("tick %d numbered %d", i, tick)
		}
	}
	// No drift: the last tick lands exactly on one second.
	if times[59] != time.Second {
		t.Errorf("tick 60 at %v, want 1s", times[59])
	}
	if s.Pending() != 0 {
		t.Errorf("Pending = %d after ticker stopped", s.Pending())
	}
}

func TestTickerStopsOnCancelInsideTick(t *testing.T) {
	s := NewScheduler(60)
	tok := &Token{}
	n := 0
	s.Ticker(tok, func(tick int) bool {
		n++
		if tick == 3 {
			tok.Cancel()
		}
		return true
	})
	s.Advance(time.Second)
	if n != 3 {
		t.Errorf("ran %d ticks, want 3", n)
	}
}

func TestTasksScheduledDuringAdvance(t *testing.T) {
	s := NewScheduler(60)
	tok := &Token{}
	var at time.Duration
	s.After(tok, 10*time.Millisecond, func() {
		s.After(tok, 10*time.Millisecond, func() { at = s.Now() })
	})
	s.Advance(25 * time.Millisecond)
	if at != 20*time.Millisecond {
		t.Errorf("nested task ran at %v, want 20ms", at)
	}
}
