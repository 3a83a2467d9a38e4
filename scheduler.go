package panzoom

import (
	"container/heap"
	"time"
)

// DefaultTickRate is the animation tick rate in ticks per second.
const DefaultTickRate = 60

// Token cancels every task scheduled with it. A gesture session holds one
// token for its timers and one per running animation.
type Token struct {
	cancelled bool
}

// Cancel invalidates the token. Tasks scheduled with it never run again.
// Calling Cancel on a nil or already cancelled token is a no-op.
func (t *Token) Cancel() {
	if t != nil {
		t.cancelled = true
	}
}

// Cancelled reports whether Cancel has been called.
func (t *Token) Cancelled() bool {
	return t != nil && t.cancelled
}

// task is one scheduled unit of work: a one-shot callback or a ticker.
type task struct {
	due   time.Duration
	seq   uint64
	token *Token

	fn func()

	// Ticker fields. tick k is due at start + k*second/rate.
	tickFn func(tick int) bool
	start  time.Duration
	tick   int
}

type taskQueue []*task

func (q taskQueue) Len() int { return len(q) }
func (q taskQueue) Less(i, j int) bool {
	if q[i].due != q[j].due {
		return q[i].due < q[j].due
	}
	return q[i].seq < q[j].seq
}
func (q taskQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }
func (q *taskQueue) Push(x any)   { *q = append(*q, x.(*task)) }
func (q *taskQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return t
}

// Scheduler runs delayed callbacks and fixed-rate tickers against a
// simulated clock. It is single-threaded: the host advances it from its
// update loop after delivering that frame's pointer events, so a timer never
// runs ahead of an input event that was already queued.
type Scheduler struct {
	now   time.Duration
	rate  int
	seq   uint64
	queue taskQueue
}

// NewScheduler creates a scheduler whose tickers run at tickRate ticks per
// second. A non-positive rate selects DefaultTickRate.
func NewScheduler(tickRate int) *Scheduler {
	if tickRate <= 0 {
		tickRate = DefaultTickRate
	}
	return &Scheduler{rate: tickRate}
}

// Now returns the current simulated time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// TickRate returns the ticker rate in ticks per second.
func (s *Scheduler) TickRate() int {
	return s.rate
}

// TickInterval returns the nominal time between ticker ticks.
func (s *Scheduler) TickInterval() time.Duration {
	return time.Second / time.Duration(s.rate)
}

// After runs fn once, delay from now, unless tok is cancelled first.
func (s *Scheduler) After(tok *Token, delay time.Duration, fn func()) {
	if delay < 0 {
		delay = 0
	}
	s.push(&task{due: s.now + delay, token: tok, fn: fn})
}

// Ticker calls fn with tick = 1, 2, ... at the scheduler's tick rate,
// starting one interval from now. It stops when fn returns false or tok is
// cancelled. A tick already running always completes.
func (s *Scheduler) Ticker(tok *Token, fn func(tick int) bool) {
	t := &task{token: tok, tickFn: fn, start: s.now, tick: 1}
	t.due = s.tickDue(t)
	s.push(t)
}

func (s *Scheduler) tickDue(t *task) time.Duration {
	return t.start + time.Duration(t.tick)*time.Second/time.Duration(s.rate)
}

func (s *Scheduler) push(t *task) {
	s.seq++
	t.seq = s.seq
	heap.Push(&s.queue, t)
}

// Advance moves the clock forward by d, running every task that falls due on
// the way in time order. Tasks scheduled while advancing run in the same
// call if they fall due before the new time.
func (s *Scheduler) Advance(d time.Duration) {
	target := s.now + d
	for len(s.queue) > 0 {
		next := s.queue[0]
		if next.due > target {
			break
		}
		heap.Pop(&s.queue)
		if next.token.Cancelled() {
			continue
		}
		s.now = next.due
		if next.tickFn == nil {
			next.fn()
			continue
		}
		if !next.tickFn(next.tick) || next.token.Cancelled() {
			continue
		}
		next.tick++
		next.due = s.tickDue(next)
		s.push(next)
	}
	s.now = target
}

// Pending returns the number of live, not yet finished tasks.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.queue {
		if !t.token.Cancelled() {
			n++
		}
	}
	return n
}
