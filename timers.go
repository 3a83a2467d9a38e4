package panzoom

import "time"

// armSession schedules the scale-ready and reset timers for a session that
// started at start. Both are measured from the same instant and share one
// token, so cancelTimers drops them together.
func (g *Gesture) armSession(start time.Duration) {
	g.cancelTimers()
	tok := &Token{}
	g.timers = tok

	elapsed := g.sched.Now() - start
	g.sched.After(tok, g.cfg.ScaleReadyDelay-elapsed, g.onScaleReady)
	g.sched.After(tok, g.cfg.ResetDelay-elapsed, g.onResetTimer)
}

// onScaleReady promotes a still idle session to ModeScaling. The mode is
// checked when the timer fires, not when it was armed.
func (g *Gesture) onScaleReady() {
	if !g.session.active || g.session.mode != ModeIdle {
		return
	}
	g.setMode(ModeScaling)
	g.emit(GestureEvent{Type: EventScaleReady, X: g.session.last.X, Y: g.session.last.Y})
}

// onResetTimer snaps the surface back when a session never committed to a
// drag or pinch, which covers a pointer-up the host never delivered.
func (g *Gesture) onResetTimer() {
	g.startReset()
}

// cancelTimers drops the session timers. It is idempotent.
func (g *Gesture) cancelTimers() {
	g.timers.Cancel()
	g.timers = nil
}

// cancelAll drops the session timers and stops any running animation.
func (g *Gesture) cancelAll() {
	g.cancelTimers()
	g.cancelAnimation()
}

// beginAnimation stops whatever animation is running and returns the token
// for a new one of the given kind.
func (g *Gesture) beginAnimation(kind animKind) *Token {
	g.cancelAnimation()
	tok := &Token{}
	g.anim = tok
	g.animKind = kind
	return tok
}

// endAnimation clears the running animation if tok still owns it.
func (g *Gesture) endAnimation(tok *Token) {
	if g.anim != tok {
		return
	}
	tok.Cancel()
	g.anim = nil
	g.animKind = animNone
}

func (g *Gesture) cancelAnimation() {
	g.anim.Cancel()
	g.anim = nil
	g.animKind = animNone
}
