package panzoom

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// resetAnimation tweens a surface from its current transform back to
// identity: translation to (0, 0) and scale to (1, 1).
type resetAnimation struct {
	tweens [4]*gween.Tween
	ticks  int
	dt     float32
}

// identity holds the reset targets in tween order: tx, ty, sx, sy.
var identity = [4]float64{0, 0, 1, 1}

func newResetAnimation(s Surface, d time.Duration, rate int, fn ease.TweenFunc) *resetAnimation {
	tx, ty := s.Translation()
	sx, sy := s.Scale()
	from := [4]float64{tx, ty, sx, sy}

	r := &resetAnimation{
		ticks: tickCount(d, rate),
		dt:    float32(1.0 / float64(rate)),
	}
	// The tweens run in tick units so the last tick lands exactly on the end.
	dur := float32(r.ticks) * r.dt
	for i := range r.tweens {
		r.tweens[i] = gween.New(float32(from[i]), float32(identity[i]), dur, fn)
	}
	return r
}

// step advances one tick, writes the interpolated transform to s and
// reports whether the animation is finished.
func (r *resetAnimation) step(s Surface, tick int) bool {
	var vals [4]float64
	done := tick >= r.ticks
	if done {
		vals = identity
	} else {
		for i, tw := range r.tweens {
			v, _ := tw.Update(r.dt)
			vals[i] = float64(v)
		}
	}
	s.SetTranslation(vals[0], vals[1])
	s.SetScale(vals[2], vals[3])
	return done
}

// startReset starts the snap-back animation. It does nothing if the surface
// is gone or not attached. Any running animation is cancelled first.
func (g *Gesture) startReset() {
	s := g.surface()
	if s == nil || !s.Attached() {
		return
	}
	tok := g.beginAnimation(animReset)
	r := newResetAnimation(s, g.cfg.ResetDuration, g.sched.TickRate(), g.cfg.resetEase())
	tx, ty := s.Translation()
	g.emit(GestureEvent{Type: EventResetStart, X: tx, Y: ty})

	g.sched.Ticker(tok, func(tick int) bool {
		s := g.surface()
		if s == nil || !s.Attached() {
			g.endAnimation(tok)
			return false
		}
		if r.step(s, tick) {
			g.endAnimation(tok)
			g.emit(GestureEvent{Type: EventResetEnd})
			return false
		}
		return true
	})
}
