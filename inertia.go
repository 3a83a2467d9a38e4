package panzoom

import (
	"math"
	"time"
)

// inertia continues a drag after release. Every tick the velocity decays by
// damping and velocity/rate is added to the translation. It runs for a fixed
// number of ticks whatever the remaining velocity.
type inertia struct {
	velocity Vec2
	damping  float64
	rate     float64
	ticks    int
}

func newInertia(v Vec2, damping float64, rate int, d time.Duration) *inertia {
	return &inertia{
		velocity: v,
		damping:  damping,
		rate:     float64(rate),
		ticks:    tickCount(d, rate),
	}
}

// step applies one tick to s.
func (in *inertia) step(s Surface) {
	in.velocity = in.velocity.Mul(in.damping)
	tx, ty := s.Translation()
	s.SetTranslation(tx+in.velocity.X/in.rate, ty+in.velocity.Y/in.rate)
}

// tickCount returns how many ticks at rate cover d, at least one.
func tickCount(d time.Duration, rate int) int {
	n := int(math.Round(d.Seconds() * float64(rate)))
	if n < 1 {
		n = 1
	}
	return n
}

// startFling starts the inertial animation seeded with v, in units per
// second. Any running animation is cancelled first.
func (g *Gesture) startFling(v Vec2) {
	tok := g.beginAnimation(animFling)
	in := newInertia(v, g.cfg.Damping, g.sched.TickRate(), g.cfg.FlingDuration)
	g.emit(GestureEvent{Type: EventFlingStart, VelocityX: v.X, VelocityY: v.Y})

	g.sched.Ticker(tok, func(tick int) bool {
		s := g.surface()
		if s == nil || !s.Attached() {
			g.endAnimation(tok)
			return false
		}
		in.step(s)
		if tick >= in.ticks {
			g.endAnimation(tok)
			g.emit(GestureEvent{Type: EventFlingEnd, VelocityX: in.velocity.X, VelocityY: in.velocity.Y})
			return false
		}
		return true
	})
}
