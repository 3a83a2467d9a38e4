package panzoom

import (
	"math"
	"time"
)

// session is one continuous gesture from first pointer down to the last
// pointer up or cancel.
type session struct {
	active bool
	mode   Mode
	last   Vec2
	start  time.Duration
}

type animKind uint8

const (
	animNone animKind = iota
	animFling
	animReset
)

// Gesture interprets the pointer stream of one attached surface and writes
// translate/scale changes to it. Create one with Registry.Attach.
//
// A Gesture is not safe for concurrent use. Pointer events, timer callbacks
// and animation ticks must all arrive on the goroutine that advances the
// Scheduler.
type Gesture struct {
	id    SurfaceID
	host  Host
	cfg   Config
	sched *Scheduler
	reg   *Registry

	velocity VelocityTracker
	pinch    *PinchDetector
	proxy    *handlerProxy

	session    session
	pinchFocus Vec2

	// timers guards the scale-ready and reset timers of the current session.
	timers *Token
	// anim guards the single running animation, if any.
	anim     *Token
	animKind animKind

	detached bool
}

func newGesture(reg *Registry, host Host, id SurfaceID, cfg Config) *Gesture {
	g := &Gesture{
		id:       id,
		host:     host,
		cfg:      cfg,
		sched:    reg.sched,
		reg:      reg,
		velocity: NewExtrapolator(),
	}
	g.pinch = NewPinchDetector(gesturePinch{g}, cfg.PinchMinSpan, cfg.PinchSpanSlop)
	return g
}

// SurfaceID returns the id of the surface this gesture is attached to.
func (g *Gesture) SurfaceID() SurfaceID { return g.id }

// Config returns the configuration the gesture was attached with.
func (g *Gesture) Config() Config { return g.cfg }

// Mode returns the current session mode. It is ModeIdle between sessions.
func (g *Gesture) Mode() Mode { return g.session.mode }

// Active reports whether a session is in progress.
func (g *Gesture) Active() bool { return g.session.active }

// Flinging reports whether the inertial animation is running.
func (g *Gesture) Flinging() bool { return g.animKind == animFling }

// Resetting reports whether the snap-back animation is running.
func (g *Gesture) Resetting() bool { return g.animKind == animReset }

// Detached reports whether Detach has been called.
func (g *Gesture) Detached() bool { return g.detached }

// surface resolves the surface through the host. It returns nil once the
// surface is gone or the gesture has been detached.
func (g *Gesture) surface() Surface {
	if g.detached || g.host == nil {
		return nil
	}
	return g.host.Surface(g.id)
}

// Handle interprets one pointer event and reports whether it was consumed.
// Down is always consumed, Move only while dragging; Up, Cancel and pointer
// count changes never are.
func (g *Gesture) Handle(ev PointerEvent) bool {
	if g.detached {
		g.reg.debugCheckDetached(g, "Handle")
		return false
	}
	s := g.surface()
	if s == nil {
		return false
	}

	g.pinch.OnTouchEvent(ev)
	g.velocity.AddMovement(ev)

	switch ev.Action {
	case ActionDown:
		g.onDown(ev)
		return true
	case ActionMove:
		return g.onMove(s, ev)
	case ActionUp, ActionCancel:
		g.onUp(ev)
	case ActionSecondaryPointerUp:
		if ev.PointerCount == 1 {
			// A pinch cannot continue with one finger. Drag deltas are
			// measured from the finger that remains.
			g.setMode(ModeIdle)
			g.session.last = ev.Raw()
		}
	}
	return false
}

func (g *Gesture) onDown(ev PointerEvent) {
	g.cancelAll()
	g.session = session{
		active: true,
		mode:   ModeIdle,
		last:   ev.Raw(),
		start:  ev.Time,
	}
	g.armSession(g.sched.Now())
	g.emit(GestureEvent{Type: EventSessionStart, X: ev.RawX, Y: ev.RawY})
}

func (g *Gesture) onMove(s Surface, ev PointerEvent) bool {
	if !g.session.active || g.pinch.InProgress() || g.session.mode == ModeScaling {
		return false
	}

	pos := ev.Raw()
	d := pos.Sub(g.session.last)

	if g.session.mode == ModeIdle {
		t := g.cfg.dragThresholdPx()
		if math.Abs(d.X) <= t && math.Abs(d.Y) <= t {
			return false
		}
		// Committed to a drag: the scale-ready and reset timers no longer apply.
		g.cancelTimers()
		g.setMode(ModeDragging)
		g.emit(GestureEvent{Type: EventDragStart, X: pos.X, Y: pos.Y})
	}

	tx, ty := s.Translation()
	s.SetTranslation(tx+d.X, ty+d.Y)
	g.session.last = pos
	g.emit(GestureEvent{Type: EventDrag, X: pos.X, Y: pos.Y, DeltaX: d.X, DeltaY: d.Y})
	return true
}

func (g *Gesture) onUp(ev PointerEvent) {
	g.cancelAll()
	if g.session.mode == ModeDragging {
		g.startFling(g.velocity.Velocity())
	}
	g.setMode(ModeIdle)
	g.session = session{}
	g.emit(GestureEvent{Type: EventSessionEnd, X: ev.RawX, Y: ev.RawY})
}

func (g *Gesture) setMode(m Mode) {
	if g.session.mode == m {
		return
	}
	g.reg.debugLog("surface %d: %v -> %v", g.id, g.session.mode, m)
	g.session.mode = m
}

func (g *Gesture) emit(ev GestureEvent) {
	if g.reg.sink == nil {
		return
	}
	ev.Surface = g.id
	ev.Mode = g.session.mode
	ev.Time = g.sched.Now()
	g.reg.sink.EmitEvent(ev)
}

// Detach cancels all pending work and restores the surface's previous
// handler. Calling it more than once is a no-op.
func (g *Gesture) Detach() {
	if g.detached {
		return
	}
	s := g.surface()
	g.cancelAll()
	g.velocity.Clear()
	g.session = session{}
	g.detached = true
	if s != nil {
		s.SetHandler(g.proxy.original)
	}
	g.reg.remove(g)
	g.reg.debugLog("surface %d: detached", g.id)
}

// gesturePinch forwards pinch detector callbacks to the gesture.
type gesturePinch struct {
	g *Gesture
}

func (p gesturePinch) OnPinchBegin(d *PinchDetector) bool {
	g := p.g
	g.cancelTimers()
	g.pinchFocus = d.Focus()
	g.setMode(ModeScaling)
	g.emit(GestureEvent{Type: EventPinchStart, X: g.pinchFocus.X, Y: g.pinchFocus.Y, Scale: 1})
	return true
}

func (p gesturePinch) OnPinch(d *PinchDetector) bool {
	g := p.g
	s := g.surface()
	if s == nil {
		return false
	}

	factor := d.ScaleFactor()
	focus := d.Focus()
	drift := focus.Sub(g.pinchFocus)

	sx, sy := s.Scale()
	s.SetScale(sx*factor, sy*factor)
	tx, ty := s.Translation()
	s.SetTranslation(tx+drift.X, ty+drift.Y)

	if g.cfg.IncrementalFocus {
		g.pinchFocus = focus
	}
	g.emit(GestureEvent{Type: EventPinch, X: focus.X, Y: focus.Y, DeltaX: drift.X, DeltaY: drift.Y, Scale: factor})
	return true
}

func (p gesturePinch) OnPinchEnd(d *PinchDetector) {
	f := d.Focus()
	p.g.emit(GestureEvent{Type: EventPinchEnd, X: f.X, Y: f.Y})
}
