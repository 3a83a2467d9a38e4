package panzoom

import "time"

// Vec2 is a 2D vector used for pointer positions, focal points, deltas and
// velocities throughout the API.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by f.
func (v Vec2) Mul(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// SurfaceID identifies a surface within its Host.
type SurfaceID uint32

// Mode is the current interpretation of a gesture session.
type Mode uint8

const (
	ModeIdle     Mode = iota // pointer down, no drag or scale committed yet
	ModeDragging             // single pointer translating the surface
	ModeScaling              // pinch owns the transform
)

func (m Mode) String() string {
	switch m {
	case ModeIdle:
		return "idle"
	case ModeDragging:
		return "dragging"
	case ModeScaling:
		return "scaling"
	default:
		return "unknown"
	}
}

// Action identifies what happened in a PointerEvent.
type Action uint8

const (
	ActionDown               Action = iota // first pointer touched down
	ActionMove                             // one or more pointers moved
	ActionUp                               // last pointer lifted
	ActionCancel                           // the host aborted the gesture
	ActionPointerDown                      // an additional pointer touched down
	ActionSecondaryPointerUp               // a pointer lifted while others remain down
)

func (a Action) String() string {
	switch a {
	case ActionDown:
		return "down"
	case ActionMove:
		return "move"
	case ActionUp:
		return "up"
	case ActionCancel:
		return "cancel"
	case ActionPointerDown:
		return "pointer-down"
	case ActionSecondaryPointerUp:
		return "secondary-up"
	default:
		return "unknown"
	}
}

// PointerEvent is one sample of the raw pointer stream.
//
// RawX and RawY are the primary pointer's position in screen space.
// PointerCount is the number of pointers still in contact once the event has
// been applied, so an ActionSecondaryPointerUp that leaves a single finger on
// the surface carries PointerCount == 1. Pointers optionally lists the
// positions of those pointers; the pinch detector needs it to measure span.
type PointerEvent struct {
	Action       Action
	PointerCount int
	RawX, RawY   float64
	Time         time.Duration
	Pointers     []Vec2
}

// Raw returns the primary pointer position as a Vec2.
func (e PointerEvent) Raw() Vec2 { return Vec2{e.RawX, e.RawY} }

// Surface is the mutable transform state of a visual element. The gesture
// writes to it but never owns it.
type Surface interface {
	Translation() (x, y float64)
	SetTranslation(x, y float64)
	Scale() (x, y float64)
	SetScale(x, y float64)

	// Attached reports whether the surface is still shown by its host.
	// Animations stop writing once this turns false.
	Attached() bool

	// Handler returns the pointer handler currently installed on the surface.
	Handler() Handler
	// SetHandler replaces the installed pointer handler.
	SetHandler(h Handler)
}

// Host resolves surface handles. A gesture keeps only the SurfaceID and looks
// the surface up before every write, so it never extends a surface's lifetime.
type Host interface {
	// Surface returns the surface for id, or nil if it no longer exists.
	Surface(id SurfaceID) Surface
}

// Handler receives pointer events delivered to a surface and reports whether
// the event was consumed.
type Handler interface {
	HandlePointer(s Surface, ev PointerEvent) bool
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(s Surface, ev PointerEvent) bool

// HandlePointer calls f(s, ev).
func (f HandlerFunc) HandlePointer(s Surface, ev PointerEvent) bool {
	return f(s, ev)
}

// EventType identifies a kind of gesture event.
type EventType uint8

const (
	EventSessionStart EventType = iota // first pointer down
	EventSessionEnd                    // last pointer up or cancel
	EventDragStart                     // movement crossed the drag threshold
	EventDrag                          // translation applied by a drag move
	EventScaleReady                    // scale-ready timer promoted Idle to Scaling
	EventPinchStart                    // pinch detector began a pinch
	EventPinch                         // pinch update applied
	EventPinchEnd                      // pinch detector ended a pinch
	EventFlingStart                    // inertial animation started
	EventFlingEnd                      // inertial animation ran to completion
	EventResetStart                    // snap-back animation started
	EventResetEnd                      // snap-back animation reached identity
)

// EventSink is the interface for optional gesture event consumers, such as
// the ECS bridge in panzoom/ecs.
type EventSink interface {
	EmitEvent(event GestureEvent)
}

// GestureEvent carries gesture state transitions to an EventSink.
type GestureEvent struct {
	Type    EventType
	Surface SurfaceID
	Mode    Mode
	Time    time.Duration
	// Pointer or focal position, when relevant.
	X, Y float64
	// Translation delta (EventDrag, EventPinch).
	DeltaX, DeltaY float64
	// Scale factor applied by EventPinch.
	Scale float64
	// Release velocity in units per second (EventFlingStart).
	VelocityX, VelocityY float64
}
