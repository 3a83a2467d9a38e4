package panzoom

import "fmt"

// Registry is the lifecycle table mapping surfaces to their attached
// gestures. It starts empty and entries are removed on detach. Use one
// registry per Host; surfaces are keyed by SurfaceID alone.
type Registry struct {
	sched    *Scheduler
	gestures map[SurfaceID]*Gesture
	sink     EventSink
	debug    bool
}

// NewRegistry creates an empty registry whose gestures schedule their timers
// and animations on sched.
func NewRegistry(sched *Scheduler) *Registry {
	return &Registry{
		sched:    sched,
		gestures: make(map[SurfaceID]*Gesture),
	}
}

// Scheduler returns the scheduler shared by the registry's gestures.
func (r *Registry) Scheduler() *Scheduler {
	return r.sched
}

// SetEventSink sets the optional gesture event consumer.
func (r *Registry) SetEventSink(sink EventSink) {
	r.sink = sink
}

// SetDebugMode enables or disables debug mode. When enabled, mode
// transitions are logged to stderr and using a detached gesture panics.
func (r *Registry) SetDebugMode(enabled bool) {
	r.debug = enabled
}

// Attach validates cfg and installs a gesture on the surface id of host.
// The surface's current handler keeps receiving every event through the
// gesture's proxy. Attaching an already attached surface detaches the
// previous gesture first.
func (r *Registry) Attach(host Host, id SurfaceID, cfg Config) (*Gesture, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := host.Surface(id)
	if s == nil {
		return nil, fmt.Errorf("attach surface %d: %w", id, ErrSurfaceNotFound)
	}
	if old, ok := r.gestures[id]; ok {
		old.Detach()
	}

	g := newGesture(r, host, id, cfg)
	g.proxy = &handlerProxy{g: g, original: s.Handler()}
	s.SetHandler(g.proxy)
	r.gestures[id] = g
	r.debugLog("surface %d: attached", id)
	return g, nil
}

// Detach removes the gesture attached to id. Unknown ids are ignored.
func (r *Registry) Detach(id SurfaceID) {
	if g, ok := r.gestures[id]; ok {
		g.Detach()
	}
}

// DetachAll detaches every gesture in the registry.
func (r *Registry) DetachAll() {
	for _, g := range r.gestures {
		g.Detach()
	}
}

// Gesture returns the gesture attached to id.
func (r *Registry) Gesture(id SurfaceID) (*Gesture, bool) {
	g, ok := r.gestures[id]
	return g, ok
}

// Len returns the number of attached gestures.
func (r *Registry) Len() int {
	return len(r.gestures)
}

func (r *Registry) remove(g *Gesture) {
	if r.gestures[g.id] == g {
		delete(r.gestures, g.id)
	}
}

// handlerProxy is installed on an attached surface. Both the gesture and the
// previously installed handler see every event; ConsumeTouch only decides
// whose result is reported first.
type handlerProxy struct {
	g        *Gesture
	original Handler
}

func (p *handlerProxy) HandlePointer(s Surface, ev PointerEvent) bool {
	handled := p.g.Handle(ev)
	originalHandled := p.original != nil && p.original.HandlePointer(s, ev)
	if p.g.cfg.ConsumeTouch {
		return handled || originalHandled
	}
	return originalHandled || handled
}
