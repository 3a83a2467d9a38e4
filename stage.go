package panzoom

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Stage owns a set of views, routes pointer events to them and drives the
// scheduler from the game loop. It implements Host.
type Stage struct {
	sched  *Scheduler
	views  map[SurfaceID]*View
	order  []*View // painter order, last is topmost
	nextID SurfaceID

	input    *PointerSource
	captured *View
	runner   *TestRunner
}

// NewStage creates an empty stage reading real ebiten input and advancing
// sched once per Update.
func NewStage(sched *Scheduler) *Stage {
	return &Stage{
		sched: sched,
		views: make(map[SurfaceID]*View),
		input: NewPointerSource(),
	}
}

// Scheduler returns the stage's scheduler.
func (st *Stage) Scheduler() *Scheduler {
	return st.sched
}

// Input returns the pointer source the stage polls each frame.
func (st *Stage) Input() *PointerSource {
	return st.input
}

// SetInput replaces the pointer source, for example with NewScriptedSource.
func (st *Stage) SetInput(src *PointerSource) {
	st.input = src
}

// SetTestRunner attaches a script runner. Its step runs at the start of
// every Update, before input is polled.
func (st *Stage) SetTestRunner(r *TestRunner) {
	st.runner = r
}

// NewView creates an attached view of the given size at the origin, with
// its pivot centered, and adds it on top of the stage.
func (st *Stage) NewView(name string, width, height float64) *View {
	st.nextID++
	v := &View{
		ID:       st.nextID,
		Name:     name,
		Width:    width,
		Height:   height,
		PivotX:   width / 2,
		PivotY:   height / 2,
		ScaleX:   1,
		ScaleY:   1,
		stage:    st,
		attached: true,
	}
	st.views[v.ID] = v
	st.order = append(st.order, v)
	return v
}

// Surface implements Host.
func (st *Stage) Surface(id SurfaceID) Surface {
	v, ok := st.views[id]
	if !ok {
		return nil
	}
	return v
}

// View returns the view with the given id, or nil.
func (st *Stage) View(id SurfaceID) *View {
	return st.views[id]
}

// Views returns the views in painter order. The returned slice MUST NOT be mutated.
func (st *Stage) Views() []*View {
	return st.order
}

func (st *Stage) remove(v *View) {
	delete(st.views, v.ID)
	for i, o := range st.order {
		if o == v {
			st.order = append(st.order[:i], st.order[i+1:]...)
			break
		}
	}
	if st.captured == v {
		st.captured = nil
	}
}

// hitTest returns the topmost attached view containing the screen point.
func (st *Stage) hitTest(x, y float64) *View {
	for i := len(st.order) - 1; i >= 0; i-- {
		v := st.order[i]
		if v.Attached() && v.Contains(x, y) {
			return v
		}
	}
	return nil
}

// Dispatch delivers ev to the view under the first pointer. The view hit on
// ActionDown captures the stream until the matching up or cancel. It reports
// whether the view's handler consumed the event.
func (st *Stage) Dispatch(ev PointerEvent) bool {
	if ev.Action == ActionDown {
		st.captured = st.hitTest(ev.RawX, ev.RawY)
	}
	v := st.captured
	if ev.Action == ActionUp || ev.Action == ActionCancel {
		st.captured = nil
	}
	if v == nil || v.disposed || v.handler == nil {
		return false
	}
	return v.handler.HandlePointer(v, ev)
}

// Update runs one frame at ebiten's tick rate.
func (st *Stage) Update() {
	st.step(time.Second / time.Duration(ebiten.TPS()))
}

// step runs the test script, delivers this frame's pointer events, advances
// view tweens and then the scheduler. Input always precedes timers so a
// timer never fires ahead of an event already received.
func (st *Stage) step(dt time.Duration) {
	if st.runner != nil {
		st.runner.step(st)
	}
	for _, ev := range st.input.Poll(st.sched.Now()) {
		st.Dispatch(ev)
	}
	secs := float32(dt.Seconds())
	for _, v := range st.order {
		v.update(secs)
	}
	st.sched.Advance(dt)
}
