package panzoom

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const maxPointers = 10 // pointer 0 = mouse, 1-9 = touch

// pointerFrame is the set of pointers in contact during one frame.
type pointerFrame struct {
	down [maxPointers]bool
	pos  [maxPointers]Vec2
}

// PointerSource turns per-frame pointer snapshots into a PointerEvent
// stream. Snapshots come from injected frames when any are queued, and from
// the source's reader otherwise.
type PointerSource struct {
	read func(f *pointerFrame)

	cur pointerFrame

	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID

	injectQueue []pointerFrame
}

// NewPointerSource creates a source that reads the mouse (left button) and
// touch screen through ebiten.
func NewPointerSource() *PointerSource {
	p := &PointerSource{}
	p.read = p.readEbiten
	return p
}

// NewScriptedSource creates a source that never reads real devices. Between
// injected frames every pointer stays where the last frame left it.
func NewScriptedSource() *PointerSource {
	p := &PointerSource{}
	p.read = p.holdLast
	return p
}

// Poll takes this frame's snapshot and returns the events that lead from the
// previous snapshot to it, stamped with now.
func (p *PointerSource) Poll(now time.Duration) []PointerEvent {
	var f pointerFrame
	if len(p.injectQueue) > 0 {
		f = p.injectQueue[0]
		copy(p.injectQueue, p.injectQueue[1:])
		p.injectQueue = p.injectQueue[:len(p.injectQueue)-1]
	} else {
		p.read(&f)
	}
	return p.diff(f, now)
}

// Down returns the number of pointers currently in contact.
func (p *PointerSource) Down() int {
	return countDown(&p.cur)
}

func (p *PointerSource) holdLast(f *pointerFrame) {
	*f = p.cur
}

// readEbiten fills f from the mouse (slot 0) and touches (slots 1-9).
func (p *PointerSource) readEbiten(f *pointerFrame) {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		f.down[0] = true
		f.pos[0] = Vec2{float64(mx), float64(my)}
	}

	touchIDs := ebiten.AppendTouchIDs(p.prevTouchIDs[:0])
	p.prevTouchIDs = touchIDs

	var active [maxPointers]bool
	for _, tid := range touchIDs {
		slot := p.touchSlot(tid)
		if slot < 0 {
			continue
		}
		active[slot] = true
		tx, ty := ebiten.TouchPosition(tid)
		f.down[slot] = true
		f.pos[slot] = Vec2{float64(tx), float64(ty)}
	}

	// Free slots whose touch has ended.
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && !active[i] {
			p.touchUsed[i] = false
			p.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (p *PointerSource) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if p.touchUsed[i] && p.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !p.touchUsed[i] {
			p.touchUsed[i] = true
			p.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// diff emits moves first, then lifts, then new pointers, updating the
// current snapshot as it goes so every event sees consistent pointer counts.
func (p *PointerSource) diff(f pointerFrame, now time.Duration) []PointerEvent {
	var events []PointerEvent

	moved := false
	for i := 0; i < maxPointers; i++ {
		if p.cur.down[i] && f.down[i] && p.cur.pos[i] != f.pos[i] {
			p.cur.pos[i] = f.pos[i]
			moved = true
		}
	}
	if moved {
		events = append(events, p.event(ActionMove, -1, now))
	}

	for i := 0; i < maxPointers; i++ {
		if p.cur.down[i] && !f.down[i] {
			p.cur.down[i] = false
			if countDown(&p.cur) == 0 {
				events = append(events, p.event(ActionUp, i, now))
			} else {
				events = append(events, p.event(ActionSecondaryPointerUp, -1, now))
			}
		}
	}

	for i := 0; i < maxPointers; i++ {
		if !p.cur.down[i] && f.down[i] {
			p.cur.down[i] = true
			p.cur.pos[i] = f.pos[i]
			if countDown(&p.cur) == 1 {
				events = append(events, p.event(ActionDown, -1, now))
			} else {
				events = append(events, p.event(ActionPointerDown, -1, now))
			}
		}
	}
	return events
}

// event builds a PointerEvent from the current snapshot. The primary pointer
// is the lowest slot in contact; for the final up it is the lifted slot.
func (p *PointerSource) event(a Action, lifted int, now time.Duration) PointerEvent {
	ev := PointerEvent{Action: a, Time: now}
	primary := lifted
	for i := 0; i < maxPointers; i++ {
		if !p.cur.down[i] {
			continue
		}
		if primary < 0 {
			primary = i
		}
		ev.Pointers = append(ev.Pointers, p.cur.pos[i])
	}
	ev.PointerCount = len(ev.Pointers)
	if primary >= 0 {
		ev.RawX, ev.RawY = p.cur.pos[primary].X, p.cur.pos[primary].Y
	}
	return ev
}

func countDown(f *pointerFrame) int {
	n := 0
	for _, d := range f.down {
		if d {
			n++
		}
	}
	return n
}
