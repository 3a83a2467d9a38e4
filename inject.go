package panzoom

// Injected frames replace the device snapshot for one Poll each. Touch slot 1
// is the primary finger and slot 2 the second pinch finger.
const (
	injectPrimary   = 1
	injectSecondary = 2
)

// tail returns the snapshot the next injected frame starts from.
func (p *PointerSource) tail() pointerFrame {
	if n := len(p.injectQueue); n > 0 {
		return p.injectQueue[n-1]
	}
	return p.cur
}

func (p *PointerSource) push(f pointerFrame) {
	p.injectQueue = append(p.injectQueue, f)
}

// Pending returns the number of injected frames not yet polled.
func (p *PointerSource) Pending() int {
	return len(p.injectQueue)
}

// InjectPress queues a frame putting the primary finger down at (x, y).
func (p *PointerSource) InjectPress(x, y float64) {
	f := p.tail()
	f.down[injectPrimary] = true
	f.pos[injectPrimary] = Vec2{x, y}
	p.push(f)
}

// InjectMove queues a frame moving the primary finger to (x, y).
func (p *PointerSource) InjectMove(x, y float64) {
	f := p.tail()
	f.pos[injectPrimary] = Vec2{x, y}
	p.push(f)
}

// InjectRelease queues a frame lifting every pointer.
func (p *PointerSource) InjectRelease() {
	p.push(pointerFrame{})
}

// InjectLiftSecondary queues a frame lifting only the second pinch finger.
func (p *PointerSource) InjectLiftSecondary() {
	f := p.tail()
	f.down[injectSecondary] = false
	p.push(f)
}

// InjectHold queues frames that leave every pointer where it is.
func (p *PointerSource) InjectHold(frames int) {
	f := p.tail()
	for i := 0; i < frames; i++ {
		p.push(f)
	}
}

// InjectDrag queues a full drag: press at (fromX, fromY), frames-2 linearly
// interpolated moves, a final move to (toX, toY) and a release. The total
// sequence consumes frames+1 frames. Minimum frames is 2.
func (p *PointerSource) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	p.InjectPress(fromX, fromY)
	steps := frames - 1
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	p.InjectRelease()
}

// InjectPinch queues a horizontal two-finger pinch centered on (cx, cy):
// both fingers down at fromSpan apart, then frames-1 moves ending at toSpan.
// The fingers stay down; follow with InjectRelease or InjectLiftSecondary.
func (p *PointerSource) InjectPinch(cx, cy, fromSpan, toSpan float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	f := p.tail()
	setSpan := func(span float64) {
		f.down[injectPrimary] = true
		f.down[injectSecondary] = true
		f.pos[injectPrimary] = Vec2{cx - span/2, cy}
		f.pos[injectSecondary] = Vec2{cx + span/2, cy}
		p.push(f)
	}
	setSpan(fromSpan)
	steps := frames - 1
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		setSpan(fromSpan + (toSpan-fromSpan)*t)
	}
}
