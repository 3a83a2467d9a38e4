package panzoom

import "math"

// PinchListener receives pinch notifications from a PinchDetector.
type PinchListener interface {
	// OnPinchBegin is called when a pinch starts. Returning false declines
	// the pinch; the detector retries on the next configuration change.
	OnPinchBegin(d *PinchDetector) bool
	// OnPinch is called for each update. Returning true consumes the factor
	// so the next update is measured from the current span.
	OnPinch(d *PinchDetector) bool
	// OnPinchEnd is called when the pinch finishes.
	OnPinchEnd(d *PinchDetector)
}

// PinchDetector turns a multi-pointer stream into pinch begin/update/end
// notifications. The span is the mean pointer distance from the focal point,
// doubled, so two fingers report their separation.
type PinchDetector struct {
	listener PinchListener
	minSpan  float64
	spanSlop float64

	inProgress  bool
	focus       Vec2
	initialSpan float64
	currSpan    float64
	prevSpan    float64
}

// NewPinchDetector creates a detector reporting to l.
func NewPinchDetector(l PinchListener, minSpan, spanSlop float64) *PinchDetector {
	return &PinchDetector{listener: l, minSpan: minSpan, spanSlop: spanSlop}
}

// InProgress reports whether a pinch is active.
func (d *PinchDetector) InProgress() bool { return d.inProgress }

// Focus returns the current focal point.
func (d *PinchDetector) Focus() Vec2 { return d.focus }

// Span returns the current span.
func (d *PinchDetector) Span() float64 { return d.currSpan }

// ScaleFactor returns the span ratio since the last consumed update.
func (d *PinchDetector) ScaleFactor() float64 {
	if d.prevSpan > 0 {
		return d.currSpan / d.prevSpan
	}
	return 1
}

// OnTouchEvent feeds one pointer event to the detector.
func (d *PinchDetector) OnTouchEvent(ev PointerEvent) {
	configChanged := ev.Action != ActionMove
	streamEnded := ev.Action == ActionUp || ev.Action == ActionCancel

	wasInProgress := d.inProgress
	if (configChanged || streamEnded) && d.inProgress {
		d.listener.OnPinchEnd(d)
		d.inProgress = false
		d.initialSpan = 0
	}
	if streamEnded {
		d.currSpan, d.prevSpan = 0, 0
		return
	}

	focus, span := measure(ev.Pointers)
	d.focus = focus

	if configChanged {
		d.initialSpan = span
		d.currSpan = span
		d.prevSpan = span
	}

	if len(ev.Pointers) < 2 {
		return
	}

	if !d.inProgress && span >= d.minSpan &&
		(wasInProgress || math.Abs(span-d.initialSpan) > d.spanSlop) {
		d.currSpan = span
		d.prevSpan = span
		d.inProgress = d.listener.OnPinchBegin(d)
		return
	}

	if ev.Action == ActionMove {
		d.currSpan = span
		if d.inProgress && d.listener.OnPinch(d) {
			d.prevSpan = d.currSpan
		}
	}
}

// measure returns the centroid of pts and twice their mean distance from it.
func measure(pts []Vec2) (Vec2, float64) {
	if len(pts) == 0 {
		return Vec2{}, 0
	}
	var sum Vec2
	for _, p := range pts {
		sum = sum.Add(p)
	}
	focus := sum.Mul(1 / float64(len(pts)))
	var dev float64
	for _, p := range pts {
		dev += math.Hypot(p.X-focus.X, p.Y-focus.Y)
	}
	return focus, dev / float64(len(pts)) * 2
}
