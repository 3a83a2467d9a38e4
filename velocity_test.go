package panzoom

import (
	"testing"
	"time"
)

func TestPolyFit(t *testing.T) {
	// y = 2x^2 through three points.
	B, ok := polyFit([]float64{-1, 0, 1}, []float64{2, 0, 2}, 2)
	if !ok {
		t.Fatal("polyFit reported degenerate input")
	}
	want := []float64{0, 0, 2}
	for i := range want {
		if !approxEqual(B[i], want[i], 1e-9) {
			t.Errorf("B = %v, want %v", B, want)
			break
		}
	}
}

func TestPolyFitDegenerate(t *testing.T) {
	if _, ok := polyFit([]float64{0, 0, 0}, []float64{1, 2, 3}, 2); ok {
		t.Error("identical X values should be degenerate")
	}
	if _, ok := polyFit([]float64{0, 1}, []float64{1, 2}, 2); ok {
		t.Error("too few points should fail")
	}
}

// stroke feeds a straight stroke sampled every 8ms into e.
func stroke(e *Extrapolator, from, vel Vec2, samples int) {
	for i := 0; i < samples; i++ {
		at := time.Duration(i) * 8 * time.Millisecond
		pos := from.Add(vel.Mul(at.Seconds()))
		a := ActionMove
		if i == 0 {
			a = ActionDown
		}
		e.AddMovement(PointerEvent{Action: a, Time: at, RawX: pos.X, RawY: pos.Y})
	}
}

func TestExtrapolatorLinearMotion(t *testing.T) {
	e := NewExtrapolator()
	stroke(e, Vec2{100, 100}, Vec2{600, -240}, 10)

	v := e.Velocity()
	if !approxEqual(v.X, 600, 1e-3) || !approxEqual(v.Y, -240, 1e-3) {
		t.Errorf("Velocity = %+v, want (600,-240)", v)
	}
}

func TestExtrapolatorTwoSamples(t *testing.T) {
	e := NewExtrapolator()
	e.AddMovement(PointerEvent{Action: ActionDown, Time: 0, RawX: 0})
	e.AddMovement(PointerEvent{Action: ActionMove, Time: 10 * time.Millisecond, RawX: 5})
	v := e.Velocity()
	if !approxEqual(v.X, 500, 1e-6) {
		t.Errorf("Velocity.X = %v, want 500", v.X)
	}
}

func TestExtrapolatorEmptyAndSingle(t *testing.T) {
	e := NewExtrapolator()
	if v := e.Velocity(); v != (Vec2{}) {
		t.Errorf("empty Velocity = %+v, want zero", v)
	}
	e.AddMovement(PointerEvent{Action: ActionDown, RawX: 50, RawY: 50})
	if v := e.Velocity(); v != (Vec2{}) {
		t.Errorf("single-sample Velocity = %+v, want zero", v)
	}
}

func TestExtrapolatorDownClears(t *testing.T) {
	e := NewExtrapolator()
	stroke(e, Vec2{0, 0}, Vec2{1000, 0}, 8)
	e.AddMovement(PointerEvent{Action: ActionDown, Time: 200 * time.Millisecond, RawX: 10})
	if v := e.Velocity(); v != (Vec2{}) {
		t.Errorf("Velocity after down = %+v, want zero", v)
	}
}

func TestExtrapolatorPauseDropsOldSamples(t *testing.T) {
	e := NewExtrapolator()
	stroke(e, Vec2{0, 0}, Vec2{1000, 0}, 8)
	// Hold still past the sample gap, then release in place.
	e.AddMovement(PointerEvent{Action: ActionUp, Time: 56*time.Millisecond + maxSampleGap, RawX: 56})
	if v := e.Velocity(); v != (Vec2{}) {
		t.Errorf("Velocity after pause = %+v, want zero", v)
	}
}

func TestExtrapolatorHistoryWraps(t *testing.T) {
	e := NewExtrapolator()
	// More samples than the history holds; only the recent ones matter.
	stroke(e, Vec2{0, 0}, Vec2{300, 300}, historySize*2)
	v := e.Velocity()
	if !approxEqual(v.X, 300, 1e-3) || !approxEqual(v.Y, 300, 1e-3) {
		t.Errorf("Velocity = %+v, want (300,300)", v)
	}
}

func TestExtrapolatorClear(t *testing.T) {
	e := NewExtrapolator()
	stroke(e, Vec2{0, 0}, Vec2{1000, 0}, 5)
	e.Clear()
	if v := e.Velocity(); v != (Vec2{}) {
		t.Errorf("Velocity after Clear = %+v, want zero", v)
	}
}
