package panzoom

import (
	"testing"
	"time"
)

func actions(evs []PointerEvent) []Action {
	out := make([]Action, len(evs))
	for i, ev := range evs {
		out[i] = ev.Action
	}
	return out
}

func sameActions(got []PointerEvent, want ...Action) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if got[i].Action != want[i] {
			return false
		}
	}
	return true
}

func TestScriptedSourceIdle(t *testing.T) {
	src := NewScriptedSource()
	if evs := src.Poll(0); len(evs) != 0 {
		t.Errorf("idle Poll = %v, want none", actions(evs))
	}
	if src.Down() != 0 {
		t.Errorf("Down = %d, want 0", src.Down())
	}
}

func TestPollPressMoveRelease(t *testing.T) {
	src := NewScriptedSource()
	src.InjectPress(10, 20)
	src.InjectMove(15, 20)
	src.InjectRelease()

	evs := src.Poll(5 * time.Millisecond)
	if !sameActions(evs, ActionDown) {
		t.Fatalf("frame 1 = %v, want [down]", actions(evs))
	}
	ev := evs[0]
	if ev.RawX != 10 || ev.RawY != 20 || ev.PointerCount != 1 || ev.Time != 5*time.Millisecond {
		t.Errorf("down = %+v", ev)
	}

	evs = src.Poll(0)
	if !sameActions(evs, ActionMove) || evs[0].RawX != 15 {
		t.Fatalf("frame 2 = %+v, want move to 15", evs)
	}

	evs = src.Poll(0)
	if !sameActions(evs, ActionUp) {
		t.Fatalf("frame 3 = %v, want [up]", actions(evs))
	}
	// The final up reports where the pointer lifted.
	if evs[0].RawX != 15 || evs[0].RawY != 20 || evs[0].PointerCount != 0 {
		t.Errorf("up = %+v", evs[0])
	}
}

func TestPollHoldsBetweenInjections(t *testing.T) {
	src := NewScriptedSource()
	src.InjectPress(10, 10)
	src.Poll(0)
	for i := 0; i < 3; i++ {
		if evs := src.Poll(0); len(evs) != 0 {
			t.Fatalf("hold frame %d = %v, want none", i, actions(evs))
		}
	}
	if src.Down() != 1 {
		t.Errorf("Down = %d, want 1", src.Down())
	}
}

func TestPollSecondPointer(t *testing.T) {
	src := NewScriptedSource()
	src.InjectPress(100, 100)
	src.InjectPinch(150, 100, 100, 140, 2)
	src.InjectLiftSecondary()
	src.InjectRelease()

	src.Poll(0) // down at 100,100

	// Primary moves to 100 (unchanged) and the second finger lands at 200.
	evs := src.Poll(0)
	if !sameActions(evs, ActionPointerDown) {
		t.Fatalf("frame 2 = %v, want [pointer-down]", actions(evs))
	}
	if evs[0].PointerCount != 2 || evs[0].Pointers[1] != (Vec2{200, 100}) {
		t.Errorf("pointer down = %+v", evs[0])
	}

	evs = src.Poll(0)
	if !sameActions(evs, ActionMove) {
		t.Fatalf("frame 3 = %v, want [move]", actions(evs))
	}
	if evs[0].Pointers[0] != (Vec2{80, 100}) || evs[0].Pointers[1] != (Vec2{220, 100}) {
		t.Errorf("move pointers = %v", evs[0].Pointers)
	}

	evs = src.Poll(0)
	if !sameActions(evs, ActionSecondaryPointerUp) {
		t.Fatalf("frame 4 = %v, want [secondary-up]", actions(evs))
	}
	if evs[0].PointerCount != 1 || evs[0].RawX != 80 {
		t.Errorf("secondary up = %+v", evs[0])
	}

	evs = src.Poll(0)
	if !sameActions(evs, ActionUp) {
		t.Fatalf("frame 5 = %v, want [up]", actions(evs))
	}
}

func TestPollSimultaneousLift(t *testing.T) {
	src := NewScriptedSource()
	src.InjectPinch(0, 0, 100, 100, 2)
	src.InjectRelease()

	evs := src.Poll(0)
	if !sameActions(evs, ActionDown, ActionPointerDown) {
		t.Fatalf("frame 1 = %v, want [down pointer-down]", actions(evs))
	}
	src.Poll(0)

	evs = src.Poll(0)
	if !sameActions(evs, ActionSecondaryPointerUp, ActionUp) {
		t.Fatalf("release = %v, want [secondary-up up]", actions(evs))
	}
	if evs[0].PointerCount != 1 || evs[1].PointerCount != 0 {
		t.Errorf("pointer counts = %d, %d", evs[0].PointerCount, evs[1].PointerCount)
	}
}

func TestCountDown(t *testing.T) {
	var f pointerFrame
	f.down[0] = true
	f.down[4] = true
	if got := countDown(&f); got != 2 {
		t.Errorf("countDown = %d, want 2", got)
	}
}
