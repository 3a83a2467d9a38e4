package panzoom

import (
	"strings"
	"testing"
)

func TestRegistrySetDebugMode(t *testing.T) {
	reg := NewRegistry(NewScheduler(60))
	reg.SetDebugMode(true)
	if !reg.debug {
		t.Error("debug should be true")
	}
	reg.SetDebugMode(false)
	if reg.debug {
		t.Error("debug should be false")
	}
}

func TestDebugCheckDetached_Panics(t *testing.T) {
	_, v, g := newTestGesture(t, DefaultConfig())
	g.reg.SetDebugMode(true)
	g.reg.Detach(v.ID)

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic for Handle on detached gesture")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "detached gesture") {
			t.Errorf("panic = %v, want detached gesture message", r)
		}
	}()
	g.Handle(PointerEvent{Action: ActionDown})
}

func TestDebugCheckDetached_NoDebug(t *testing.T) {
	_, v, g := newTestGesture(t, DefaultConfig())
	g.reg.Detach(v.ID)
	// Should not panic without debug mode.
	if g.Handle(PointerEvent{Action: ActionDown}) {
		t.Error("detached gesture should not consume")
	}
}

func TestDebugLogDisabledIsSilent(t *testing.T) {
	reg := NewRegistry(NewScheduler(60))
	reg.debugLog("surface %d", 1) // should not panic or print
}

func TestModeString(t *testing.T) {
	tests := []struct {
		m    Mode
		want string
	}{
		{ModeIdle, "idle"},
		{ModeDragging, "dragging"},
		{ModeScaling, "scaling"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.m, got, tt.want)
		}
	}
}
