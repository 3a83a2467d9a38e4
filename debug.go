package panzoom

import (
	"fmt"
	"os"
)

// debugLog prints a gesture trace line to stderr when debug mode is on.
func (r *Registry) debugLog(format string, args ...any) {
	if !r.debug {
		return
	}
	_, _ = fmt.Fprintf(os.Stderr, "[panzoom] "+format+"\n", args...)
}

// debugCheckDetached panics with a descriptive message when a detached
// gesture is still being fed events. Release mode ignores such calls.
func (r *Registry) debugCheckDetached(g *Gesture, op string) {
	if r.debug && g.detached {
		panic(fmt.Sprintf("panzoom debug: %s on detached gesture (surface %d)", op, g.id))
	}
}
