package panzoom

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// View is a rectangular surface owned by a Stage. It implements Surface.
type View struct {
	// ID is unique within the owning Stage.
	ID SurfaceID
	// Name is a human-readable identifier for debugging.
	Name string

	// Left and Top are the layout position in screen space.
	Left, Top float64
	// Width and Height are the unscaled size.
	Width, Height float64
	// PivotX and PivotY are the local point scaling happens around.
	// NewView centers them.
	PivotX, PivotY float64

	// X and Y are the translation applied on top of the layout position.
	X, Y float64
	// ScaleX and ScaleY are the scale factors around the pivot.
	ScaleX, ScaleY float64

	stage    *Stage
	handler  Handler
	attached bool
	disposed bool

	tween *viewTween
}

// viewTween holds an active AnimateTo for translation and scale.
type viewTween struct {
	tweens [4]*gween.Tween
	fields [4]*float64
	done   [4]bool
}

// Translation implements Surface.
func (v *View) Translation() (x, y float64) { return v.X, v.Y }

// SetTranslation implements Surface.
func (v *View) SetTranslation(x, y float64) { v.X, v.Y = x, y }

// Scale implements Surface.
func (v *View) Scale() (x, y float64) { return v.ScaleX, v.ScaleY }

// SetScale implements Surface.
func (v *View) SetScale(x, y float64) { v.ScaleX, v.ScaleY = x, y }

// Attached implements Surface.
func (v *View) Attached() bool { return v.attached && !v.disposed }

// SetAttached shows or hides the view without disposing it. Running gesture
// animations stop writing to a view that is not attached.
func (v *View) SetAttached(attached bool) { v.attached = attached }

// Handler implements Surface.
func (v *View) Handler() Handler { return v.handler }

// SetHandler implements Surface.
func (v *View) SetHandler(h Handler) { v.handler = h }

// IsDisposed reports whether Dispose has been called.
func (v *View) IsDisposed() bool { return v.disposed }

// Dispose removes the view from its stage. Gestures holding its id find
// nothing on the next lookup and stop writing.
func (v *View) Dispose() {
	if v.disposed {
		return
	}
	v.disposed = true
	v.tween = nil
	if v.stage != nil {
		v.stage.remove(v)
	}
}

// Matrix returns the view's local-to-screen affine matrix.
func (v *View) Matrix() [6]float64 {
	return viewTransform(v)
}

// LocalToScreen converts a local point to screen space.
func (v *View) LocalToScreen(lx, ly float64) (sx, sy float64) {
	return transformPoint(viewTransform(v), lx, ly)
}

// ScreenToLocal converts a screen point to the view's local space.
func (v *View) ScreenToLocal(sx, sy float64) (lx, ly float64) {
	return transformPoint(invertAffine(viewTransform(v)), sx, sy)
}

// Contains reports whether the screen point lies inside the view's
// transformed bounds. Points on the edge are inside.
func (v *View) Contains(sx, sy float64) bool {
	lx, ly := v.ScreenToLocal(sx, sy)
	return lx >= 0 && lx <= v.Width && ly >= 0 && ly <= v.Height
}

// AnimateTo tweens the view's translation to (x, y) and both scale factors to
// scale over duration seconds using the easing function. It replaces any
// previous AnimateTo and is advanced by Stage.Update.
func (v *View) AnimateTo(x, y, scale float64, duration float32, fn ease.TweenFunc) {
	vt := &viewTween{}
	to := [4]float64{x, y, scale, scale}
	vt.fields = [4]*float64{&v.X, &v.Y, &v.ScaleX, &v.ScaleY}
	for i, f := range vt.fields {
		vt.tweens[i] = gween.New(float32(*f), float32(to[i]), duration, fn)
	}
	v.tween = vt
}

// Animating reports whether an AnimateTo is in progress.
func (v *View) Animating() bool { return v.tween != nil }

// update advances AnimateTo by dt seconds.
func (v *View) update(dt float32) {
	vt := v.tween
	if vt == nil {
		return
	}
	allDone := true
	for i, tw := range vt.tweens {
		if vt.done[i] {
			continue
		}
		val, done := tw.Update(dt)
		*vt.fields[i] = float64(val)
		vt.done[i] = done
		if !done {
			allDone = false
		}
	}
	if allDone {
		v.tween = nil
	}
}
