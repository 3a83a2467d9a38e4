package panzoom

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// viewTransform computes the screen matrix of a view. Returns [a, b, c, d, tx, ty].
//
// Composition order:
//
//	Translate(-PivotX, -PivotY) -> Scale -> Translate(PivotX, PivotY) -> Translate(Left+X, Top+Y)
//
// so scaling happens around the pivot and translation is applied on top of
// the layout position.
func viewTransform(v *View) [6]float64 {
	sx, sy := v.ScaleX, v.ScaleY
	tx := v.Left + v.X + v.PivotX - v.PivotX*sx
	ty := v.Top + v.Y + v.PivotY - v.PivotY*sy
	return [6]float64{sx, 0, 0, sy, tx, ty}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}
