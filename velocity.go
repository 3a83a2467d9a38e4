package panzoom

import (
	"math"
	"time"
)

// VelocityTracker consumes the pointer stream and estimates the primary
// pointer's velocity on demand.
type VelocityTracker interface {
	// AddMovement records the event's primary pointer position.
	AddMovement(ev PointerEvent)
	// Velocity returns the current estimate in units per second.
	Velocity() Vec2
	// Clear drops all samples.
	Clear()
}

const (
	fitDegree      = 2
	historySize    = 20
	maxSampleAge   = 100 * time.Millisecond
	maxSampleGap   = 40 * time.Millisecond
	degenerateNorm = 0.000001
)

type velocitySample struct {
	t   time.Duration
	pos Vec2
}

// Extrapolator estimates velocity with a least squares fit of a 2nd order
// polynomial over the most recent samples, per axis. Samples older than
// 100ms, or separated from the next by more than 40ms, are treated as not
// belonging to the current motion.
type Extrapolator struct {
	// Index of the next write into samples.
	idx     int
	samples []velocitySample
	cache   [historySize]velocitySample

	xs, ys, ts [historySize]float64
}

// NewExtrapolator returns an empty Extrapolator.
func NewExtrapolator() *Extrapolator {
	return &Extrapolator{}
}

// AddMovement implements VelocityTracker. ActionDown starts a new stroke.
func (e *Extrapolator) AddMovement(ev PointerEvent) {
	if ev.Action == ActionDown {
		e.Clear()
	}
	e.sample(ev.Time, ev.Raw())
}

func (e *Extrapolator) sample(t time.Duration, pos Vec2) {
	if e.samples == nil {
		e.samples = e.cache[:0]
	}
	s := velocitySample{t: t, pos: pos}
	if e.idx == len(e.samples) && e.idx < cap(e.samples) {
		e.samples = append(e.samples, s)
	} else {
		e.samples[e.idx] = s
	}
	e.idx++
	if e.idx == cap(e.samples) {
		e.idx = 0
	}
}

// Clear implements VelocityTracker.
func (e *Extrapolator) Clear() {
	e.idx = 0
	e.samples = e.cache[:0]
}

// get returns the i'th most recent sample, with i <= 0.
func (e *Extrapolator) get(i int) velocitySample {
	idx := (e.idx + i - 1 + len(e.samples)) % len(e.samples)
	return e.samples[idx]
}

// Velocity implements VelocityTracker.
func (e *Extrapolator) Velocity() Vec2 {
	if len(e.samples) == 0 {
		return Vec2{}
	}
	xs, ys, ts := e.xs[:0], e.ys[:0], e.ts[:0]
	newest := e.get(0)
	t := newest.t
	for i := 0; i < len(e.samples); i++ {
		p := e.get(-i)
		age := newest.t - p.t
		if age >= maxSampleAge || t-p.t >= maxSampleGap {
			break
		}
		t = p.t
		xs = append(xs, p.pos.X-newest.pos.X)
		ys = append(ys, p.pos.Y-newest.pos.Y)
		ts = append(ts, (-age).Seconds())
	}
	degree := fitDegree
	if len(ts)-1 < degree {
		degree = len(ts) - 1
	}
	if degree < 1 {
		return Vec2{}
	}
	cx, okx := polyFit(ts, xs, degree)
	cy, oky := polyFit(ts, ys, degree)
	if !okx || !oky {
		return Vec2{}
	}
	return Vec2{cx[1], cy[1]}
}

// polyFit computes the least squares polynomial fit of the given degree for
// the points in X, Y. It returns false on degenerate input.
func polyFit(X, Y []float64, degree int) ([]float64, bool) {
	if len(X) != len(Y) {
		panic("X and Y lengths differ")
	}
	if len(X) <= degree {
		return nil, false
	}

	// Expand X into the row-major matrix A where row j holds x^j.
	n := degree + 1
	A := newMatrix(n, len(X))
	for i, x := range X {
		A.set(0, i, 1)
		for j := 1; j < n; j++ {
			A.set(j, i, A.get(j-1, i)*x)
		}
	}

	Q, Rt, ok := decomposeQR(A)
	if !ok {
		return nil, false
	}
	// Solve R*B = Qt*Y by back substitution; R is upper triangular.
	B := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		B[i] = dot(Q.row(i), Y)
		for j := n - 1; j > i; j-- {
			B[i] -= Rt.get(i, j) * B[j]
		}
		B[i] /= Rt.get(i, i)
	}
	return B, true
}

// decomposeQR computes Q and Rt with Q*transpose(Rt) = A using Gram-Schmidt.
// Rows of A and Q are the vectors being orthonormalized.
func decomposeQR(A *matrix) (*matrix, *matrix, bool) {
	Q := newMatrix(A.rows, A.cols)
	Rt := newMatrix(A.rows, A.rows)
	for i := 0; i < Q.rows; i++ {
		copy(Q.row(i), A.row(i))
		// Subtract projections onto the already normalized rows.
		for j := 0; j < i; j++ {
			d := dot(Q.row(j), Q.row(i))
			for k := 0; k < Q.cols; k++ {
				Q.set(i, k, Q.get(i, k)-d*Q.get(j, k))
			}
		}
		n := norm(Q.row(i))
		if n < degenerateNorm {
			return nil, nil, false
		}
		inv := 1 / n
		for k := 0; k < Q.cols; k++ {
			Q.set(i, k, Q.get(i, k)*inv)
		}
		for j := i; j < Rt.cols; j++ {
			Rt.set(i, j, dot(Q.row(i), A.row(j)))
		}
	}
	return Q, Rt, true
}

type matrix struct {
	rows, cols int
	data       []float64
}

func newMatrix(rows, cols int) *matrix {
	return &matrix{rows: rows, cols: cols, data: make([]float64, rows*cols)}
}

func (m *matrix) set(row, col int, v float64) { m.data[row*m.cols+col] = v }
func (m *matrix) get(row, col int) float64    { return m.data[row*m.cols+col] }
func (m *matrix) row(r int) []float64         { return m.data[r*m.cols : (r+1)*m.cols] }

func norm(v []float64) float64 {
	return math.Sqrt(dot(v, v))
}

func dot(a, b []float64) float64 {
	var d float64
	for i, v := range a {
		d += v * b[i]
	}
	return d
}
