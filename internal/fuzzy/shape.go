package fuzzy

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidShape is returned when shape breakpoints are out of order or not finite.
var ErrInvalidShape = errors.New("invalid shape parameters")

// Shape is a one-dimensional fuzzy set. The family is closed: Trapezoid and
// Triangle are the only implementations.
type Shape interface {
	// Membership returns the degree in [0,1] to which x belongs to the set.
	Membership(x float64) float64
	// PartialCentroid returns the centroid and area of the shape clipped at
	// cut level y. A zero cut level contributes nothing.
	PartialCentroid(y float64) WeightedPoint
	// Bounds returns the support range, outside of which membership is 0.
	Bounds() (lo, hi float64)
	// Peak returns the range where membership is 1.
	Peak() (lo, hi float64)
	fmt.Stringer

	shape()
}

// Trapezoid rises over [a,b], holds 1 over [b,c] and falls over [c,d].
type Trapezoid struct {
	a, b, c, d float64
}

// NewTrapezoid validates a <= b <= c <= d.
func NewTrapezoid(a, b, c, d float64) (Trapezoid, error) {
	if !finite(a, b, c, d) || !(a <= b && b <= c && c <= d) {
		return Trapezoid{}, fmt.Errorf("%w: trapezoid(%g, %g, %g, %g) requires a <= b <= c <= d", ErrInvalidShape, a, b, c, d)
	}
	return Trapezoid{a: a, b: b, c: c, d: d}, nil
}

// MustTrapezoid is like NewTrapezoid but panics on invalid breakpoints.
func MustTrapezoid(a, b, c, d float64) Trapezoid {
	t, err := NewTrapezoid(a, b, c, d)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Trapezoid) Membership(x float64) float64 {
	switch {
	case x <= t.a || x >= t.d:
		return 0
	case x >= t.b && x <= t.c:
		return 1
	case x < t.b:
		return (x - t.a) / (t.b - t.a)
	default:
		return (t.d - x) / (t.d - t.c)
	}
}

func (t Trapezoid) PartialCentroid(y float64) WeightedPoint {
	return clippedCentroid(t.a, t.b, t.c, t.d, y)
}

func (t Trapezoid) Bounds() (lo, hi float64) { return t.a, t.d }
func (t Trapezoid) Peak() (lo, hi float64)   { return t.b, t.c }

func (t Trapezoid) String() string {
	return fmt.Sprintf("trapezoid(%g, %g, %g, %g)", t.a, t.b, t.c, t.d)
}

func (Trapezoid) shape() {}

// Triangle rises over [a,b] to an apex at b and falls over [b,c].
type Triangle struct {
	a, b, c float64
}

// NewTriangle validates a <= b <= c.
func NewTriangle(a, b, c float64) (Triangle, error) {
	if !finite(a, b, c) || !(a <= b && b <= c) {
		return Triangle{}, fmt.Errorf("%w: triangle(%g, %g, %g) requires a <= b <= c", ErrInvalidShape, a, b, c)
	}
	return Triangle{a: a, b: b, c: c}, nil
}

// MustTriangle is like NewTriangle but panics on invalid breakpoints.
func MustTriangle(a, b, c float64) Triangle {
	t, err := NewTriangle(a, b, c)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Triangle) Membership(x float64) float64 {
	switch {
	case x <= t.a || x >= t.c:
		return 0
	case x == t.b:
		return 1
	case x < t.b:
		return (x - t.a) / (t.b - t.a)
	default:
		return (t.c - x) / (t.c - t.b)
	}
}

func (t Triangle) PartialCentroid(y float64) WeightedPoint {
	return clippedCentroid(t.a, t.b, t.b, t.c, y)
}

func (t Triangle) Bounds() (lo, hi float64) { return t.a, t.c }
func (t Triangle) Peak() (lo, hi float64)   { return t.b, t.b }

func (t Triangle) String() string {
	return fmt.Sprintf("triangle(%g, %g, %g)", t.a, t.b, t.c)
}

func (Triangle) shape() {}

// clippedCentroid splits the outline rising over [a,b] and falling over [c,d],
// cut at height y, into a left sliver, a right sliver and the rectangle between
// them, and combines the three.
//
// The edge positions at height y are interpolated along the edge rather than
// derived from its slope, so a zero-width (vertical) edge yields a sliver of
// zero area instead of dividing by zero.
func clippedCentroid(a, b, c, d, y float64) WeightedPoint {
	if !(y > 0) {
		return WeightedPoint{}
	}
	if y > 1 {
		y = 1
	}

	leftMax := a + y*(b-a)
	rightMin := d - y*(d-c)

	left := WeightedPoint{Value: (a + leftMax) / 2, Weight: (leftMax - a) * y / 2}
	right := WeightedPoint{Value: (rightMin + d) / 2, Weight: (d - rightMin) * y / 2}
	center := WeightedPoint{Value: (leftMax + rightMin) / 2, Weight: (rightMin - leftMax) * y}

	return Combine(left, right, center)
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
