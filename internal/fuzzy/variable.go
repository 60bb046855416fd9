package fuzzy

import (
	"fmt"
	"math"
	"strings"
)

// Category names one of the three fuzzy sets of a Variable.
type Category int

const (
	Low Category = iota
	Medium
	High
)

func (c Category) String() string {
	switch c {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// ParseCategory is the inverse of Category.String, case-insensitive.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return Low, nil
	case "medium":
		return Medium, nil
	case "high":
		return High, nil
	}
	return 0, fmt.Errorf("unknown category %q", s)
}

// Variable ties three overlapping shapes over one real-valued domain into a
// single fuzzified quantity. Shapes are not cross-validated; fuzzy sets are
// expected to overlap.
type Variable struct {
	Name   string
	Low    Shape
	Medium Shape
	High   Shape
}

// NewVariable creates a Variable from its low, medium and high shapes.
func NewVariable(name string, low, medium, high Shape) Variable {
	return Variable{Name: name, Low: low, Medium: medium, High: high}
}

// Evaluation holds the membership degrees of one input in a Variable's sets.
type Evaluation struct {
	Input  float64 `json:"input"`
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

// Evaluate computes the membership degrees of x. Any x is accepted; outside
// every shape all degrees are 0.
func (v Variable) Evaluate(x float64) Evaluation {
	return Evaluation{
		Input:  x,
		Low:    v.Low.Membership(x),
		Medium: v.Medium.Membership(x),
		High:   v.High.Membership(x),
	}
}

// Defuzzify combines the centroid of each shape, clipped at its own degree.
func (v Variable) Defuzzify(e Evaluation) WeightedPoint {
	return Combine(
		v.Low.PartialCentroid(e.Low),
		v.Medium.PartialCentroid(e.Medium),
		v.High.PartialCentroid(e.High),
	)
}

// CrispValue returns the defuzzified value of e. The zero Evaluation yields 0.
func (v Variable) CrispValue(e Evaluation) float64 {
	return v.Defuzzify(e).Value
}

// Range returns the union of the three shapes' supports.
func (v Variable) Range() (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, s := range []Shape{v.Low, v.Medium, v.High} {
		a, b := s.Bounds()
		lo = math.Min(lo, a)
		hi = math.Max(hi, b)
	}
	return lo, hi
}

// Shape returns the shape for c.
func (v Variable) Shape(c Category) Shape {
	switch c {
	case Low:
		return v.Low
	case Medium:
		return v.Medium
	default:
		return v.High
	}
}

// Degree returns the membership degree for c.
func (e Evaluation) Degree(c Category) float64 {
	switch c {
	case Low:
		return e.Low
	case Medium:
		return e.Medium
	default:
		return e.High
	}
}

// IsLow, IsMedium and IsHigh report whether a degree is at least as large as
// both others. They are not mutually exclusive: tied categories are all dominant.
func (e Evaluation) IsLow() bool    { return e.Low >= e.Medium && e.Low >= e.High }
func (e Evaluation) IsMedium() bool { return e.Medium >= e.Low && e.Medium >= e.High }
func (e Evaluation) IsHigh() bool   { return e.High >= e.Low && e.High >= e.Medium }

// Dominant lists every dominant category, in low→high order.
func (e Evaluation) Dominant() []Category {
	var out []Category
	if e.IsLow() {
		out = append(out, Low)
	}
	if e.IsMedium() {
		out = append(out, Medium)
	}
	if e.IsHigh() {
		out = append(out, High)
	}
	return out
}

func (e Evaluation) String() string {
	return fmt.Sprintf("low=%g medium=%g high=%g", e.Low, e.Medium, e.High)
}
