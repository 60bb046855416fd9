package fuzzy

// WeightedPoint is a point mass on the number line. A zero weight means the
// point contributes nothing when combined.
type WeightedPoint struct {
	Value  float64 `json:"value"`
	Weight float64 `json:"weight"`
}

// Combine returns the weighted average of points, carrying the total weight.
// When the total weight is not positive (no points, or all weights zero) the
// result is the zero point, which is itself harmless to combine further.
func Combine(points ...WeightedPoint) WeightedPoint {
	var totalWeight, weightedValueSum float64
	for _, p := range points {
		totalWeight += p.Weight
		weightedValueSum += p.Value * p.Weight
	}
	if totalWeight > 0 {
		return WeightedPoint{Value: weightedValueSum / totalWeight, Weight: totalWeight}
	}
	return WeightedPoint{}
}
