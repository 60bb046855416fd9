package scoring

import (
	"fmt"
)

// UtilityWeights defines the relative importance of the decision utility factors.
// Weights are normalised by CalculateUtility, so they need not sum to 1.0.
type UtilityWeights struct {
	Health float64 `json:"health"`
	Safety float64 `json:"safety"`
}

// DefaultUtilityWeights favours the agent's own condition over its surroundings.
func DefaultUtilityWeights() UtilityWeights {
	return UtilityWeights{
		Health: 0.6,
		Safety: 0.4,
	}
}

// Sum returns the total of all weights.
func (w UtilityWeights) Sum() float64 {
	return w.Health + w.Safety
}

// Validate checks that no weight is negative and at least one is positive.
func (w UtilityWeights) Validate() error {
	for _, v := range w.asList() {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	if w.Sum() <= 0 {
		return fmt.Errorf("weights sum to %.4f, must be positive", w.Sum())
	}
	return nil
}

func (w UtilityWeights) asList() []float64 {
	return []float64{w.Health, w.Safety}
}
