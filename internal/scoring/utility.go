package scoring

import (
	"errors"
	"fmt"
)

// ErrLengthMismatch is returned when factor and weight lists differ in length.
var ErrLengthMismatch = errors.New("factors and weights must be the same length")

// CalculateUtility returns the weighted average of factors. A zero total
// weight yields 0 rather than an error.
func CalculateUtility(factors, weights []float64) (float64, error) {
	if len(factors) != len(weights) {
		return 0, fmt.Errorf("%w: %d factors, %d weights", ErrLengthMismatch, len(factors), len(weights))
	}

	var weightedSum, weightTotal float64
	for i := range factors {
		weightedSum += factors[i] * weights[i]
		weightTotal += weights[i]
	}

	if weightTotal == 0 {
		return 0, nil
	}
	return weightedSum / weightTotal, nil
}
