package scoring

// Factor is one named input to a utility calculation.
type Factor struct {
	Name   string
	Score  float64
	Weight float64
}

// FactorResult captures one factor's contribution to the total utility.
type FactorResult struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// UtilityResult is a utility score together with its per-factor breakdown.
type UtilityResult struct {
	Utility float64        `json:"utility"`
	Factors []FactorResult `json:"factors"`
}

// Score computes the utility of factors and explains each contribution.
// Weighted is the factor's share of the normalised utility, so the
// Weighted values sum to Utility.
func Score(factors []Factor) UtilityResult {
	scores := make([]float64, len(factors))
	weights := make([]float64, len(factors))
	for i, f := range factors {
		scores[i] = clamp(f.Score, 0, 1)
		weights[i] = f.Weight
	}

	// lengths always match here
	utility, _ := CalculateUtility(scores, weights)

	var total float64
	for _, w := range weights {
		total += w
	}

	results := make([]FactorResult, len(factors))
	for i, f := range factors {
		results[i] = FactorResult{Name: f.Name, Score: scores[i], Weight: f.Weight}
		if total != 0 {
			results[i].Weighted = scores[i] * f.Weight / total
		}
	}

	return UtilityResult{Utility: utility, Factors: results}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
