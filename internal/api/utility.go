package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MikeSquared-Agency/Fuzzy/internal/scoring"
)

type UtilityRequest struct {
	Factors []float64 `json:"factors"`
	Weights []float64 `json:"weights"`
}

// Utility computes a weighted-average utility.
// POST /api/v1/utility
func Utility(w http.ResponseWriter, r *http.Request) {
	var req UtilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := scoring.CalculateUtility(req.Factors, req.Weights)
	if errors.Is(err, scoring.ErrLengthMismatch) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]float64{"utility": u})
}
