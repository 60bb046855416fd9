package api

import (
	"encoding/json"
	"errors"
	"math"
	"net/http"

	"github.com/MikeSquared-Agency/Fuzzy/internal/advisor"
	"github.com/MikeSquared-Agency/Fuzzy/internal/decision"
	"github.com/MikeSquared-Agency/Fuzzy/internal/fuzzy"
)

type EvaluateHandler struct {
	service *advisor.Service
}

func NewEvaluateHandler(svc *advisor.Service) *EvaluateHandler {
	return &EvaluateHandler{service: svc}
}

type EvaluateRequest struct {
	Variable string   `json:"variable"`
	Input    *float64 `json:"input"`
}

type EvaluateResponse struct {
	Variable   string           `json:"variable"`
	Evaluation fuzzy.Evaluation `json:"evaluation"`
	Dominant   []string         `json:"dominant"`
	CrispValue float64          `json:"crisp_value"`
}

// Evaluate fuzzifies a single input.
// POST /api/v1/evaluate
func (h *EvaluateHandler) Evaluate(w http.ResponseWriter, r *http.Request) {
	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Variable == "" || req.Input == nil {
		writeError(w, http.StatusBadRequest, "variable and input required")
		return
	}
	if math.IsNaN(*req.Input) {
		writeError(w, http.StatusBadRequest, "input must be a number")
		return
	}

	e, crisp, err := h.service.Evaluate(req.Variable, *req.Input)
	if errors.Is(err, decision.ErrUnknownVariable) {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	dominant := make([]string, 0, 3)
	for _, c := range e.Dominant() {
		dominant = append(dominant, c.String())
	}

	writeJSON(w, http.StatusOK, EvaluateResponse{
		Variable:   req.Variable,
		Evaluation: e,
		Dominant:   dominant,
		CrispValue: crisp,
	})
}
