package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Fuzzy/internal/decision"
	"github.com/MikeSquared-Agency/Fuzzy/internal/fuzzy"
)

type ExplainHandler struct {
	decisions *DecisionsHandler
	advisor   *decision.Advisor
}

func NewExplainHandler(d *DecisionsHandler, a *decision.Advisor) *ExplainHandler {
	return &ExplainHandler{decisions: d, advisor: a}
}

// Explain replays a recorded decision and returns the full breakdown: shapes,
// degrees, dominant categories and utility factors.
// GET /api/v1/decisions/{id}/explain
func (h *ExplainHandler) Explain(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.decisions.load(w, r)
	if !ok {
		return
	}

	d := h.advisor.Decide(decision.Reading{Health: rec.Health, Enemies: rec.Enemies})
	profile := h.advisor.Profile()

	resp := map[string]interface{}{
		"decision_id":     rec.ID,
		"recorded_action": rec.Action,
		"action":          d.Action,
		"utility":         d.Utility,
		"variables": map[string]interface{}{
			decision.VariableHealth:  explainVariable(profile.Health, d.Health, d.HealthCrisp),
			decision.VariableEnemies: explainVariable(profile.Enemies, d.Enemies, d.EnemiesCrisp),
		},
	}

	writeJSON(w, http.StatusOK, resp)
}

func explainVariable(v fuzzy.Variable, e fuzzy.Evaluation, crisp float64) map[string]interface{} {
	shapes := make(map[string]string, 3)
	dominant := make([]string, 0, 3)
	for _, c := range []fuzzy.Category{fuzzy.Low, fuzzy.Medium, fuzzy.High} {
		shapes[c.String()] = v.Shape(c).String()
	}
	for _, c := range e.Dominant() {
		dominant = append(dominant, c.String())
	}
	return map[string]interface{}{
		"shapes":      shapes,
		"evaluation":  e,
		"dominant":    dominant,
		"crisp_value": crisp,
	}
}
