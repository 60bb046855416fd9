package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Fuzzy/internal/decision"
	"github.com/MikeSquared-Agency/Fuzzy/internal/fuzzy"
	"github.com/MikeSquared-Agency/Fuzzy/internal/store"
)

type AdminHandler struct {
	store   store.Store
	advisor *decision.Advisor
}

func NewAdminHandler(s store.Store, a *decision.Advisor) *AdminHandler {
	return &AdminHandler{store: s, advisor: a}
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.store.GetStats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

type VariableInfo struct {
	Name   string            `json:"name"`
	Min    float64           `json:"min"`
	Max    float64           `json:"max"`
	Shapes map[string]string `json:"shapes"`
}

// Variables lists the profile's variables and shapes.
func (h *AdminHandler) Variables(w http.ResponseWriter, r *http.Request) {
	p := h.advisor.Profile()

	var infos []VariableInfo
	for _, v := range []fuzzy.Variable{p.Health, p.Enemies} {
		lo, hi := v.Range()
		shapes := make(map[string]string, 3)
		for _, c := range []fuzzy.Category{fuzzy.Low, fuzzy.Medium, fuzzy.High} {
			shapes[c.String()] = v.Shape(c).String()
		}
		infos = append(infos, VariableInfo{Name: v.Name, Min: lo, Max: hi, Shapes: shapes})
	}

	writeJSON(w, http.StatusOK, infos)
}
