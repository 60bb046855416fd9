package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Fuzzy/internal/advisor"
	"github.com/MikeSquared-Agency/Fuzzy/internal/decision"
	"github.com/MikeSquared-Agency/Fuzzy/internal/store"
)

type DecisionsHandler struct {
	store   store.Store
	service *advisor.Service
}

func NewDecisionsHandler(s store.Store, svc *advisor.Service) *DecisionsHandler {
	return &DecisionsHandler{store: s, service: svc}
}

type CreateDecisionRequest struct {
	Health  *float64 `json:"health"`
	Enemies *float64 `json:"enemies"`
}

// Create decides on a reading and records the decision.
// POST /api/v1/decisions
func (h *DecisionsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateDecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Health == nil || req.Enemies == nil {
		writeError(w, http.StatusBadRequest, "health and enemies required")
		return
	}

	reading := decision.Reading{Health: *req.Health, Enemies: *req.Enemies}
	rec, _, err := h.service.Decide(r.Context(), reading, r.Header.Get(ClientIDHeader))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}

// List returns recorded decisions, newest first.
// GET /api/v1/decisions?action=&source=&limit=&offset=
func (h *DecisionsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := store.DecisionFilter{
		Action: q.Get("action"),
		Source: q.Get("source"),
		Limit:  50,
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, http.StatusBadRequest, "invalid offset")
			return
		}
		filter.Offset = n
	}

	decisions, err := h.store.ListDecisions(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if decisions == nil {
		decisions = []*store.DecisionRecord{}
	}
	writeJSON(w, http.StatusOK, decisions)
}

// Get returns one recorded decision.
// GET /api/v1/decisions/{id}
func (h *DecisionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	rec, ok := h.load(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (h *DecisionsHandler) load(w http.ResponseWriter, r *http.Request) (*store.DecisionRecord, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid id")
		return nil, false
	}

	rec, err := h.store.GetDecision(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	if rec == nil {
		writeError(w, http.StatusNotFound, "decision not found")
		return nil, false
	}
	return rec, true
}
