package store

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Degrees is a stored copy of one variable's membership degrees.
type Degrees struct {
	Low    float64 `json:"low"`
	Medium float64 `json:"medium"`
	High   float64 `json:"high"`
}

type DecisionRecord struct {
	ID     uuid.UUID `json:"decision_id"`
	Source string    `json:"source"`

	// Inputs
	Health  float64 `json:"health"`
	Enemies float64 `json:"enemies"`

	// Fuzzified
	HealthDegrees  Degrees `json:"health_degrees"`
	EnemiesDegrees Degrees `json:"enemies_degrees"`

	// Defuzzified
	HealthCrisp  float64 `json:"health_crisp"`
	EnemiesCrisp float64 `json:"enemies_crisp"`
	Utility      float64 `json:"utility"`

	Action    string    `json:"action"`
	CreatedAt time.Time `json:"created_at"`
}

type DecisionFilter struct {
	Action string
	Source string
	Limit  int
	Offset int
}

type DecisionStats struct {
	Total      int            `json:"total"`
	ByAction   map[string]int `json:"by_action"`
	AvgUtility float64        `json:"avg_utility"`
}

type Store interface {
	CreateDecision(ctx context.Context, d *DecisionRecord) error
	// GetDecision returns nil, nil when no decision has the given ID.
	GetDecision(ctx context.Context, id uuid.UUID) (*DecisionRecord, error)
	ListDecisions(ctx context.Context, filter DecisionFilter) ([]*DecisionRecord, error)
	GetStats(ctx context.Context) (*DecisionStats, error)
	Close() error
}
