package hermes

import "time"

type DecisionRequestEvent struct {
	Health  float64 `json:"health"`
	Enemies float64 `json:"enemies"`
	Source  string  `json:"source,omitempty"`
}

type DecisionMadeEvent struct {
	DecisionID   string  `json:"decision_id"`
	Source       string  `json:"source"`
	Action       string  `json:"action"`
	Health       float64 `json:"health"`
	Enemies      float64 `json:"enemies"`
	HealthCrisp  float64 `json:"health_crisp"`
	EnemiesCrisp float64 `json:"enemies_crisp"`
	Utility      float64 `json:"utility"`
}

type StatsEvent struct {
	Total      int            `json:"total"`
	ByAction   map[string]int `json:"by_action"`
	AvgUtility float64        `json:"avg_utility"`
	Timestamp  time.Time      `json:"timestamp"`
}
