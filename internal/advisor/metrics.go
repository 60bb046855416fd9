package advisor

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	decisionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fuzzy_decisions_total",
		Help: "Decisions made, by action and source.",
	}, []string{"action", "source"})

	evaluationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fuzzy_evaluations_total",
		Help: "Single-variable evaluations, by variable.",
	}, []string{"variable"})

	crispValue = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "fuzzy_crisp_value",
		Help:    "Defuzzified values, by variable.",
		Buckets: prometheus.LinearBuckets(0, 10, 11),
	}, []string{"variable"})

	decisionUtility = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fuzzy_decision_utility",
		Help:    "Utility score of each decision.",
		Buckets: prometheus.LinearBuckets(0, 0.1, 11),
	})
)
