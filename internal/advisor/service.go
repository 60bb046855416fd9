package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/MikeSquared-Agency/Fuzzy/internal/config"
	"github.com/MikeSquared-Agency/Fuzzy/internal/decision"
	"github.com/MikeSquared-Agency/Fuzzy/internal/fuzzy"
	"github.com/MikeSquared-Agency/Fuzzy/internal/hermes"
	"github.com/MikeSquared-Agency/Fuzzy/internal/store"
)

// Service records decisions, announces them on hermes and publishes periodic stats.
type Service struct {
	advisor *decision.Advisor
	store   store.Store
	hermes  hermes.Client
	cfg     *config.Config
	logger  *slog.Logger

	stopOnce sync.Once
	stopCh   chan struct{}
	wg       sync.WaitGroup
}

// New creates a Service. h may be nil, in which case no events are published.
func New(a *decision.Advisor, s store.Store, h hermes.Client, cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		advisor: a,
		store:   s,
		hermes:  h,
		cfg:     cfg,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}
}

func (s *Service) Start(ctx context.Context) {
	if s.hermes == nil || s.cfg.StatsInterval() <= 0 {
		return
	}
	s.wg.Add(1)
	go s.statsLoop(ctx)
}

func (s *Service) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
}

// Evaluate fuzzifies x in the named variable.
func (s *Service) Evaluate(name string, x float64) (fuzzy.Evaluation, float64, error) {
	e, crisp, err := s.advisor.Evaluate(name, x)
	if err != nil {
		return e, crisp, err
	}
	evaluationsTotal.WithLabelValues(name).Inc()
	crispValue.WithLabelValues(name).Observe(crisp)
	return e, crisp, nil
}

// Decide makes a decision for r, stores it and announces it.
func (s *Service) Decide(ctx context.Context, r decision.Reading, source string) (*store.DecisionRecord, decision.Decision, error) {
	d := s.advisor.Decide(r)

	rec := &store.DecisionRecord{
		Source:         source,
		Health:         r.Health,
		Enemies:        r.Enemies,
		HealthDegrees:  degrees(d.Health),
		EnemiesDegrees: degrees(d.Enemies),
		HealthCrisp:    d.HealthCrisp,
		EnemiesCrisp:   d.EnemiesCrisp,
		Utility:        d.Utility.Utility,
		Action:         string(d.Action),
	}
	if err := s.store.CreateDecision(ctx, rec); err != nil {
		return nil, d, fmt.Errorf("store decision: %w", err)
	}

	decisionsTotal.WithLabelValues(rec.Action, source).Inc()
	crispValue.WithLabelValues(decision.VariableHealth).Observe(d.HealthCrisp)
	crispValue.WithLabelValues(decision.VariableEnemies).Observe(d.EnemiesCrisp)
	decisionUtility.Observe(rec.Utility)

	s.logger.Info("decision made",
		"decision_id", rec.ID,
		"source", source,
		"action", rec.Action,
		"health", r.Health,
		"enemies", r.Enemies,
		"utility", rec.Utility,
	)

	if s.hermes != nil {
		evt := hermes.DecisionMadeEvent{
			DecisionID:   rec.ID.String(),
			Source:       source,
			Action:       rec.Action,
			Health:       rec.Health,
			Enemies:      rec.Enemies,
			HealthCrisp:  rec.HealthCrisp,
			EnemiesCrisp: rec.EnemiesCrisp,
			Utility:      rec.Utility,
		}
		if err := s.hermes.Publish(hermes.SubjectDecisionMade(evt.DecisionID), evt); err != nil {
			s.logger.Warn("failed to publish decision", "decision_id", rec.ID, "error", err)
		}
	}

	return rec, d, nil
}

// SetupSubscriptions accepts decision requests over hermes. Requests sent with
// a reply subject get the stored decision back.
func (s *Service) SetupSubscriptions() {
	if s.hermes == nil {
		return
	}

	err := s.hermes.Subscribe(hermes.SubjectDecisionRequest, func(_ string, data []byte) interface{} {
		var req hermes.DecisionRequestEvent
		if err := json.Unmarshal(data, &req); err != nil {
			s.logger.Warn("invalid decision request event", "error", err)
			return map[string]string{"error": "invalid request"}
		}
		source := req.Source
		if source == "" {
			source = "hermes"
		}
		rec, _, err := s.Decide(context.Background(), decision.Reading{Health: req.Health, Enemies: req.Enemies}, source)
		if err != nil {
			s.logger.Error("failed to decide from hermes request", "error", err)
			return map[string]string{"error": err.Error()}
		}
		return rec
	})
	if err != nil {
		s.logger.Warn("failed to subscribe to decision requests", "error", err)
	}
}

func (s *Service) statsLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.StatsInterval())
	defer ticker.Stop()

	for {
		select {
		case <-s.stopCh:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.publishStats(ctx)
		}
	}
}

func (s *Service) publishStats(ctx context.Context) {
	stats, err := s.store.GetStats(ctx)
	if err != nil {
		s.logger.Error("failed to get stats", "error", err)
		return
	}
	evt := hermes.StatsEvent{
		Total:      stats.Total,
		ByAction:   stats.ByAction,
		AvgUtility: stats.AvgUtility,
		Timestamp:  time.Now().UTC(),
	}
	if err := s.hermes.Publish(hermes.SubjectAdvisorStats, evt); err != nil {
		s.logger.Warn("failed to publish stats", "error", err)
	}
}

func degrees(e fuzzy.Evaluation) store.Degrees {
	return store.Degrees{Low: e.Low, Medium: e.Medium, High: e.High}
}
