package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore keeps decisions in process. It is used when no database is configured.
type MemoryStore struct {
	mu        sync.RWMutex
	decisions map[uuid.UUID]*DecisionRecord
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{decisions: make(map[uuid.UUID]*DecisionRecord)}
}

func (s *MemoryStore) CreateDecision(_ context.Context, d *DecisionRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d.ID = uuid.New()
	d.CreatedAt = time.Now()
	cp := *d
	s.decisions[d.ID] = &cp
	return nil
}

func (s *MemoryStore) GetDecision(_ context.Context, id uuid.UUID) (*DecisionRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.decisions[id]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (s *MemoryStore) ListDecisions(_ context.Context, filter DecisionFilter) ([]*DecisionRecord, error) {
	s.mu.RLock()
	var out []*DecisionRecord
	for _, d := range s.decisions {
		if filter.Action != "" && d.Action != filter.Action {
			continue
		}
		if filter.Source != "" && d.Source != filter.Source {
			continue
		}
		cp := *d
		out = append(out, &cp)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})

	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, nil
}

func (s *MemoryStore) GetStats(_ context.Context) (*DecisionStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := &DecisionStats{ByAction: make(map[string]int)}
	var utilitySum float64
	for _, d := range s.decisions {
		stats.ByAction[d.Action]++
		stats.Total++
		utilitySum += d.Utility
	}
	if stats.Total > 0 {
		stats.AvgUtility = utilitySum / float64(stats.Total)
	}
	return stats, nil
}

func (s *MemoryStore) Close() error { return nil }
