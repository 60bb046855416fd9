package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru"
)

// CachedStore serves GetDecision from an LRU cache in front of another Store.
// Decisions are immutable once created, so entries never need invalidating.
type CachedStore struct {
	Store
	cache *lru.Cache
}

func NewCachedStore(s Store, size int) (*CachedStore, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, fmt.Errorf("decision cache: %w", err)
	}
	return &CachedStore{Store: s, cache: c}, nil
}

func (s *CachedStore) CreateDecision(ctx context.Context, d *DecisionRecord) error {
	if err := s.Store.CreateDecision(ctx, d); err != nil {
		return err
	}
	cp := *d
	s.cache.Add(d.ID, &cp)
	return nil
}

func (s *CachedStore) GetDecision(ctx context.Context, id uuid.UUID) (*DecisionRecord, error) {
	if v, ok := s.cache.Get(id); ok {
		cp := *v.(*DecisionRecord)
		return &cp, nil
	}
	d, err := s.Store.GetDecision(ctx, id)
	if err != nil || d == nil {
		return d, err
	}
	cp := *d
	s.cache.Add(id, &cp)
	return d, nil
}

// Len reports the number of cached decisions.
func (s *CachedStore) Len() int {
	return s.cache.Len()
}
