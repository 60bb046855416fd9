package store

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecisionFilterDefaults(t *testing.T) {
	f := DecisionFilter{}
	if f.Limit != 0 {
		t.Errorf("expected 0 default limit, got %d", f.Limit)
	}
	if f.Action != "" {
		t.Error("expected empty action filter")
	}
}

func TestMemoryStoreCreateAndGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	d := &DecisionRecord{Source: "test", Health: 45, Enemies: 3, Action: "cautious", Utility: 0.5}
	require.NoError(t, s.CreateDecision(ctx, d))
	assert.NotEqual(t, uuid.Nil, d.ID)
	assert.False(t, d.CreatedAt.IsZero())

	got, err := s.GetDecision(ctx, d.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, d.Health, got.Health)
	assert.Equal(t, "cautious", got.Action)

	// Returned records are copies.
	got.Action = "fight"
	again, _ := s.GetDecision(ctx, d.ID)
	assert.Equal(t, "cautious", again.Action)

	missing, err := s.GetDecision(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryStoreListAndStats(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	actions := []string{"fight", "flee", "flee", "cautious"}
	for i, a := range actions {
		require.NoError(t, s.CreateDecision(ctx, &DecisionRecord{Action: a, Source: "sim", Utility: float64(i) / 4}))
		time.Sleep(time.Millisecond)
	}
	require.NoError(t, s.CreateDecision(ctx, &DecisionRecord{Action: "fight", Source: "api", Utility: 1}))

	all, err := s.ListDecisions(ctx, DecisionFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, "api", all[0].Source, "newest first")

	flee, _ := s.ListDecisions(ctx, DecisionFilter{Action: "flee"})
	assert.Len(t, flee, 2)

	sim, _ := s.ListDecisions(ctx, DecisionFilter{Source: "sim", Limit: 2})
	assert.Len(t, sim, 2)

	page, _ := s.ListDecisions(ctx, DecisionFilter{Offset: 4})
	assert.Len(t, page, 1)

	empty, _ := s.ListDecisions(ctx, DecisionFilter{Offset: 10})
	assert.Empty(t, empty)

	stats, err := s.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.ByAction["fight"])
	assert.Equal(t, 2, stats.ByAction["flee"])
	assert.Equal(t, 1, stats.ByAction["cautious"])
	assert.InDelta(t, (0+0.25+0.5+0.75+1.0)/5, stats.AvgUtility, 1e-9)
}

type countingStore struct {
	*MemoryStore
	gets int
}

func (c *countingStore) GetDecision(ctx context.Context, id uuid.UUID) (*DecisionRecord, error) {
	c.gets++
	return c.MemoryStore.GetDecision(ctx, id)
}

func TestCachedStore(t *testing.T) {
	backing := &countingStore{MemoryStore: NewMemoryStore()}
	s, err := NewCachedStore(backing, 2)
	require.NoError(t, err)
	ctx := context.Background()

	d := &DecisionRecord{Action: "flee"}
	require.NoError(t, s.CreateDecision(ctx, d))
	assert.Equal(t, 1, s.Len())

	got, err := s.GetDecision(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "flee", got.Action)
	assert.Equal(t, 0, backing.gets, "served from cache")

	// Evict d by adding two more.
	require.NoError(t, s.CreateDecision(ctx, &DecisionRecord{Action: "fight"}))
	require.NoError(t, s.CreateDecision(ctx, &DecisionRecord{Action: "cautious"}))
	assert.Equal(t, 2, s.Len())

	got, err = s.GetDecision(ctx, d.ID)
	require.NoError(t, err)
	assert.Equal(t, "flee", got.Action)
	assert.Equal(t, 1, backing.gets)

	missing, err := s.GetDecision(ctx, uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestCachedStoreInvalidSize(t *testing.T) {
	_, err := NewCachedStore(NewMemoryStore(), 0)
	assert.Error(t, err)
}
