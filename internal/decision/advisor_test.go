package decision

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MikeSquared-Agency/Fuzzy/internal/scoring"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestAdvisor() *Advisor {
	return NewAdvisor(DefaultProfile(), scoring.DefaultUtilityWeights(), discardLogger())
}

func TestDecideActions(t *testing.T) {
	tests := []struct {
		name    string
		reading Reading
		want    Action
	}{
		{"healthy and alone", Reading{Health: 90, Enemies: 1}, ActionFight},
		{"badly hurt", Reading{Health: 10, Enemies: 1}, ActionFlee},
		{"surrounded", Reading{Health: 90, Enemies: 9}, ActionFlee},
		{"middling", Reading{Health: 45, Enemies: 3}, ActionCautious},
		{"tied health, medium enemies", Reading{Health: 60, Enemies: 5}, ActionCautious},
	}

	a := newTestAdvisor()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := a.Decide(tt.reading)
			assert.Equal(t, tt.want, d.Action)
			assert.Equal(t, tt.reading, d.Reading)
		})
	}
}

func TestDecideReferenceReading(t *testing.T) {
	a := newTestAdvisor()
	d := a.Decide(Reading{Health: 45, Enemies: 3})

	assert.InDelta(t, 0.25, d.Health.Low, 1e-9)
	assert.InDelta(t, 0.75, d.Health.Medium, 1e-9)
	assert.Equal(t, 0.0, d.Health.High)

	assert.InDelta(t, 0.5, d.Enemies.Low, 1e-9)
	assert.InDelta(t, 1.0/3.0, d.Enemies.Medium, 1e-9)
	assert.Equal(t, 0.0, d.Enemies.High)

	assert.InDelta(t, 3905.0/98.0, d.HealthCrisp, 1e-9)
	assert.InDelta(t, 275.0/82.0, d.EnemiesCrisp, 1e-9)

	wantUtility := 0.6*(3905.0/98.0)/100 + 0.4*(1-(275.0/82.0)/10)
	assert.InDelta(t, wantUtility, d.Utility.Utility, 1e-9)
	require.Len(t, d.Utility.Factors, 2)
	assert.Equal(t, "health", d.Utility.Factors[0].Name)
	assert.Equal(t, "safety", d.Utility.Factors[1].Name)
}

func TestEvaluateByName(t *testing.T) {
	a := newTestAdvisor()

	e, crisp, err := a.Evaluate(VariableHealth, 50)
	require.NoError(t, err)
	assert.Equal(t, 1.0, e.Medium)
	assert.InDelta(t, 50.0, crisp, 1e-9)

	e, _, err = a.Evaluate(VariableEnemies, 9)
	require.NoError(t, err)
	assert.True(t, e.IsHigh())

	_, _, err = a.Evaluate("stamina", 1)
	assert.ErrorIs(t, err, ErrUnknownVariable)
}

func TestDecideConcurrent(t *testing.T) {
	a := newTestAdvisor()
	want := a.Decide(Reading{Health: 45, Enemies: 3})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got := a.Decide(Reading{Health: 45, Enemies: 3})
				if got.HealthCrisp != want.HealthCrisp || got.Action != want.Action {
					t.Errorf("concurrent decision diverged: %+v", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestDefaultProfileRanges(t *testing.T) {
	p := DefaultProfile()

	lo, hi := p.Health.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 100.0, hi)

	lo, hi = p.Enemies.Range()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 10.0, hi)
}
