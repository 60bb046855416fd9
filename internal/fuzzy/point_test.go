package fuzzy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombine(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, WeightedPoint{}, Combine())
	})

	t.Run("all zero weights", func(t *testing.T) {
		got := Combine(WeightedPoint{Value: 3, Weight: 0}, WeightedPoint{Value: -7, Weight: 0})
		assert.Equal(t, WeightedPoint{}, got)
	})

	t.Run("weighted average", func(t *testing.T) {
		got := Combine(WeightedPoint{Value: 10, Weight: 1}, WeightedPoint{Value: 20, Weight: 3})
		assert.InDelta(t, 17.5, got.Value, 1e-12)
		assert.InDelta(t, 4.0, got.Weight, 1e-12)
	})

	t.Run("zero weight point is ignored", func(t *testing.T) {
		got := Combine(WeightedPoint{Value: 4, Weight: 2}, WeightedPoint{})
		assert.Equal(t, WeightedPoint{Value: 4, Weight: 2}, got)
	})
}

func TestCombineOrderIndependent(t *testing.T) {
	points := []WeightedPoint{
		{Value: 1.5, Weight: 0.2},
		{Value: -3, Weight: 1.1},
		{Value: 42, Weight: 0.05},
		{Value: 7.25, Weight: 3},
	}
	reversed := make([]WeightedPoint, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	snapshot := append([]WeightedPoint(nil), points...)

	a := Combine(points...)
	b := Combine(reversed...)
	c := Combine(points[2], points[0], points[3], points[1])

	assert.InDelta(t, a.Value, b.Value, 1e-9)
	assert.InDelta(t, a.Value, c.Value, 1e-9)
	assert.InDelta(t, a.Weight, b.Weight, 1e-9)
	assert.Equal(t, snapshot, points, "input must not be mutated")
}
