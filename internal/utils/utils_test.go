package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-space-arcade/internal/defs"
)

func TestSeedFromStringIsStable(t *testing.T) {
	assert.Zero(t, SeedFromString(""))
	a := SeedFromString("andromeda")
	assert.Equal(t, a, SeedFromString("andromeda"))
	assert.NotEqual(t, a, SeedFromString("andromedb"))
	assert.Positive(t, a)
}

func TestPRNGDeterministic(t *testing.T) {
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float64(), b.Float64())
	}
	for i := 0; i < 100; i++ {
		v := a.Range(3, 15)
		assert.GreaterOrEqual(t, v, 3.0)
		assert.Less(t, v, 15.0)
		n := a.IntRange(40, 90)
		assert.GreaterOrEqual(t, n, 40)
		assert.Less(t, n, 90)
	}
	assert.Equal(t, 7, a.IntRange(7, 7))
}

func TestChooseWeighted(t *testing.T) {
	p := NewPRNGService(1)
	only := []defs.EnemySpawnWeight{{Type: defs.EnemyBomber, Weight: 5}, {Type: defs.EnemyElite, Weight: 0}}
	for i := 0; i < 20; i++ {
		assert.Equal(t, defs.EnemyBomber, p.ChooseWeighted(only))
	}
	assert.Equal(t, defs.EnemyScout, p.ChooseWeighted(nil))

	seen := map[defs.EnemyType]bool{}
	for i := 0; i < 400; i++ {
		seen[p.ChooseWeighted(defs.EnemySpawnTable)] = true
	}
	assert.Len(t, seen, int(defs.EnemyTypeCount))
}

func TestAngleHelpers(t *testing.T) {
	assert.InDelta(t, 350.0, NormalizeDegrees(-10), 1e-9)
	assert.InDelta(t, 10.0, NormalizeDegrees(370), 1e-9)
	assert.InDelta(t, 0.5, Approach(0.4, 1, 0.1), 1e-9)
	assert.InDelta(t, 1.0, Approach(0.95, 1, 0.1), 1e-9)
	assert.InDelta(t, 0.2, Approach(0.3, 0.2, 0.5), 1e-9)
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
}
