package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/defs"
	"go-space-arcade/pkg/physics"
)

func newTestWorld() *World {
	return NewWorld(physics.V(600, 450), component.NewGameState("test"))
}

func TestNewEntityIDsAreUnique(t *testing.T) {
	w := newTestWorld()
	a, b := w.NewEntity(), w.NewEntity()
	assert.NotZero(t, a)
	assert.NotEqual(t, a, b)
}

func TestReverseRemovalVisitsEveryEnemyOnce(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 6; i++ {
		w.Enemies = append(w.Enemies, component.NewEnemy(w.NewEntity(), defs.EnemyScout, 1, physics.V(float64(i), 0), physics.Vec2{}))
	}

	visited := map[uint64]int{}
	for i := len(w.Enemies) - 1; i >= 0; i-- {
		e := w.Enemies[i]
		visited[uint64(e.ID)]++
		if i%2 == 0 {
			w.RemoveEnemyAt(i)
		}
	}
	assert.Len(t, visited, 6)
	for _, n := range visited {
		assert.Equal(t, 1, n)
	}
	require.Len(t, w.Enemies, 3)
	assert.Equal(t, 1.0, w.Enemies[0].Position.X)
	assert.Equal(t, 5.0, w.Enemies[2].Position.X)
}

func TestRemoveEnemiesAndClearLevel(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 5; i++ {
		w.Enemies = append(w.Enemies, component.NewEnemy(w.NewEntity(), defs.EnemyFighter, 1, physics.V(float64(i*100), 0), physics.Vec2{}))
	}
	w.Planets = append(w.Planets, component.NewPlanet(w.NewEntity(), defs.PlanetIce, 1, physics.Vec2{}))
	w.BlackHoles = append(w.BlackHoles, &component.BlackHole{Size: 50})

	n := w.RemoveEnemies(func(e *component.Enemy) bool { return e.Position.X >= 300 })
	assert.Equal(t, 2, n)
	assert.Len(t, w.Enemies, 3)
	assert.NotNil(t, w.EnemyByID(w.Enemies[0].ID))

	w.ClearLevel()
	assert.Empty(t, w.Enemies)
	assert.Empty(t, w.Planets)
	assert.Len(t, w.BlackHoles, 1)
}
