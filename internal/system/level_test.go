package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/event"
	"go-space-arcade/pkg/physics"
)

func TestStartLevelPopulates(t *testing.T) {
	h := newHarness(0)
	h.level.StartLevel()

	assert.Len(t, h.world.Planets, defs.PlanetCount(1))
	assert.Len(t, h.world.Enemies, defs.EnemyCount(1))
	assert.Equal(t, component.PhaseRunning, h.world.Phase)
	assert.Equal(t, []event.EventType{event.LevelStarted}, h.log.types())
	for _, p := range h.world.Planets {
		assert.Equal(t, defs.PlanetHealth(1), p.Health)
	}
}

func TestRemoveOffscreenDropsExactlyOutsiders(t *testing.T) {
	h := newHarness(0)
	// Камера в (600, 450), экран 1200x900: видимо [0,1200]x[0,900], запас 200.
	h.addEnemy(defs.EnemyScout, physics.V(-500, 450))
	h.addEnemy(defs.EnemyScout, physics.V(2000, 450))
	h.addEnemy(defs.EnemyBomber, physics.V(600, 1500))
	inside := h.addEnemy(defs.EnemyFighter, physics.V(600, 450))
	margin := h.addEnemy(defs.EnemyElite, physics.V(-150, -150))

	removed := h.level.RemoveOffscreen()

	assert.Equal(t, 3, removed)
	assert.ElementsMatch(t, []*component.Enemy{inside, margin}, h.world.Enemies)
}

func TestRemoveOffscreenFollowsCamera(t *testing.T) {
	h := newHarness(0)
	h.camera.Position = physics.V(5000, 5000)
	h.addEnemy(defs.EnemyScout, physics.V(600, 450))
	h.addEnemy(defs.EnemyScout, physics.V(5100, 4900))

	assert.Equal(t, 1, h.level.RemoveOffscreen())
	require.Len(t, h.world.Enemies, 1)
	assert.Equal(t, physics.V(5100, 4900), h.world.Enemies[0].Position)
}

func TestSpawnEnemyJustOutsideViewportHeadingIn(t *testing.T) {
	h := newHarness(0)
	vp := h.camera.Viewport()
	outer := vp.Expand(config.OffscreenMargin)
	center := h.camera.Position

	for i := 0; i < 200; i++ {
		e := h.level.SpawnEnemy(defs.EnemyScout)
		assert.False(t, vp.Contains(e.Position), "spawned inside viewport at %v", e.Position)
		assert.True(t, outer.Contains(e.Position), "spawned beyond margin at %v", e.Position)
		assert.Positive(t, e.Velocity.Dot(center.Sub(e.Position)), "not heading inward")
	}
	assert.Zero(t, h.level.RemoveOffscreen())
}

func TestLevelCompletesImmediatelyWithoutDelay(t *testing.T) {
	h := newHarness(0)
	h.level.StartLevel()
	h.world.Planets = h.world.Planets[:0]
	h.log.events = nil

	h.level.Update(tick)

	gs := h.world.GameState
	assert.Equal(t, 2, gs.CurrentLevel)
	assert.Equal(t, []event.EventType{event.LevelCompleted, event.LevelStarted}, h.log.types())
	assert.Equal(t, component.PhaseRunning, h.world.Phase)
	assert.Len(t, h.world.Planets, defs.PlanetCount(2))
	assert.Len(t, h.world.Enemies, defs.EnemyCount(2))
}

func TestLevelTransitionWaitsForDelay(t *testing.T) {
	h := newHarness(1.0)
	h.level.StartLevel()
	h.world.Planets = h.world.Planets[:0]

	h.level.Update(tick)
	assert.Equal(t, component.PhaseLevelTransition, h.world.Phase)
	assert.Empty(t, h.world.Enemies)

	h.level.Update(0.5)
	assert.Equal(t, component.PhaseLevelTransition, h.world.Phase)

	h.level.Update(0.6)
	assert.Equal(t, component.PhaseRunning, h.world.Phase)
	assert.Len(t, h.world.Planets, defs.PlanetCount(2))
	assert.Equal(t, 1, h.log.count(event.LevelCompleted))
	assert.Equal(t, 2, h.log.count(event.LevelStarted))
}

func TestMaintainEnemiesNeverExceedsTarget(t *testing.T) {
	h := newHarness(0)
	h.level.StartLevel()
	h.world.Enemies = h.world.Enemies[:0]
	target := defs.EnemyCount(1)

	for i := 0; i < 2000; i++ {
		h.level.Update(tick)
		require.LessOrEqual(t, len(h.world.Enemies), target)
	}
	assert.Len(t, h.world.Enemies, target)
}

func TestGameOverPhaseFreezesLevel(t *testing.T) {
	h := newHarness(0)
	h.world.Phase = component.PhaseGameOver

	h.level.Update(tick)

	assert.Empty(t, h.log.events)
	assert.Equal(t, 1, h.world.GameState.CurrentLevel)
}
