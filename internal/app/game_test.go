package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/input"
	"go-space-arcade/internal/logger"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/physics"
)

const tick = 1.0 / 60

func newTestGame(force physics.Vec2, active bool) *Game {
	opts := Options{ScreenWidth: 1200, ScreenHeight: 900, Seed: 42, SkipEnvironment: true}
	return NewGame(opts, input.NewStatic(force, active), component.NewGameState("test"), logger.Nop())
}

func TestStartPublishesFirstLevel(t *testing.T) {
	g := newTestGame(physics.Vec2{}, false)
	before := g.Snapshot()
	require.NotNil(t, before)
	assert.Empty(t, before.Planets)

	g.Start()

	snap := g.Snapshot()
	assert.Len(t, snap.Planets, defs.PlanetCount(1))
	assert.Len(t, snap.Enemies, defs.EnemyCount(1))
	assert.Empty(t, snap.Stars)
	assert.Empty(t, g.World.BlackHoles)
	assert.Equal(t, "running", snap.Phase)
	assert.Equal(t, component.PhaseRunning, snap.PhaseValue())
	assert.Equal(t, "test", snap.Progress.SessionID)
}

func TestUpdateClampsDeltaTime(t *testing.T) {
	g := newTestGame(physics.Vec2{}, false)
	g.Update(5)
	assert.InDelta(t, config.MaxDeltaTime, g.World.GameTime, 1e-12)
	g.Update(-1)
	assert.InDelta(t, config.MaxDeltaTime, g.World.GameTime, 1e-12)
	assert.Equal(t, uint64(2), g.Tick())
}

func TestShipMovesUnderInput(t *testing.T) {
	g := newTestGame(physics.V(1, 0), true)
	start := g.World.Ship.Position
	for i := 0; i < 10; i++ {
		g.Update(tick)
	}
	snap := g.Snapshot()
	assert.Greater(t, snap.Ship.Position.X, start.X)
	assert.Positive(t, snap.Ship.EngineGlow)
	assert.Equal(t, uint64(10), snap.Tick)
	assert.InDelta(t, snap.Ship.Position.X-start.X, snap.Progress.Distance, 1e-9)
}

func TestRequestShieldAppliesNextTick(t *testing.T) {
	g := newTestGame(physics.Vec2{}, false)
	var activated int
	g.EventDispatcher.Subscribe(event.ShieldActivated, event.ListenerFunc(func(event.Event) { activated++ }))

	g.RequestShield()
	assert.False(t, g.World.Ship.ShieldActive, "request is deferred to the tick")

	g.Update(tick)
	assert.True(t, g.Snapshot().Ship.ShieldActive)
	assert.Equal(t, 1, activated)

	g.RequestShield()
	g.Update(tick)
	assert.Equal(t, 1, activated, "already active")
}

func TestGameOverHaltsSimulation(t *testing.T) {
	g := newTestGame(physics.Vec2{}, false)
	g.World.GameState.Lives = 1
	ship := g.World.Ship
	e := component.NewEnemy(g.World.NewEntity(), defs.EnemyScout, 1, ship.Position, physics.Vec2{})
	g.World.Enemies = append(g.World.Enemies, e)

	g.Update(tick)

	require.True(t, g.IsGameOver())
	snap := g.Snapshot()
	assert.Equal(t, "game_over", snap.Phase)
	assert.Zero(t, snap.Progress.Lives)

	tickBefore := g.Tick()
	g.Update(tick)
	assert.Equal(t, tickBefore, g.Tick())
	assert.Same(t, snap, g.Snapshot())
}

func TestLevelAdvancesWhenPlanetsGone(t *testing.T) {
	g := newTestGame(physics.Vec2{}, false)
	g.Start()
	g.World.Planets = g.World.Planets[:0]

	g.Update(tick)

	snap := g.Snapshot()
	assert.Equal(t, 2, snap.Progress.Level)
	assert.Len(t, snap.Planets, defs.PlanetCount(2))
	assert.Equal(t, "running", snap.Phase)
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(physics.Vec2{}, false)
	g.Start()
	snap := g.Snapshot()
	firstPlanet := snap.Planets[0].Position

	g.World.Planets[0].Position = physics.V(-9999, -9999)
	g.World.Ship.Health = 1

	assert.Equal(t, firstPlanet, snap.Planets[0].Position)
	assert.Equal(t, config.ShipMaxHealth, snap.Ship.Health)
}

func TestOptionsFromSettings(t *testing.T) {
	s := config.DefaultSettings()
	s.Seed = "abc"
	s.LevelTransitionDelay = 2.5
	s.ShieldRam = true
	opts := OptionsFromSettings(s)
	assert.Equal(t, float64(s.ScreenWidth), opts.ScreenWidth)
	assert.Equal(t, 2.5, opts.LevelTransitionDelay)
	assert.Equal(t, utils.SeedFromString("abc"), opts.Seed)
	assert.False(t, opts.SkipEnvironment)
	assert.True(t, opts.ShieldRam)
}

func TestAttackIsVisibleInSnapshot(t *testing.T) {
	g := newTestGame(physics.Vec2{}, false)
	g.Start()
	ship := g.World.Ship
	fighter := component.NewEnemy(g.World.NewEntity(), defs.EnemyFighter, 1, ship.Position.Add(physics.V(140, 0)), physics.Vec2{})
	fighter.AttackTimer = 2.1
	g.World.Enemies = []*component.Enemy{fighter}

	g.Update(tick)

	view := findEnemy(t, g.Snapshot(), fighter)
	assert.True(t, view.Attacking)
	assert.False(t, fighter.IsAttacking)
	assert.InDelta(t, config.ShipMaxHealth-defs.Enemy(defs.EnemyFighter).AttackDamage, g.Snapshot().Ship.Health, 1e-9)

	for i := 0; i < int(config.EnemyAttackFlash/tick)+2; i++ {
		g.Update(tick)
	}
	assert.False(t, findEnemy(t, g.Snapshot(), fighter).Attacking)
}

func findEnemy(t *testing.T, snap *Snapshot, e *component.Enemy) EnemyView {
	t.Helper()
	for _, v := range snap.Enemies {
		if v.ID == uint64(e.ID) {
			return v
		}
	}
	require.FailNow(t, "enemy missing from snapshot", "id %d", e.ID)
	return EnemyView{}
}
