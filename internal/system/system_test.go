package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/logger"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/physics"
)

const tick = 1.0 / 60

var allEvents = []event.EventType{
	event.PlanetHit, event.PlanetDestroyed, event.EnemyDestroyed, event.EnemyConsumed,
	event.EnemyAttack, event.ShipDestroyed, event.ShipRespawned, event.ShieldActivated,
	event.PowerUpCollected, event.LevelStarted, event.LevelCompleted, event.GameOver,
}

type eventLog struct {
	events []event.Event
}

func (l *eventLog) OnEvent(e event.Event) { l.events = append(l.events, e) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, e := range l.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

func (l *eventLog) types() []event.EventType {
	out := make([]event.EventType, len(l.events))
	for i, e := range l.events {
		out[i] = e.Type
	}
	return out
}

// harness собирает системы так же, как app.Game, но без фона и без ввода.
type harness struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	camera     *component.Camera
	particles  *ParticleSystem
	powerUps   *PowerUpSystem
	collision  *CollisionSystem
	level      *LevelSystem
	ai         *AISystem
	log        *eventLog
}

func newHarness(transitionDelay float64) *harness {
	gs := component.NewGameState("test")
	world := entity.NewWorld(physics.V(600, 450), gs)
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(7)
	camera := component.NewCamera(1200, 900)
	particles := NewParticleSystem(rng, 4000, logger.Nop())
	powerUps := NewPowerUpSystem(world, dispatcher, rng)

	h := &harness{
		world:      world,
		dispatcher: dispatcher,
		camera:     camera,
		particles:  particles,
		powerUps:   powerUps,
		collision:  NewCollisionSystem(world, dispatcher, particles, powerUps, logger.Nop()),
		level:      NewLevelSystem(world, dispatcher, rng, camera, transitionDelay, logger.Nop()),
		ai:         NewAISystem(world, rng),
		log:        &eventLog{},
	}
	NewProgressionSystem(world, dispatcher, logger.Nop())
	dispatcher.SubscribeAll(h.log, allEvents...)
	return h
}

func (h *harness) addEnemy(t defs.EnemyType, at physics.Vec2) *component.Enemy {
	e := component.NewEnemy(h.world.NewEntity(), t, h.world.GameState.CurrentLevel, at, physics.Vec2{})
	h.world.Enemies = append(h.world.Enemies, e)
	return e
}

func (h *harness) addPlanet(t defs.PlanetType, at physics.Vec2) *component.Planet {
	p := component.NewPlanet(h.world.NewEntity(), t, h.world.GameState.CurrentLevel, at)
	h.world.Planets = append(h.world.Planets, p)
	return p
}

func (h *harness) addPowerUp(t defs.PowerUpType, at physics.Vec2) *component.PowerUp {
	p := &component.PowerUp{ID: h.world.NewEntity(), Type: t, Position: at}
	h.world.PowerUps = append(h.world.PowerUps, p)
	return p
}

func TestProgressionAppliesEvents(t *testing.T) {
	h := newHarness(0)
	gs := h.world.GameState

	h.dispatcher.Dispatch(event.Event{Type: event.PlanetDestroyed, Data: event.PlanetEvent{Type: defs.PlanetEarth}})
	assert.Equal(t, 1, gs.DestroyedPlanets)
	assert.Equal(t, 1, gs.CurrentCombo)

	h.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: event.EnemyEvent{Type: defs.EnemyScout}})
	assert.Equal(t, 1, gs.DestroyedEnemies)

	// Данные чужого типа игнорируются.
	h.dispatcher.Dispatch(event.Event{Type: event.PlanetDestroyed, Data: "bogus"})
	assert.Equal(t, 1, gs.DestroyedPlanets)

	h.dispatcher.Dispatch(event.Event{Type: event.LevelCompleted})
	assert.Equal(t, 2, gs.CurrentLevel)
}
