// internal/app/game.go
package app

import (
	"sync/atomic"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/interfaces"
	"go-space-arcade/internal/logger"
	"go-space-arcade/internal/system"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/physics"
)

// Options: параметры сборки симуляции.
type Options struct {
	ScreenWidth          float64
	ScreenHeight         float64
	Seed                 int64
	MaxParticles         int
	LevelTransitionDelay float64
	ShieldRam            bool
	// SkipEnvironment отключает фон (звёзды, туманности, чёрные дыры). Нужно тестам.
	SkipEnvironment bool
}

// OptionsFromSettings переносит настройки запуска в Options.
func OptionsFromSettings(s config.Settings) Options {
	return Options{
		ScreenWidth:          float64(s.ScreenWidth),
		ScreenHeight:         float64(s.ScreenHeight),
		Seed:                 utils.SeedFromString(s.Seed),
		MaxParticles:         s.MaxParticles,
		LevelTransitionDelay: s.LevelTransitionDelay,
		ShieldRam:            s.ShieldRam,
	}
}

// Game holds the world and all systems and runs one tick at a time.
type Game struct {
	World             *entity.World
	Camera            *component.Camera
	EventDispatcher   *event.Dispatcher
	Rng               *utils.PRNGService
	CameraSystem      *system.CameraSystem
	ShipSystem        *system.ShipSystem
	AISystem          *system.AISystem
	MovementSystem    *system.MovementSystem
	CollisionSystem   *system.CollisionSystem
	ParticleSystem    *system.ParticleSystem
	EnvironmentSystem *system.EnvironmentSystem
	PowerUpSystem     *system.PowerUpSystem
	LevelSystem       *system.LevelSystem
	ProgressionSystem *system.ProgressionSystem

	log           logger.Log
	opts          Options
	tick          uint64
	shieldRequest atomic.Bool
	snapshot      atomic.Pointer[Snapshot]
}

// NewGame собирает мир и системы. Уровень не заполнен до вызова Start.
func NewGame(opts Options, input interfaces.ForceProvider, gs *component.GameState, log logger.Log) *Game {
	if opts.ScreenWidth <= 0 || opts.ScreenHeight <= 0 {
		opts.ScreenWidth, opts.ScreenHeight = config.ScreenWidth, config.ScreenHeight
	}
	if opts.MaxParticles <= 0 {
		opts.MaxParticles = config.MaxParticles
	}

	spawn := physics.V(opts.ScreenWidth/2, opts.ScreenHeight/2)
	world := entity.NewWorld(spawn, gs)
	camera := component.NewCamera(opts.ScreenWidth, opts.ScreenHeight)
	dispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)

	g := &Game{
		World:           world,
		Camera:          camera,
		EventDispatcher: dispatcher,
		Rng:             rng,
		log:             log,
		opts:            opts,
	}
	g.ParticleSystem = system.NewParticleSystem(rng, opts.MaxParticles, log)
	g.PowerUpSystem = system.NewPowerUpSystem(world, dispatcher, rng)
	g.CameraSystem = system.NewCameraSystem(camera, rng)
	g.ShipSystem = system.NewShipSystem(world, input, g.PowerUpSystem)
	g.AISystem = system.NewAISystem(world, rng)
	g.MovementSystem = system.NewMovementSystem(world)
	g.CollisionSystem = system.NewCollisionSystem(world, dispatcher, g.ParticleSystem, g.PowerUpSystem, log)
	g.CollisionSystem.SetShieldRam(opts.ShieldRam)
	g.EnvironmentSystem = system.NewEnvironmentSystem(world, rng, physics.V(opts.ScreenWidth, opts.ScreenHeight))
	g.LevelSystem = system.NewLevelSystem(world, dispatcher, rng, camera, opts.LevelTransitionDelay, log)
	g.ProgressionSystem = system.NewProgressionSystem(world, dispatcher, log)

	g.snapshot.Store(g.buildSnapshot())
	return g
}

// Start заполняет фон и первый уровень.
func (g *Game) Start() {
	if !g.opts.SkipEnvironment {
		g.EnvironmentSystem.Populate()
	}
	g.LevelSystem.StartLevel()
	g.publish()
}

// Update выполняет один тик симуляции. После конца игры ничего не делает.
func (g *Game) Update(deltaTime float64) {
	if g.World.Phase == component.PhaseGameOver {
		return
	}
	deltaTime = clampDelta(deltaTime)
	g.World.GameTime += deltaTime
	g.World.GameState.PlayTime += deltaTime
	g.tick++

	if g.shieldRequest.Swap(false) {
		g.ActivateShield()
	}

	ship := g.World.Ship
	g.CameraSystem.Update(ship.Position, ship.Velocity, deltaTime)
	g.ShipSystem.Update(deltaTime)
	g.AISystem.Update(deltaTime)
	g.MovementSystem.Update(deltaTime)
	g.CollisionSystem.Update()
	if g.World.Phase == component.PhaseGameOver {
		g.publish()
		return
	}
	g.ParticleSystem.Update(deltaTime)
	g.EnvironmentSystem.Update(deltaTime)
	g.PowerUpSystem.Update(deltaTime)
	g.LevelSystem.Update(deltaTime)

	g.publish()
}

// ActivateShield включает щит корабля. Вызывать только из потока симуляции.
func (g *Game) ActivateShield() bool {
	if !g.World.Ship.ActivateShield() {
		return false
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.ShieldActivated})
	return true
}

// RequestShield можно вызывать из любой горутины: щит включится в начале следующего тика.
func (g *Game) RequestShield() {
	g.shieldRequest.Store(true)
}

// Snapshot: последний опубликованный снимок. Безопасно из любой горутины.
func (g *Game) Snapshot() *Snapshot {
	return g.snapshot.Load()
}

func (g *Game) Phase() component.Phase { return g.World.Phase }

func (g *Game) IsGameOver() bool { return g.World.Phase == component.PhaseGameOver }

func (g *Game) Tick() uint64 { return g.tick }

func (g *Game) publish() {
	g.snapshot.Store(g.buildSnapshot())
}

func clampDelta(deltaTime float64) float64 {
	if deltaTime < 0 {
		return 0
	}
	if deltaTime > config.MaxDeltaTime {
		return config.MaxDeltaTime
	}
	return deltaTime
}
