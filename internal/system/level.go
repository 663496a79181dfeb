// internal/system/level.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/logger"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/physics"
)

// LevelSystem заполняет уровень, следит за его окончанием и поддерживает численность врагов.
type LevelSystem struct {
	world           *entity.World
	dispatcher      *event.Dispatcher
	rng             *utils.PRNGService
	camera          *component.Camera
	log             logger.Log
	transitionDelay float64
	transitionTimer float64
}

func NewLevelSystem(world *entity.World, dispatcher *event.Dispatcher, rng *utils.PRNGService, camera *component.Camera, transitionDelay float64, log logger.Log) *LevelSystem {
	return &LevelSystem{
		world:           world,
		dispatcher:      dispatcher,
		rng:             rng,
		camera:          camera,
		log:             log,
		transitionDelay: transitionDelay,
	}
}

// StartLevel заново создаёт планеты и врагов для текущего уровня.
func (s *LevelSystem) StartLevel() {
	s.world.ClearLevel()
	level := s.world.GameState.CurrentLevel
	screen := s.camera.Screen

	for i := 0; i < defs.PlanetCount(level); i++ {
		pos := physics.V(
			s.rng.Range(-screen.X/2, screen.X*1.5),
			s.rng.Range(-screen.Y/2, screen.Y*1.5),
		)
		t := defs.PlanetType(s.rng.Intn(int(defs.PlanetTypeCount)))
		p := component.NewPlanet(s.world.NewEntity(), t, level, pos)
		p.Rotation = s.rng.Float64() * 360
		p.RotationSpeed = (s.rng.Float64() - 0.5) * 0.5
		s.world.Planets = append(s.world.Planets, p)
	}
	for i := 0; i < defs.EnemyCount(level); i++ {
		s.SpawnEnemy(s.rng.ChooseWeighted(defs.EnemySpawnTable))
	}

	s.world.Phase = component.PhaseRunning
	s.dispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: event.LevelEvent{Level: level}})
	s.log.Info("level started",
		logger.Int("level", level),
		logger.Int("planets", len(s.world.Planets)),
		logger.Int("enemies", len(s.world.Enemies)),
	)
}

// Update ведёт фазы Running и LevelTransition.
func (s *LevelSystem) Update(deltaTime float64) {
	switch s.world.Phase {
	case component.PhaseRunning:
		if len(s.world.Planets) == 0 {
			s.completeLevel()
			return
		}
		s.maintainEnemies()
	case component.PhaseLevelTransition:
		s.transitionTimer += deltaTime
		if s.transitionTimer >= s.transitionDelay {
			s.StartLevel()
		}
	case component.PhaseGameOver:
	}
}

func (s *LevelSystem) completeLevel() {
	finished := s.world.GameState.CurrentLevel
	s.dispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelEvent{Level: finished}})
	s.world.ClearLevel()
	s.world.Phase = component.PhaseLevelTransition
	s.transitionTimer = 0
	if s.transitionDelay <= 0 {
		s.StartLevel()
	}
}

// maintainEnemies убирает улетевших врагов и с некоторой вероятностью добавляет новых.
func (s *LevelSystem) maintainEnemies() {
	s.RemoveOffscreen()

	level := s.world.GameState.CurrentLevel
	if len(s.world.Enemies) < defs.EnemyCount(level) && s.rng.Intn(100) < defs.EnemySpawnChance(level) {
		s.SpawnEnemy(s.rng.ChooseWeighted(defs.EnemySpawnTable))
	}
}

// RemoveOffscreen удаляет врагов дальше OffscreenMargin от видимой области.
func (s *LevelSystem) RemoveOffscreen() int {
	bounds := s.camera.Viewport().Expand(config.OffscreenMargin)
	return s.world.RemoveEnemies(func(e *component.Enemy) bool {
		return !bounds.Contains(e.Position)
	})
}

// SpawnEnemy ставит врага сразу за случайным краем видимой области, носом внутрь.
func (s *LevelSystem) SpawnEnemy(t defs.EnemyType) *component.Enemy {
	level := s.world.GameState.CurrentLevel
	vp := s.camera.Viewport()
	radius := defs.EnemyRadius(t, level)
	speed := defs.EnemySpawnSpeed(t, level)
	lateral := (s.rng.Float64() - 0.5) * speed

	var pos, vel physics.Vec2
	switch s.rng.Intn(4) {
	case 0: // сверху
		pos = physics.V(vp.MinX+s.rng.Float64()*vp.Width(), vp.MinY-radius)
		vel = physics.V(lateral, speed)
	case 1: // справа
		pos = physics.V(vp.MaxX+radius, vp.MinY+s.rng.Float64()*vp.Height())
		vel = physics.V(-speed, lateral)
	case 2: // снизу
		pos = physics.V(vp.MinX+s.rng.Float64()*vp.Width(), vp.MaxY+radius)
		vel = physics.V(lateral, -speed)
	default: // слева
		pos = physics.V(vp.MinX-radius, vp.MinY+s.rng.Float64()*vp.Height())
		vel = physics.V(speed, lateral)
	}

	e := component.NewEnemy(s.world.NewEntity(), t, level, pos, vel)
	s.world.Enemies = append(s.world.Enemies, e)
	return e
}
