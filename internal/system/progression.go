// internal/system/progression.go
package system

import (
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/logger"
)

// ProgressionSystem переводит игровые события в изменения GameState.
// Кроме неё GameState никто не меняет.
type ProgressionSystem struct {
	world *entity.World
	log   logger.Log
}

func NewProgressionSystem(world *entity.World, dispatcher *event.Dispatcher, log logger.Log) *ProgressionSystem {
	s := &ProgressionSystem{world: world, log: log}
	dispatcher.SubscribeAll(s,
		event.PlanetDestroyed,
		event.EnemyDestroyed,
		event.ShipDestroyed,
		event.LevelCompleted,
	)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ProgressionSystem) OnEvent(e event.Event) {
	gs := s.world.GameState
	switch e.Type {
	case event.PlanetDestroyed:
		if data, ok := e.Data.(event.PlanetEvent); ok {
			gs.PlanetDestroyed(data.Type)
		}
	case event.EnemyDestroyed:
		if data, ok := e.Data.(event.EnemyEvent); ok {
			gs.EnemyDestroyed(data.Type)
		}
	case event.ShipDestroyed:
		gs.ShipDestroyed()
		s.log.Info("ship destroyed", logger.Int("lives", gs.Lives), logger.Int("score", gs.Score))
	case event.LevelCompleted:
		gs.NextLevel()
		s.log.Info("level completed",
			logger.Int("next_level", gs.CurrentLevel),
			logger.Int("score", gs.Score),
			logger.Any("coins", gs.Coins),
		)
	}
}
