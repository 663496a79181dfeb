// internal/system/ship.go
package system

import (
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/interfaces"
)

// ShipSystem применяет ввод к кораблю и учитывает пройденный путь.
type ShipSystem struct {
	world    *entity.World
	input    interfaces.ForceProvider
	powerUps *PowerUpSystem
}

func NewShipSystem(world *entity.World, input interfaces.ForceProvider, powerUps *PowerUpSystem) *ShipSystem {
	return &ShipSystem{world: world, input: input, powerUps: powerUps}
}

// SetInput меняет источник управления (например, автопилот в безголовом режиме).
func (s *ShipSystem) SetInput(input interfaces.ForceProvider) {
	s.input = input
}

func (s *ShipSystem) Update(deltaTime float64) {
	ship := s.world.Ship
	before := ship.Position

	speedFactor := 1.0
	if s.powerUps != nil {
		speedFactor = s.powerUps.SpeedFactor()
	}
	ship.Update(s.input.Force(), s.input.Active(), speedFactor, deltaTime)

	s.world.GameState.AddDistance(ship.Position.Distance(before))
}
