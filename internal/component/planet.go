// internal/component/planet.go
package component

import (
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/types"
	"go-space-arcade/pkg/physics"
)

// Planet: разрушаемая цель уровня.
type Planet struct {
	ID            types.EntityID
	Position      physics.Vec2
	Type          defs.PlanetType
	Level         int
	Health        int
	MaxHealth     int
	Rotation      float64
	RotationSpeed float64
}

func NewPlanet(id types.EntityID, t defs.PlanetType, level int, position physics.Vec2) *Planet {
	health := defs.PlanetHealth(level)
	return &Planet{
		ID:        id,
		Position:  position,
		Type:      t,
		Level:     level,
		Health:    health,
		MaxHealth: health,
	}
}

func (p *Planet) Pos() physics.Vec2 { return p.Position }
func (p *Planet) Radius() float64   { return defs.PlanetRadius(p.Type, p.Level) }

func (p *Planet) Update(deltaTime float64) {
	p.Rotation += p.RotationSpeed * physics.Frames(deltaTime)
}

// TakeDamage снимает здоровье, не опуская его ниже нуля.
func (p *Planet) TakeDamage(damage int) {
	p.Health -= damage
	if p.Health < 0 {
		p.Health = 0
	}
}

func (p *Planet) IsDestroyed() bool { return p.Health <= 0 }
