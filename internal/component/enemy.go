// internal/component/enemy.go
package component

import (
	"math"

	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/types"
	"go-space-arcade/pkg/physics"
)

// Enemy представляет вражескую сущность.
type Enemy struct {
	ID types.EntityID
	physics.Body
	Type        defs.EnemyType
	Level       int
	Health      float64
	MaxHealth   float64
	AttackTimer float64
	IsAttacking bool    // выставляется ИИ, сбрасывается при обработке атаки
	AttackFlash float64 // остаток подсветки атаки, секунды
	Rotation    float64
}

func NewEnemy(id types.EntityID, t defs.EnemyType, level int, position, velocity physics.Vec2) *Enemy {
	maxHealth := defs.EnemyMaxHealth(t, level)
	return &Enemy{
		ID:        id,
		Body:      physics.Body{Position: position, Velocity: velocity},
		Type:      t,
		Level:     level,
		Health:    maxHealth,
		MaxHealth: maxHealth,
	}
}

func (e *Enemy) Pos() physics.Vec2 { return e.Position }
func (e *Enemy) Radius() float64   { return defs.EnemyRadius(e.Type, e.Level) }

// Move интегрирует позицию и поворачивает корпус.
func (e *Enemy) Move(deltaTime float64) {
	e.Position = physics.Integrate(e.Position, e.Velocity, deltaTime)
	e.Rotation = math.Mod(e.Rotation+defs.Enemy(e.Type).RotationSpeed*physics.Frames(deltaTime), 360)
	e.AttackFlash = math.Max(0, e.AttackFlash-deltaTime)
}

// Flashing: враг недавно атаковал.
func (e *Enemy) Flashing() bool { return e.AttackFlash > 0 }

func (e *Enemy) TakeDamage(damage float64) {
	e.Health = math.Max(0, e.Health-damage)
}

func (e *Enemy) IsDead() bool { return e.Health <= 0 }

// HealthRatio: доля здоровья для полоски над врагом.
func (e *Enemy) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return e.Health / e.MaxHealth
}
