// internal/component/ship.go
package component

import (
	"math"

	"go-space-arcade/internal/config"
	"go-space-arcade/pkg/physics"
	"go-space-arcade/pkg/utils"
)

// Ship: корабль игрока. Создаётся один раз за сессию, при гибели сбрасывается Reset.
type Ship struct {
	physics.Body
	MaxSpeed     float64
	Acceleration float64
	Friction     float64
	Health       float64
	Shield       float64
	ShieldActive bool
	Rotation     float64 // градусы
	EngineGlow   float64 // 0..1
}

func NewShip(position physics.Vec2) *Ship {
	s := &Ship{
		MaxSpeed:     config.ShipMaxSpeed,
		Acceleration: config.ShipAcceleration,
		Friction:     config.ShipFriction,
	}
	s.Reset(position)
	return s
}

func (s *Ship) Pos() physics.Vec2 { return s.Position }
func (s *Ship) Radius() float64   { return config.ShipRadius }

// Update продвигает корабль на один тик. speedFactor масштабирует MaxSpeed (бонус скорости).
func (s *Ship) Update(force physics.Vec2, active bool, speedFactor, deltaTime float64) {
	if !active {
		force = physics.Vec2{}
	}
	s.Step(force, s.Acceleration, s.MaxSpeed*speedFactor, s.Friction, deltaTime)

	if active {
		s.Rotation = force.Angle()
		s.EngineGlow = math.Min(1, s.EngineGlow+deltaTime*config.EngineGlowRise)
	} else {
		s.EngineGlow = math.Max(0, s.EngineGlow-deltaTime*config.EngineGlowFall)
	}

	if s.ShieldActive {
		s.Shield -= deltaTime * config.ShieldDrainRate
		if s.Shield <= 0 {
			s.Shield = 0
			s.ShieldActive = false
		}
	} else {
		s.Shield = math.Min(config.ShipMaxShield, s.Shield+deltaTime*config.ShieldRegenRate)
	}
	s.Health = utils.Clamp(s.Health, 0, config.ShipMaxHealth)
}

// CheckCollision: пересечение с объектом. Под щитом всегда false.
func (s *Ship) CheckCollision(other Spatial) bool {
	if s.ShieldActive {
		return false
	}
	return Overlaps(s, other)
}

// TakeDamage снимает здоровье; под щитом урон поглощается полностью.
func (s *Ship) TakeDamage(damage float64) {
	if s.ShieldActive {
		return
	}
	s.Health = math.Max(0, s.Health-damage)
}

// Heal восстанавливает здоровье не выше максимума.
func (s *Ship) Heal(amount float64) {
	s.Health = math.Min(config.ShipMaxHealth, s.Health+amount)
}

// ActivateShield включает щит, если заряда достаточно. Повторный вызов ничего не меняет.
func (s *Ship) ActivateShield() bool {
	if s.Shield >= config.ShieldActivationCost && !s.ShieldActive {
		s.ShieldActive = true
		return true
	}
	return false
}

// Reset возвращает корабль в исходное состояние без пересоздания объекта.
func (s *Ship) Reset(position physics.Vec2) {
	s.Position = position
	s.Velocity = physics.Vec2{}
	s.Health = config.ShipMaxHealth
	s.Shield = config.ShipMaxShield
	s.ShieldActive = false
	s.EngineGlow = 0
}

func (s *Ship) Speed() float64 { return s.Velocity.Length() }
