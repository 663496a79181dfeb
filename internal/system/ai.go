// internal/system/ai.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/physics"
)

// Behavior задаёт стратегию одного типа врага. Она меняет скорость и может выставить IsAttacking.
type Behavior func(e *component.Enemy, def defs.EnemyDefinition, ship *component.Ship, deltaTime float64)

// AISystem выбирает поведение по типу врага.
type AISystem struct {
	world     *entity.World
	rng       *utils.PRNGService
	behaviors [defs.EnemyTypeCount]Behavior
}

func NewAISystem(world *entity.World, rng *utils.PRNGService) *AISystem {
	s := &AISystem{world: world, rng: rng}
	s.behaviors = [defs.EnemyTypeCount]Behavior{
		defs.EnemyScout:   s.scout,
		defs.EnemyFighter: pursue,
		defs.EnemyBomber:  pursue,
		defs.EnemyElite:   intercept,
	}
	return s
}

// Update прогоняет ИИ всех врагов. Позиции здесь не меняются.
func (s *AISystem) Update(deltaTime float64) {
	ship := s.world.Ship
	for _, e := range s.world.Enemies {
		s.Think(e, ship, deltaTime)
	}
}

// Think: один тик ИИ для одного врага.
func (s *AISystem) Think(e *component.Enemy, ship *component.Ship, deltaTime float64) {
	def := defs.Enemy(e.Type)
	e.AttackTimer += deltaTime
	s.behaviors[e.Type](e, def, ship, deltaTime)
	e.Velocity = physics.ClampSpeed(e.Velocity, defs.EnemySpeedCap(e.Type, e.Level))
	tryAttack(e, def, ship)
}

// scout преследует издалека, а вблизи дёргается случайно.
func (s *AISystem) scout(e *component.Enemy, def defs.EnemyDefinition, ship *component.Ship, deltaTime float64) {
	toShip := ship.Position.Sub(e.Position)
	if toShip.Length() > def.ChaseDistance {
		e.Velocity = physics.Steer(e.Velocity, toShip, def.SteerGain, deltaTime)
		return
	}
	if s.rng.Chance(def.EvadeChance) {
		e.Velocity = e.Velocity.Add(physics.V(
			(s.rng.Float64()-0.5)*def.EvadeImpulse,
			(s.rng.Float64()-0.5)*def.EvadeImpulse,
		))
	}
}

// pursue летит прямо на корабль. Если задана ChaseDistance, рулит только дальше неё.
func pursue(e *component.Enemy, def defs.EnemyDefinition, ship *component.Ship, deltaTime float64) {
	toShip := ship.Position.Sub(e.Position)
	if def.ChaseDistance > 0 && toShip.Length() <= def.ChaseDistance {
		return
	}
	e.Velocity = physics.Steer(e.Velocity, toShip, def.SteerGain, deltaTime)
}

// intercept целится в точку, где корабль окажется через LeadTime секунд.
func intercept(e *component.Enemy, def defs.EnemyDefinition, ship *component.Ship, deltaTime float64) {
	predicted := ship.Position.Add(ship.Velocity.Scale(def.LeadTime))
	e.Velocity = physics.Steer(e.Velocity, predicted.Sub(e.Position), def.SteerGain, deltaTime)
}

func tryAttack(e *component.Enemy, def defs.EnemyDefinition, ship *component.Ship) {
	if def.AttackRange <= 0 {
		return
	}
	if e.Position.Distance(ship.Position) < def.AttackRange && e.AttackTimer > def.AttackCooldown {
		e.IsAttacking = true
		e.AttackTimer = 0
	}
}
