// internal/system/collision.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/logger"
)

// CollisionSystem проверяет столкновения и применяет их последствия.
// Порядок проходов фиксирован: корабль-враг, враг-чёрная дыра, корабль-планета,
// затем бонусы, атаки врагов и (если включён) таран под щитом.
// Все списки обходятся с конца, поэтому удаление не сдвигает ещё не проверенные элементы.
type CollisionSystem struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	particles  *ParticleSystem
	powerUps   *PowerUpSystem
	log        logger.Log
	shipHit    bool
	shieldRam  bool
}

func NewCollisionSystem(world *entity.World, dispatcher *event.Dispatcher, particles *ParticleSystem, powerUps *PowerUpSystem, log logger.Log) *CollisionSystem {
	return &CollisionSystem{
		world:      world,
		dispatcher: dispatcher,
		particles:  particles,
		powerUps:   powerUps,
		log:        log,
	}
}

// SetShieldRam включает урон врагам от корабля под щитом. По умолчанию выключен.
func (s *CollisionSystem) SetShieldRam(on bool) {
	s.shieldRam = on
}

// Update выполняет все проходы одного тика. После гибели последней жизни
// мир переводится в PhaseGameOver и оставшиеся проходы пропускаются.
func (s *CollisionSystem) Update() {
	s.shipHit = false

	s.shipVersusEnemies()
	if s.world.Phase == component.PhaseGameOver {
		return
	}
	s.enemiesVersusBlackHoles()
	s.shipVersusPlanets()
	s.powerUps.Collect()
	s.resolveEnemyAttacks()
	if s.world.Phase == component.PhaseGameOver {
		return
	}
	if s.shieldRam {
		s.ramEnemies()
	}
	s.removeDeadEnemies()
}

// shipVersusEnemies: не больше одной гибели корабля за тик.
func (s *CollisionSystem) shipVersusEnemies() {
	ship := s.world.Ship
	for i := len(s.world.Enemies) - 1; i >= 0; i-- {
		if ship.CheckCollision(s.world.Enemies[i]) {
			s.destroyShip()
			return
		}
	}
}

func (s *CollisionSystem) enemiesVersusBlackHoles() {
	for i := len(s.world.Enemies) - 1; i >= 0; i-- {
		e := s.world.Enemies[i]
		for _, bh := range s.world.BlackHoles {
			if !component.Overlaps(e, bh) {
				continue
			}
			data := event.EnemyEvent{Type: e.Type, Position: e.Position}
			s.world.RemoveEnemyAt(i)
			s.particles.BlackHoleEffect(bh.Position, config.BlackHoleEffectParticles)
			s.dispatcher.Dispatch(event.Event{Type: event.EnemyConsumed, Data: data})
			s.log.Debug("enemy consumed", logger.String("type", data.Type.String()))
			break
		}
	}
}

// shipVersusPlanets: урон каждый тик касания. Щит планету не защищает.
func (s *CollisionSystem) shipVersusPlanets() {
	ship := s.world.Ship
	damage := s.powerUps.ContactDamage()
	for i := len(s.world.Planets) - 1; i >= 0; i-- {
		p := s.world.Planets[i]
		if !component.Overlaps(ship, p) {
			continue
		}
		p.TakeDamage(damage)
		data := event.PlanetEvent{Type: p.Type, Position: p.Position, Health: p.Health}
		if !p.IsDestroyed() {
			s.particles.PlanetImpact(p.Position, config.PlanetImpactParticles, p.Type)
			s.dispatcher.Dispatch(event.Event{Type: event.PlanetHit, Data: data})
			continue
		}
		s.world.RemovePlanetAt(i)
		s.dispatcher.Dispatch(event.Event{Type: event.PlanetDestroyed, Data: data})
		s.particles.PlanetExplosion(data.Position, config.PlanetExplosionParticles, data.Type)
		s.powerUps.MaybeDrop(data.Position)
		s.log.Debug("planet destroyed", logger.String("type", data.Type.String()))
	}
}

// resolveEnemyAttacks расходует импульс IsAttacking, выставленный ИИ.
func (s *CollisionSystem) resolveEnemyAttacks() {
	ship := s.world.Ship
	for _, e := range s.world.Enemies {
		if !e.IsAttacking {
			continue
		}
		e.IsAttacking = false
		e.AttackFlash = config.EnemyAttackFlash
		if s.shipHit {
			continue
		}
		damage := defs.Enemy(e.Type).AttackDamage
		ship.TakeDamage(damage)
		s.dispatcher.Dispatch(event.Event{
			Type: event.EnemyAttack,
			Data: event.EnemyEvent{Type: e.Type, Position: e.Position, Damage: damage},
		})
		if ship.Health <= 0 {
			s.destroyShip()
			if s.world.Phase == component.PhaseGameOver {
				return
			}
		}
	}
}

// ramEnemies: корабль под щитом наносит контактный урон врагам, которых касается.
func (s *CollisionSystem) ramEnemies() {
	ship := s.world.Ship
	if !ship.ShieldActive {
		return
	}
	damage := float64(s.powerUps.ContactDamage())
	for _, e := range s.world.Enemies {
		if component.Overlaps(ship, e) {
			e.TakeDamage(damage)
		}
	}
}

func (s *CollisionSystem) removeDeadEnemies() {
	for i := len(s.world.Enemies) - 1; i >= 0; i-- {
		e := s.world.Enemies[i]
		if !e.IsDead() {
			continue
		}
		data := event.EnemyEvent{Type: e.Type, Position: e.Position}
		s.world.RemoveEnemyAt(i)
		s.particles.EnemyExplosion(data.Position, data.Type)
		s.dispatcher.Dispatch(event.Event{Type: event.EnemyDestroyed, Data: data})
	}
}

// destroyShip: взрыв, событие потери, затем либо конец игры, либо возрождение.
// Жизни списывает подписчик ShipDestroyed, поэтому последняя жизнь определяется до рассылки.
func (s *CollisionSystem) destroyShip() {
	if s.shipHit {
		return
	}
	s.shipHit = true
	ship := s.world.Ship
	gs := s.world.GameState
	lastLife := gs.Lives <= 1

	s.particles.Supernova(ship.Position, config.ShipExplosionParticles, defs.ShipExplosionPalette)
	s.dispatcher.Dispatch(event.Event{
		Type: event.ShipDestroyed,
		Data: event.ShipEvent{Position: ship.Position, LivesLeft: max(0, gs.Lives-1)},
	})
	s.powerUps.Reset()

	if lastLife {
		s.world.Phase = component.PhaseGameOver
		s.dispatcher.Dispatch(event.Event{Type: event.GameOver, Data: event.LevelEvent{Level: gs.CurrentLevel}})
		s.log.Info("game over", logger.Int("level", gs.CurrentLevel), logger.Int("score", gs.Score))
		return
	}

	ship.Reset(s.world.Spawn)
	s.particles.RespawnEffect(s.world.Spawn, config.RespawnParticles)
	s.dispatcher.Dispatch(event.Event{
		Type: event.ShipRespawned,
		Data: event.ShipEvent{Position: s.world.Spawn, LivesLeft: gs.Lives},
	})
}
