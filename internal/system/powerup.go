// internal/system/powerup.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/physics"
)

// PowerUpSystem создаёт бонусы, собирает их и ведёт таймеры временных эффектов.
type PowerUpSystem struct {
	world      *entity.World
	dispatcher *event.Dispatcher
	rng        *utils.PRNGService
	// Оставшееся время эффектов, секунды.
	timers [defs.PowerUpTypeCount]float64
}

func NewPowerUpSystem(world *entity.World, dispatcher *event.Dispatcher, rng *utils.PRNGService) *PowerUpSystem {
	return &PowerUpSystem{world: world, dispatcher: dispatcher, rng: rng}
}

// Spawn кладёт случайный бонус в точку.
func (s *PowerUpSystem) Spawn(at physics.Vec2) *component.PowerUp {
	p := &component.PowerUp{
		ID:       s.world.NewEntity(),
		Position: at,
		Type:     defs.PowerUpType(s.rng.Intn(int(defs.PowerUpTypeCount))),
	}
	s.world.PowerUps = append(s.world.PowerUps, p)
	return p
}

// MaybeDrop бросает бонус с вероятностью config.PlanetPowerUpChance.
func (s *PowerUpSystem) MaybeDrop(at physics.Vec2) {
	if s.rng.Chance(config.PlanetPowerUpChance) {
		s.Spawn(at)
	}
}

// Update ведёт таймеры эффектов и убирает просроченные бонусы.
func (s *PowerUpSystem) Update(deltaTime float64) {
	for t := range s.timers {
		if s.timers[t] <= 0 {
			continue
		}
		s.timers[t] -= deltaTime
		if s.timers[t] <= 0 {
			s.timers[t] = 0
			s.expire(defs.PowerUpType(t))
		}
	}

	for i := len(s.world.PowerUps) - 1; i >= 0; i-- {
		if s.world.PowerUps[i].Age >= config.PowerUpLifetime {
			s.world.RemovePowerUpAt(i)
		}
	}
}

// Collect: проход сбора бонусов. Идёт после основных проверок столкновений.
// Щит сбору не мешает.
func (s *PowerUpSystem) Collect() {
	ship := s.world.Ship
	for i := len(s.world.PowerUps) - 1; i >= 0; i-- {
		p := s.world.PowerUps[i]
		if p.Collected || !component.Overlaps(ship, p) {
			continue
		}
		p.Collected = true
		s.apply(p.Type)
		s.world.RemovePowerUpAt(i)
		s.dispatcher.Dispatch(event.Event{
			Type: event.PowerUpCollected,
			Data: event.PowerUpEvent{Type: p.Type, Position: p.Position},
		})
	}
}

func (s *PowerUpSystem) apply(t defs.PowerUpType) {
	def := defs.PowerUp(t)
	ship := s.world.Ship
	switch t {
	case defs.PowerUpHealth:
		ship.Heal(def.Amount)
	case defs.PowerUpShield:
		if ship.ActivateShield() {
			s.dispatcher.Dispatch(event.Event{Type: event.ShieldActivated})
		}
	case defs.PowerUpCoin:
		s.world.GameState.AddCoins(int64(def.Amount))
	case defs.PowerUpMultiplier:
		s.world.GameState.SetScoreMultiplier(int(def.Amount))
	}
	if def.Duration > 0 {
		s.timers[t] = def.Duration.Seconds()
	}
}

func (s *PowerUpSystem) expire(t defs.PowerUpType) {
	if t == defs.PowerUpMultiplier {
		s.world.GameState.SetScoreMultiplier(1)
	}
}

// Active сообщает, действует ли временный эффект.
func (s *PowerUpSystem) Active(t defs.PowerUpType) bool {
	return s.timers[t] > 0
}

// Remaining: сколько секунд осталось эффекту.
func (s *PowerUpSystem) Remaining(t defs.PowerUpType) float64 {
	return s.timers[t]
}

// SpeedFactor: множитель максимальной скорости корабля.
func (s *PowerUpSystem) SpeedFactor() float64 {
	if s.Active(defs.PowerUpSpeed) {
		return defs.PowerUp(defs.PowerUpSpeed).Amount
	}
	return 1
}

// ContactDamage: урон планете за тик касания с учётом бонуса оружия.
func (s *PowerUpSystem) ContactDamage() int {
	if s.Active(defs.PowerUpWeapon) {
		return config.PlanetContactDamage * int(defs.PowerUp(defs.PowerUpWeapon).Amount)
	}
	return config.PlanetContactDamage
}

// Reset снимает все эффекты.
func (s *PowerUpSystem) Reset() {
	for t := range s.timers {
		if s.timers[t] > 0 {
			s.timers[t] = 0
			s.expire(defs.PowerUpType(t))
		}
	}
}
