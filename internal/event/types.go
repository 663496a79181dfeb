// internal/event/types.go
package event

import (
	"go-space-arcade/internal/defs"
	"go-space-arcade/pkg/physics"
)

const (
	PlanetHit        EventType = "PlanetHit"        // Корабль таранит планету
	PlanetDestroyed  EventType = "PlanetDestroyed"  // Планета разрушена
	EnemyDestroyed   EventType = "EnemyDestroyed"   // Враг уничтожен
	EnemyConsumed    EventType = "EnemyConsumed"    // Враг поглощён чёрной дырой
	EnemyAttack      EventType = "EnemyAttack"      // Враг атаковал корабль
	ShipDestroyed    EventType = "ShipDestroyed"    // Корабль потерян
	ShipRespawned    EventType = "ShipRespawned"    // Корабль вернулся на точку появления
	ShieldActivated  EventType = "ShieldActivated"  // Включён щит
	PowerUpCollected EventType = "PowerUpCollected" // Собран бонус
	LevelStarted     EventType = "LevelStarted"     // Уровень заполнен
	LevelCompleted   EventType = "LevelCompleted"   // Все планеты уровня разрушены
	GameOver         EventType = "GameOver"         // Жизни закончились
)

// PlanetEvent: данные PlanetHit и PlanetDestroyed.
type PlanetEvent struct {
	Type     defs.PlanetType
	Position physics.Vec2
	Health   int
}

// EnemyEvent: данные EnemyDestroyed, EnemyConsumed и EnemyAttack.
type EnemyEvent struct {
	Type     defs.EnemyType
	Position physics.Vec2
	Damage   float64
}

// ShipEvent: данные ShipDestroyed и ShipRespawned.
type ShipEvent struct {
	Position  physics.Vec2
	LivesLeft int
}

// PowerUpEvent: данные PowerUpCollected.
type PowerUpEvent struct {
	Type     defs.PowerUpType
	Position physics.Vec2
}

// LevelEvent: данные LevelStarted и LevelCompleted.
type LevelEvent struct {
	Level int
}
