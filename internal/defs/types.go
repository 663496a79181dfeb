// internal/defs/types.go
package defs

import "fmt"

// EnemyType: закрытый набор поведений врагов.
type EnemyType int

const (
	EnemyScout EnemyType = iota
	EnemyFighter
	EnemyBomber
	EnemyElite
	EnemyTypeCount
)

func (t EnemyType) String() string {
	switch t {
	case EnemyScout:
		return "scout"
	case EnemyFighter:
		return "fighter"
	case EnemyBomber:
		return "bomber"
	case EnemyElite:
		return "elite"
	}
	return fmt.Sprintf("enemy(%d)", int(t))
}

// Valid сообщает, входит ли значение в закрытый набор.
func (t EnemyType) Valid() bool {
	return t >= 0 && t < EnemyTypeCount
}

// PlanetType: материал планеты.
type PlanetType int

const (
	PlanetEarth PlanetType = iota
	PlanetLava
	PlanetIce
	PlanetGas
	PlanetToxic
	PlanetTypeCount
)

func (t PlanetType) String() string {
	switch t {
	case PlanetEarth:
		return "earth"
	case PlanetLava:
		return "lava"
	case PlanetIce:
		return "ice"
	case PlanetGas:
		return "gas"
	case PlanetToxic:
		return "toxic"
	}
	return fmt.Sprintf("planet(%d)", int(t))
}

func (t PlanetType) Valid() bool {
	return t >= 0 && t < PlanetTypeCount
}

// PowerUpType: тип бонуса.
type PowerUpType int

const (
	PowerUpHealth PowerUpType = iota
	PowerUpShield
	PowerUpSpeed
	PowerUpWeapon
	PowerUpCoin
	PowerUpMultiplier
	PowerUpTypeCount
)

func (t PowerUpType) String() string {
	switch t {
	case PowerUpHealth:
		return "health"
	case PowerUpShield:
		return "shield"
	case PowerUpSpeed:
		return "speed"
	case PowerUpWeapon:
		return "weapon"
	case PowerUpCoin:
		return "coin"
	case PowerUpMultiplier:
		return "multiplier"
	}
	return fmt.Sprintf("powerup(%d)", int(t))
}

func (t PowerUpType) Valid() bool {
	return t >= 0 && t < PowerUpTypeCount
}
