// internal/defs/enemies.go
package defs

import "image/color"

// EnemyDefinition holds all the static data for a specific type of enemy.
// Значения, зависящие от уровня, задаются парой Base + PerLevel*level.
type EnemyDefinition struct {
	Type EnemyType

	RadiusBase     float64
	RadiusPerLevel float64
	HealthBase     float64
	HealthPerLevel float64

	// Начальная скорость при появлении.
	SpawnSpeedBase     float64
	SpawnSpeedPerLevel float64

	// Предел скорости, которым ограничивается рулёжка.
	MaxSpeedBase     float64
	MaxSpeedPerLevel float64

	SteerGain     float64
	ChaseDistance float64 // разведчик и бомбардировщик преследуют только дальше этой дистанции
	EvadeChance   float64 // вероятность случайного рывка за тик (разведчик)
	EvadeImpulse  float64
	LeadTime      float64 // упреждение по скорости корабля, секунды (элита)

	AttackRange    float64 // 0: не атакует
	AttackCooldown float64 // секунды
	AttackDamage   float64

	RotationSpeed float64 // градусов за эталонный кадр
	ScoreBonus    int
	Color         color.RGBA
}

var enemyDefs = [EnemyTypeCount]EnemyDefinition{
	EnemyScout: {
		Type:               EnemyScout,
		RadiusBase:         25,
		RadiusPerLevel:     2,
		HealthBase:         50,
		HealthPerLevel:     10,
		SpawnSpeedBase:     4,
		SpawnSpeedPerLevel: 0.3,
		MaxSpeedBase:       5,
		MaxSpeedPerLevel:   0.4,
		SteerGain:          0.1,
		ChaseDistance:      200,
		EvadeChance:        0.05,
		EvadeImpulse:       2,
		RotationSpeed:      6,
		ScoreBonus:         25,
		Color:              color.RGBA{255, 100, 100, 255},
	},
	EnemyFighter: {
		Type:               EnemyFighter,
		RadiusBase:         35,
		RadiusPerLevel:     3,
		HealthBase:         100,
		HealthPerLevel:     20,
		SpawnSpeedBase:     3,
		SpawnSpeedPerLevel: 0.2,
		MaxSpeedBase:       4,
		MaxSpeedPerLevel:   0.3,
		SteerGain:          0.08,
		AttackRange:        150,
		AttackCooldown:     2.0,
		AttackDamage:       10,
		RotationSpeed:      4,
		ScoreBonus:         50,
		Color:              color.RGBA{255, 150, 100, 255},
	},
	EnemyBomber: {
		Type:               EnemyBomber,
		RadiusBase:         45,
		RadiusPerLevel:     4,
		HealthBase:         200,
		HealthPerLevel:     30,
		SpawnSpeedBase:     2,
		SpawnSpeedPerLevel: 0.1,
		MaxSpeedBase:       3,
		MaxSpeedPerLevel:   0.2,
		SteerGain:          0.05,
		ChaseDistance:      300,
		AttackRange:        250,
		AttackCooldown:     3.0,
		AttackDamage:       20,
		RotationSpeed:      2,
		ScoreBonus:         100,
		Color:              color.RGBA{150, 100, 255, 255},
	},
	EnemyElite: {
		Type:               EnemyElite,
		RadiusBase:         40,
		RadiusPerLevel:     3,
		HealthBase:         150,
		HealthPerLevel:     25,
		SpawnSpeedBase:     3.5,
		SpawnSpeedPerLevel: 0.25,
		MaxSpeedBase:       4.5,
		MaxSpeedPerLevel:   0.35,
		SteerGain:          0.1,
		LeadTime:           0.5,
		AttackRange:        180,
		AttackCooldown:     1.5,
		AttackDamage:       15,
		RotationSpeed:      5,
		ScoreBonus:         150,
		Color:              color.RGBA{255, 215, 0, 255},
	},
}

// Enemy возвращает определение типа. Тип должен быть Valid.
func Enemy(t EnemyType) EnemyDefinition {
	return enemyDefs[t]
}

// EnemyRadius: радиус столкновения; чистая функция (тип, уровень).
func EnemyRadius(t EnemyType, level int) float64 {
	d := enemyDefs[t]
	return d.RadiusBase + d.RadiusPerLevel*float64(level)
}

// EnemyMaxHealth: максимальное здоровье; чистая функция (тип, уровень).
func EnemyMaxHealth(t EnemyType, level int) float64 {
	d := enemyDefs[t]
	return d.HealthBase + d.HealthPerLevel*float64(level)
}

// EnemySpeedCap: предел скорости после рулёжки.
func EnemySpeedCap(t EnemyType, level int) float64 {
	d := enemyDefs[t]
	return d.MaxSpeedBase + d.MaxSpeedPerLevel*float64(level)
}

// EnemySpawnSpeed: скорость, с которой враг влетает на экран.
func EnemySpawnSpeed(t EnemyType, level int) float64 {
	d := enemyDefs[t]
	return d.SpawnSpeedBase + d.SpawnSpeedPerLevel*float64(level)
}

// EnemySpawnWeight: вес типа при случайном выборе.
type EnemySpawnWeight struct {
	Type   EnemyType
	Weight int
}

// EnemySpawnTable: все типы равновероятны.
var EnemySpawnTable = []EnemySpawnWeight{
	{Type: EnemyScout, Weight: 1},
	{Type: EnemyFighter, Weight: 1},
	{Type: EnemyBomber, Weight: 1},
	{Type: EnemyElite, Weight: 1},
}
