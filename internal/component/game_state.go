// internal/component/game_state.go
package component

import (
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
)

const (
	StartingCoins     = 1_000_000
	MinCoinsAfterLoss = 1_000_000
	DeathCoinPenalty  = 100_000
	DeathScorePenalty = 100
	UpgradeCostStep   = 500_000
)

// Phase: фаза симуляции.
type Phase int

const (
	PhaseRunning Phase = iota
	PhaseLevelTransition
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseLevelTransition:
		return "level_transition"
	case PhaseGameOver:
		return "game_over"
	}
	return "unknown"
}

// Upgrades: уровни улучшений корабля.
type Upgrades struct {
	Speed          int `json:"speed"`
	Health         int `json:"health"`
	Weapon         int `json:"weapon"`
	ShieldCapacity int `json:"shield_capacity"`
}

// GameState: прогресс и экономика сессии. Меняется только через методы-события.
type GameState struct {
	SessionID        string
	Coins            int64
	Score            int
	CurrentLevel     int
	Lives            int
	DestroyedPlanets int // за текущий уровень
	DestroyedEnemies int
	CurrentCombo     int
	MaxCombo         int
	DistanceTravel   float64
	PlayTime         float64 // секунды
	PlanetsByType    [defs.PlanetTypeCount]int
	EnemiesByType    [defs.EnemyTypeCount]int
	Upgrades         Upgrades
	ScoreMultiplier  int
	Missions         []Mission
	Achievements     []Achievement
}

func NewGameState(sessionID string) *GameState {
	gs := &GameState{
		SessionID:       sessionID,
		Coins:           StartingCoins,
		CurrentLevel:    1,
		Lives:           config.StartingLives,
		Upgrades:        Upgrades{Speed: 1, Health: 1, Weapon: 1, ShieldCapacity: 1},
		ScoreMultiplier: 1,
		Achievements:    NewAchievements(),
	}
	gs.Missions = NewMissions()
	return gs
}

// PlanetDestroyed начисляет очки и монеты за планету и наращивает комбо.
func (gs *GameState) PlanetDestroyed(t defs.PlanetType) {
	gs.DestroyedPlanets++
	if t.Valid() {
		gs.PlanetsByType[t]++
	}

	bonus := 0
	if t.Valid() {
		bonus = defs.Planet(t).ScoreBonus
	}
	comboBonus := gs.CurrentCombo * 10
	gs.Score += (100*gs.CurrentLevel + bonus + comboBonus) * gs.multiplier()
	gs.Coins += int64(50_000*gs.CurrentLevel) + int64(comboBonus*100)

	gs.bumpCombo()
	gs.checkMissions()
	gs.checkAchievements()
}

// EnemyDestroyed начисляет награду за сбитого врага.
func (gs *GameState) EnemyDestroyed(t defs.EnemyType) {
	gs.DestroyedEnemies++
	bonus := 0
	if t.Valid() {
		gs.EnemiesByType[t]++
		bonus = defs.Enemy(t).ScoreBonus
	}
	gs.Score += 50*gs.CurrentLevel + bonus
	gs.Coins += int64(25_000 * gs.CurrentLevel)

	gs.bumpCombo()
	gs.checkMissions()
	gs.checkAchievements()
}

// ShipDestroyed снимает жизнь и сбрасывает комбо.
func (gs *GameState) ShipDestroyed() {
	gs.Lives--
	if gs.Lives < 0 {
		gs.Lives = 0
	}
	gs.CurrentCombo = 0
	gs.Score = max(0, gs.Score-DeathScorePenalty)
	gs.Coins = max(MinCoinsAfterLoss, gs.Coins-DeathCoinPenalty)
}

// NextLevel переводит на следующий уровень и выдаёт бонус.
func (gs *GameState) NextLevel() {
	gs.CurrentLevel++
	gs.DestroyedPlanets = 0
	gs.CurrentCombo = 0
	gs.Coins += int64(gs.CurrentLevel) * 1_000_000
	gs.Score += gs.CurrentLevel * 1000
	if gs.CurrentLevel%5 == 0 {
		gs.Lives++
	}
	gs.Missions = NewMissions()
	gs.checkAchievements()
}

// AddDistance учитывает пройденный путь.
func (gs *GameState) AddDistance(d float64) {
	gs.DistanceTravel += d
}

// AddCoins: прямое начисление (бонус-монета).
func (gs *GameState) AddCoins(n int64) {
	gs.Coins += n
	gs.checkMissions()
	gs.checkAchievements()
}

// SetScoreMultiplier включает или снимает множитель очков за планеты.
func (gs *GameState) SetScoreMultiplier(n int) {
	if n < 1 {
		n = 1
	}
	gs.ScoreMultiplier = n
}

func (gs *GameState) IsGameOver() bool { return gs.Lives <= 0 }

// UpgradeCost: стоимость следующего уровня улучшения.
func UpgradeCost(level int) int64 {
	return int64(level) * UpgradeCostStep
}

// Upgrade покупает улучшение, если хватает монет.
func (gs *GameState) Upgrade(kind UpgradeKind) bool {
	lvl := gs.upgradeLevel(kind)
	if lvl == nil {
		return false
	}
	cost := UpgradeCost(*lvl)
	if gs.Coins < cost {
		return false
	}
	gs.Coins -= cost
	*lvl++
	return true
}

type UpgradeKind int

const (
	UpgradeSpeed UpgradeKind = iota
	UpgradeHealth
	UpgradeWeapon
	UpgradeShieldCapacity
)

func (gs *GameState) upgradeLevel(kind UpgradeKind) *int {
	switch kind {
	case UpgradeSpeed:
		return &gs.Upgrades.Speed
	case UpgradeHealth:
		return &gs.Upgrades.Health
	case UpgradeWeapon:
		return &gs.Upgrades.Weapon
	case UpgradeShieldCapacity:
		return &gs.Upgrades.ShieldCapacity
	}
	return nil
}

func (gs *GameState) multiplier() int {
	if gs.ScoreMultiplier < 1 {
		return 1
	}
	return gs.ScoreMultiplier
}

func (gs *GameState) bumpCombo() {
	gs.CurrentCombo++
	if gs.CurrentCombo > gs.MaxCombo {
		gs.MaxCombo = gs.CurrentCombo
	}
}

func (gs *GameState) checkMissions() {
	for i := len(gs.Missions) - 1; i >= 0; i-- {
		m := &gs.Missions[i]
		if m.Check(gs) {
			gs.Coins += int64(m.Reward)
			gs.Score += m.Reward / 10
			gs.Missions = append(gs.Missions[:i], gs.Missions[i+1:]...)
		}
	}
}

func (gs *GameState) checkAchievements() {
	for i := range gs.Achievements {
		a := &gs.Achievements[i]
		if !a.Unlocked && a.Condition(gs) {
			a.Unlocked = true
			gs.Coins += int64(a.Reward)
			gs.Score += a.Reward * 2
		}
	}
}
