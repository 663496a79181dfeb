// internal/component/missions.go
package component

// Mission: задача текущего уровня. Выполненные миссии удаляются из списка.
type Mission struct {
	ID       string
	Target   int64
	Progress int64
	Reward   int
	progress func(gs *GameState) int64
}

// Check обновляет прогресс и сообщает, выполнена ли миссия.
func (m *Mission) Check(gs *GameState) bool {
	if m.progress == nil {
		return false
	}
	m.Progress = m.progress(gs)
	return m.Progress >= m.Target
}

// NewMissions: стандартный набор миссий уровня.
func NewMissions() []Mission {
	return []Mission{
		{ID: "planets_5", Target: 5, Reward: 2000,
			progress: func(gs *GameState) int64 { return int64(gs.DestroyedPlanets) }},
		{ID: "enemies_8", Target: 8, Reward: 1500,
			progress: func(gs *GameState) int64 { return int64(gs.DestroyedEnemies) }},
		{ID: "coins_500k", Target: 500_000, Reward: 3000,
			progress: func(gs *GameState) int64 { return gs.Coins }},
	}
}

// Achievement открывается один раз за сессию.
type Achievement struct {
	ID        string
	Reward    int
	Unlocked  bool
	condition func(gs *GameState) bool
}

func (a *Achievement) Condition(gs *GameState) bool {
	return a.condition != nil && a.condition(gs)
}

func NewAchievements() []Achievement {
	return []Achievement{
		{ID: "planet_1", Reward: 1000,
			condition: func(gs *GameState) bool { return gs.DestroyedPlanets >= 1 }},
		{ID: "enemy_10", Reward: 2500,
			condition: func(gs *GameState) bool { return gs.DestroyedEnemies >= 10 }},
		{ID: "coins_10m", Reward: 5000,
			condition: func(gs *GameState) bool { return gs.Coins >= 10_000_000 }},
		{ID: "level_10", Reward: 10000,
			condition: func(gs *GameState) bool { return gs.CurrentLevel >= 10 }},
	}
}
