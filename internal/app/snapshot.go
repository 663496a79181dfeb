// internal/app/snapshot.go
package app

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/defs"
	"go-space-arcade/pkg/physics"
)

// Snapshot: неизменяемая копия мира после завершённого тика.
// Презентация (ebiten, терминал, websocket) читает только снимки.
type Snapshot struct {
	Tick       uint64           `json:"tick"`
	Time       float64          `json:"time"`
	Phase      string           `json:"phase"`
	Ship       ShipView         `json:"ship"`
	Enemies    []EnemyView      `json:"enemies"`
	Planets    []PlanetView     `json:"planets"`
	BlackHoles []BlackHoleView  `json:"black_holes"`
	PowerUps   []PowerUpView    `json:"power_ups"`
	Progress   ProgressView     `json:"progress"`
	Camera     component.Camera `json:"-"`

	Particles []component.Particle `json:"-"`
	Stars     []component.Star     `json:"-"`
	Nebulae   []component.Nebula   `json:"-"`

	phase component.Phase
}

// PhaseValue: фаза в типизированном виде.
func (s *Snapshot) PhaseValue() component.Phase { return s.phase }

type ShipView struct {
	Position     physics.Vec2 `json:"position"`
	Velocity     physics.Vec2 `json:"velocity"`
	Rotation     float64      `json:"rotation"`
	Health       float64      `json:"health"`
	Shield       float64      `json:"shield"`
	ShieldActive bool         `json:"shield_active"`
	EngineGlow   float64      `json:"engine_glow"`
}

type EnemyView struct {
	ID          uint64         `json:"id"`
	Type        defs.EnemyType `json:"-"`
	TypeName    string         `json:"type"`
	Position    physics.Vec2   `json:"position"`
	Rotation    float64        `json:"rotation"`
	Radius      float64        `json:"radius"`
	HealthRatio float64        `json:"health_ratio"`
	Attacking   bool           `json:"attacking"`
}

type PlanetView struct {
	ID        uint64          `json:"id"`
	Type      defs.PlanetType `json:"-"`
	TypeName  string          `json:"type"`
	Position  physics.Vec2    `json:"position"`
	Radius    float64         `json:"radius"`
	Rotation  float64         `json:"rotation"`
	Health    int             `json:"health"`
	MaxHealth int             `json:"max_health"`
}

type BlackHoleView struct {
	Position physics.Vec2 `json:"position"`
	Size     float64      `json:"size"`
	Rotation float64      `json:"rotation"`
	Pulse    float64      `json:"pulse"`
}

type PowerUpView struct {
	Type     defs.PowerUpType `json:"-"`
	TypeName string           `json:"type"`
	Position physics.Vec2     `json:"position"`
	Rotation float64          `json:"rotation"`
}

type ProgressView struct {
	SessionID   string   `json:"session_id"`
	Score       int      `json:"score"`
	Coins       int64    `json:"coins"`
	Level       int      `json:"level"`
	Lives       int      `json:"lives"`
	Combo       int      `json:"combo"`
	MaxCombo    int      `json:"max_combo"`
	Distance    float64  `json:"distance"`
	Missions    []string `json:"missions"`
	Multiplier  int      `json:"multiplier"`
	SpeedBoost  float64  `json:"speed_boost"`
	WeaponBoost float64  `json:"weapon_boost"`
}

func (g *Game) buildSnapshot() *Snapshot {
	w := g.World
	ship := w.Ship
	gs := w.GameState

	snap := &Snapshot{
		Tick:  g.tick,
		Time:  w.GameTime,
		Phase: w.Phase.String(),
		phase: w.Phase,
		Ship: ShipView{
			Position:     ship.Position,
			Velocity:     ship.Velocity,
			Rotation:     ship.Rotation,
			Health:       ship.Health,
			Shield:       ship.Shield,
			ShieldActive: ship.ShieldActive,
			EngineGlow:   ship.EngineGlow,
		},
		Enemies:    make([]EnemyView, 0, len(w.Enemies)),
		Planets:    make([]PlanetView, 0, len(w.Planets)),
		BlackHoles: make([]BlackHoleView, 0, len(w.BlackHoles)),
		PowerUps:   make([]PowerUpView, 0, len(w.PowerUps)),
		Camera:     *g.Camera,
		Particles:  append([]component.Particle(nil), g.ParticleSystem.Particles()...),
		Stars:      append([]component.Star(nil), w.Stars...),
		Nebulae:    append([]component.Nebula(nil), w.Nebulae...),
		Progress: ProgressView{
			SessionID:   gs.SessionID,
			Score:       gs.Score,
			Coins:       gs.Coins,
			Level:       gs.CurrentLevel,
			Lives:       gs.Lives,
			Combo:       gs.CurrentCombo,
			MaxCombo:    gs.MaxCombo,
			Distance:    gs.DistanceTravel,
			Multiplier:  gs.ScoreMultiplier,
			SpeedBoost:  g.PowerUpSystem.Remaining(defs.PowerUpSpeed),
			WeaponBoost: g.PowerUpSystem.Remaining(defs.PowerUpWeapon),
		},
	}
	for _, e := range w.Enemies {
		snap.Enemies = append(snap.Enemies, EnemyView{
			ID:          uint64(e.ID),
			Type:        e.Type,
			TypeName:    e.Type.String(),
			Position:    e.Position,
			Rotation:    e.Rotation,
			Radius:      e.Radius(),
			HealthRatio: e.HealthRatio(),
			Attacking:   e.Flashing(),
		})
	}
	for _, p := range w.Planets {
		snap.Planets = append(snap.Planets, PlanetView{
			ID:        uint64(p.ID),
			Type:      p.Type,
			TypeName:  p.Type.String(),
			Position:  p.Position,
			Radius:    p.Radius(),
			Rotation:  p.Rotation,
			Health:    p.Health,
			MaxHealth: p.MaxHealth,
		})
	}
	for _, b := range w.BlackHoles {
		snap.BlackHoles = append(snap.BlackHoles, BlackHoleView{
			Position: b.Position,
			Size:     b.Size,
			Rotation: b.Rotation,
			Pulse:    b.Pulse,
		})
	}
	for _, p := range w.PowerUps {
		snap.PowerUps = append(snap.PowerUps, PowerUpView{
			Type:     p.Type,
			TypeName: p.Type.String(),
			Position: p.Position,
			Rotation: p.Rotation,
		})
	}
	for _, m := range gs.Missions {
		snap.Progress.Missions = append(snap.Progress.Missions, m.ID)
	}
	return snap
}
