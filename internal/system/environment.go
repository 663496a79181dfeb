// internal/system/environment.go
package system

import (
	"image/color"

	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/physics"
)

var starColors = []color.RGBA{
	{200, 220, 255, 255},
	{255, 250, 200, 255},
	{255, 200, 200, 255},
	{200, 255, 200, 255},
}

// EnvironmentSystem управляет фоном: звёздами, туманностями и чёрными дырами.
type EnvironmentSystem struct {
	world  *entity.World
	rng    *utils.PRNGService
	screen physics.Vec2
	// starField: область, в которой звёзды заворачиваются по краям.
	starField physics.Rect
}

func NewEnvironmentSystem(world *entity.World, rng *utils.PRNGService, screen physics.Vec2) *EnvironmentSystem {
	return &EnvironmentSystem{
		world:  world,
		rng:    rng,
		screen: screen,
		starField: physics.Rect{
			MinX: -screen.X/2 - 100,
			MinY: -screen.Y/2 - 100,
			MaxX: screen.X*1.5 + 100,
			MaxY: screen.Y*1.5 + 100,
		},
	}
}

// Populate создаёт звёзды, туманности и чёрные дыры. Вызывается один раз за сессию.
func (s *EnvironmentSystem) Populate() {
	w, h := s.screen.X, s.screen.Y

	s.world.Stars = make([]component.Star, 0, config.StarCount)
	for i := 0; i < config.StarCount; i++ {
		s.world.Stars = append(s.world.Stars, component.Star{
			Position:     physics.V(s.rng.Range(-w/2, w*1.5), s.rng.Range(-h/2, h*1.5)),
			Size:         s.rng.Range(1, 5),
			Speed:        s.rng.Range(0.2, 1.0),
			Brightness:   s.rng.Range(0.3, 1.0),
			Twinkle:      s.rng.Float64(),
			TwinkleSpeed: s.rng.Range(0.01, 0.03),
			Color:        starColors[s.rng.Intn(len(starColors))],
		})
	}

	s.world.Nebulae = make([]component.Nebula, 0, config.NebulaCount)
	for i := 0; i < config.NebulaCount; i++ {
		s.world.Nebulae = append(s.world.Nebulae, component.Nebula{
			Position:      physics.V(s.rng.Range(-w, w*2), s.rng.Range(-h, h*2)),
			Size:          s.rng.Range(200, 600),
			Kind:          s.rng.Intn(5),
			Rotation:      s.rng.Float64() * 360,
			RotationSpeed: (s.rng.Float64() - 0.5) * 0.2,
		})
	}

	s.world.BlackHoles = s.world.BlackHoles[:0]
	for i := 0; i < config.BlackHoleCount; i++ {
		s.world.BlackHoles = append(s.world.BlackHoles, &component.BlackHole{
			ID:            s.world.NewEntity(),
			Position:      physics.V(s.rng.Range(-w/2, w*1.5), s.rng.Range(-h/2, h*1.5)),
			Size:          s.rng.Range(40, 120),
			Rotation:      s.rng.Float64() * 360,
			RotationSpeed: s.rng.Range(0.5, 1.5),
			Pulse:         s.rng.Float64(),
		})
	}
}

func (s *EnvironmentSystem) Update(deltaTime float64) {
	frames := physics.Frames(deltaTime)
	shipVel := s.world.Ship.Velocity
	f := s.starField

	for i := range s.world.Stars {
		st := &s.world.Stars[i]
		st.Position = st.Position.Sub(shipVel.Scale(st.Speed * 0.15 * frames))
		st.Twinkle += st.TwinkleSpeed * frames
		if st.Twinkle > 1 {
			st.Twinkle = 0
		}
		switch {
		case st.Position.X < f.MinX:
			st.Position.X = f.MaxX
		case st.Position.X > f.MaxX:
			st.Position.X = f.MinX
		}
		switch {
		case st.Position.Y < f.MinY:
			st.Position.Y = f.MaxY
		case st.Position.Y > f.MaxY:
			st.Position.Y = f.MinY
		}
	}

	for i := range s.world.Nebulae {
		n := &s.world.Nebulae[i]
		n.Rotation += n.RotationSpeed * frames
	}

	for _, bh := range s.world.BlackHoles {
		bh.Update(deltaTime)
	}
}
