// internal/ui/scene.go
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-space-arcade/internal/app"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/pkg/physics"
	"go-space-arcade/pkg/render"
)

// nebulaColors: по одному цвету на вид туманности.
var nebulaColors = [...]color.RGBA{
	{120, 40, 160, 28},
	{40, 80, 180, 28},
	{180, 50, 90, 24},
	{40, 150, 140, 24},
	{160, 120, 40, 20},
}

// SceneRenderer рисует мир из снимка. Состояние симуляции не трогает.
type SceneRenderer struct{}

func NewSceneRenderer() *SceneRenderer {
	return &SceneRenderer{}
}

func (r *SceneRenderer) Draw(screen *ebiten.Image, snap *app.Snapshot) {
	screen.Fill(config.BackgroundColor)
	if snap == nil {
		return
	}
	cam := &snap.Camera

	r.drawStars(screen, snap.Stars)
	for _, n := range snap.Nebulae {
		p := cam.WorldToScreen(n.Position)
		clr := nebulaColors[n.Kind%len(nebulaColors)]
		size := float32(n.Size * cam.Zoom)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), size, clr, true)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), size*0.6, clr, true)
	}
	for _, b := range snap.BlackHoles {
		r.drawBlackHole(screen, cam, b)
	}
	for _, p := range snap.Planets {
		r.drawPlanet(screen, cam, p)
	}
	for _, p := range snap.PowerUps {
		r.drawPowerUp(screen, cam, p)
	}
	for _, e := range snap.Enemies {
		r.drawEnemy(screen, cam, e)
	}
	if snap.PhaseValue() != component.PhaseGameOver {
		r.drawShip(screen, cam, snap.Ship)
	}
	r.drawParticles(screen, cam, snap.Particles)
}

func (r *SceneRenderer) drawStars(screen *ebiten.Image, stars []component.Star) {
	for _, st := range stars {
		twinkle := 0.5 + 0.5*math.Sin(st.Twinkle*2*math.Pi)
		clr := render.FadeAlpha(st.Color, st.Brightness*twinkle)
		vector.DrawFilledCircle(screen, float32(st.Position.X), float32(st.Position.Y), float32(st.Size), clr, false)
	}
}

func (r *SceneRenderer) drawBlackHole(screen *ebiten.Image, cam *component.Camera, b app.BlackHoleView) {
	p := cam.WorldToScreen(b.Position)
	x, y := float32(p.X), float32(p.Y)
	size := float32(b.Size * cam.Zoom)
	pulse := float32(1 + 0.1*math.Sin(b.Pulse*math.Pi))

	halo := defs.BlackHolePalette[0]
	for i := 3; i >= 1; i-- {
		ring := render.WithAlpha(halo, uint8(30*i))
		vector.StrokeCircle(screen, x, y, size*pulse*(0.5+0.2*float32(i)), 2, ring, true)
	}
	vector.DrawFilledCircle(screen, x, y, size*0.4, color.RGBA{0, 0, 0, 255}, true)

	// Закрученный «рукав» показывает вращение.
	arm := physics.FromAngle(b.Rotation, b.Size*0.8*cam.Zoom)
	vector.StrokeLine(screen, x, y, x+float32(arm.X), y+float32(arm.Y), 1, render.WithAlpha(halo, 120), true)
}

func (r *SceneRenderer) drawPlanet(screen *ebiten.Image, cam *component.Camera, p app.PlanetView) {
	pos := cam.WorldToScreen(p.Position)
	x, y := float32(pos.X), float32(pos.Y)
	radius := float32(p.Radius * cam.Zoom)
	palette := defs.PlanetPalette(p.Type)

	vector.DrawFilledCircle(screen, x, y, radius, palette[0], true)
	if len(palette) > 1 {
		spot := physics.FromAngle(p.Rotation, p.Radius*0.45*cam.Zoom)
		vector.DrawFilledCircle(screen, x+float32(spot.X), y+float32(spot.Y), radius*0.3, palette[1], true)
	}
	vector.StrokeCircle(screen, x, y, radius, config.StrokeWidth, render.DarkenColor(palette[0]), true)

	if p.Health < p.MaxHealth && p.MaxHealth > 0 {
		w := radius * 1.6
		bx, by := x-w/2, y+radius+6
		vector.DrawFilledRect(screen, bx, by, w, 4, config.BarBackColor, false)
		vector.DrawFilledRect(screen, bx, by, fillWidth(float64(p.Health), float64(p.MaxHealth), w), 4, config.HealthBarColor, false)
	}
}

func (r *SceneRenderer) drawPowerUp(screen *ebiten.Image, cam *component.Camera, p app.PowerUpView) {
	pos := cam.WorldToScreen(p.Position)
	x, y := float32(pos.X), float32(pos.Y)
	radius := float32(defs.PowerUpRadius * cam.Zoom)
	palette := defs.PowerUp(p.Type).Palette
	if len(palette) == 0 {
		palette = render.Palette{{255, 255, 255, 255}}
	}

	vector.DrawFilledCircle(screen, x, y, radius, render.WithAlpha(palette[0], 90), true)
	vector.StrokeCircle(screen, x, y, radius, config.StrokeWidth, palette[0], true)
	for i := 0; i < 4; i++ {
		tick := physics.FromAngle(p.Rotation+float64(i)*90, float64(radius)*0.7)
		vector.DrawFilledCircle(screen, x+float32(tick.X), y+float32(tick.Y), 3, palette[len(palette)-1], true)
	}
}

func (r *SceneRenderer) drawEnemy(screen *ebiten.Image, cam *component.Camera, e app.EnemyView) {
	pos := cam.WorldToScreen(e.Position)
	radius := e.Radius * cam.Zoom
	clr := defs.Enemy(e.Type).Color

	nose := pos.Add(physics.FromAngle(e.Rotation, radius))
	left := pos.Add(physics.FromAngle(e.Rotation+140, radius))
	right := pos.Add(physics.FromAngle(e.Rotation-140, radius))

	var path vector.Path
	path.MoveTo(float32(nose.X), float32(nose.Y))
	path.LineTo(float32(left.X), float32(left.Y))
	path.LineTo(float32(right.X), float32(right.Y))
	path.Close()
	fillPath(screen, &path, clr)

	outline := render.DarkenColor(clr)
	if e.Attacking {
		outline = color.RGBA{255, 255, 255, 255}
	}
	strokeTriangle(screen,
		float32(nose.X), float32(nose.Y), float32(left.X), float32(left.Y), float32(right.X), float32(right.Y),
		config.StrokeWidth, outline)

	if e.HealthRatio < 1 {
		w := float32(radius * 1.5)
		bx, by := float32(pos.X)-w/2, float32(pos.Y+radius)+4
		vector.DrawFilledRect(screen, bx, by, w, 3, config.BarBackColor, false)
		vector.DrawFilledRect(screen, bx, by, fillWidth(e.HealthRatio, 1, w), 3, config.HealthBarColor, false)
	}
}

func (r *SceneRenderer) drawShip(screen *ebiten.Image, cam *component.Camera, s app.ShipView) {
	pos := cam.WorldToScreen(s.Position)
	radius := config.ShipRadius * cam.Zoom

	if s.EngineGlow > 0 {
		flame := pos.Add(physics.FromAngle(s.Rotation+180, radius*(0.6+0.6*s.EngineGlow)))
		glow := render.FadeAlpha(config.EngineColor, s.EngineGlow)
		vector.DrawFilledCircle(screen, float32(flame.X), float32(flame.Y), float32(radius*0.3), glow, true)
	}

	nose := pos.Add(physics.FromAngle(s.Rotation, radius))
	left := pos.Add(physics.FromAngle(s.Rotation+135, radius*0.8))
	right := pos.Add(physics.FromAngle(s.Rotation-135, radius*0.8))
	var path vector.Path
	path.MoveTo(float32(nose.X), float32(nose.Y))
	path.LineTo(float32(left.X), float32(left.Y))
	path.LineTo(float32(pos.X), float32(pos.Y))
	path.LineTo(float32(right.X), float32(right.Y))
	path.Close()
	fillPath(screen, &path, config.ShipColor)

	if s.ShieldActive {
		vector.DrawFilledCircle(screen, float32(pos.X), float32(pos.Y), float32(radius*1.2), config.ShieldColor, true)
		vector.StrokeCircle(screen, float32(pos.X), float32(pos.Y), float32(radius*1.2), config.StrokeWidth, render.WithAlpha(config.ShieldColor, 220), true)
	}
}

func (r *SceneRenderer) drawParticles(screen *ebiten.Image, cam *component.Camera, particles []component.Particle) {
	for i := range particles {
		p := &particles[i]
		pos := cam.WorldToScreen(p.DrawPosition())
		x, y := float32(pos.X), float32(pos.Y)
		clr := p.DrawColor()
		switch p.Kind {
		case component.ParticleShockwave:
			vector.StrokeCircle(screen, x, y, float32(p.Size*cam.Zoom), 3, clr, true)
		case component.ParticlePlanetDebris, component.ParticleImpact:
			half := float32(p.Size * p.Scale * p.LifeRatio() * cam.Zoom / 2)
			a := physics.FromAngle(p.Rotation, float64(half))
			vector.StrokeLine(screen, x-float32(a.X), y-float32(a.Y), x+float32(a.X), y+float32(a.Y), half, clr, true)
		default:
			size := float32(p.Size * p.Scale * cam.Zoom)
			if p.Kind != component.ParticleEnergyRing {
				size *= float32(p.LifeRatio())
			}
			if size > 0.3 {
				vector.DrawFilledCircle(screen, x, y, size, clr, true)
			}
		}
	}
}
