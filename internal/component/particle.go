// internal/component/particle.go
package component

import (
	"image/color"
	"math"

	"go-space-arcade/pkg/physics"
	"go-space-arcade/pkg/render"
)

// ParticleKind: вариант частицы, определяющий правило обновления.
type ParticleKind uint8

const (
	ParticleBasic ParticleKind = iota
	ParticleSupernova
	ParticlePlanetDebris
	ParticleImpact
	ParticleEnergy
	ParticleShockwave
	ParticleBlackHole
	ParticleRing
	ParticleEnergyRing
	ParticleKindCount
)

var particleKindNames = [ParticleKindCount]string{
	"basic", "supernova", "planet_debris", "impact", "energy",
	"shockwave", "black_hole", "ring", "energy_ring",
}

func (k ParticleKind) String() string {
	if k < ParticleKindCount {
		return particleKindNames[k]
	}
	return "unknown"
}

const (
	baseDamping      = 0.99
	supernovaDamping = 0.98
	shockwaveEasing  = 0.1
	blackHoleAttract = 0.1
	blackHoleCapture = 5.0
	orbitAngularRate = 3.0
	orbitGrowthRate  = 2.0
)

// Particle: одна частица эффекта. Life считает тики до нуля.
type Particle struct {
	Kind          ParticleKind
	Position      physics.Vec2
	Velocity      physics.Vec2
	Size          float64
	Life          int
	MaxLife       int
	Color         color.RGBA
	Rotation      float64
	RotationSpeed float64
	Scale         float64

	// Ударная волна: текущий Size растёт к MaxSize.
	MaxSize float64
	// Чёрная дыра: точка притяжения. Энергокольцо: центр орбиты.
	Anchor      physics.Vec2
	Angle       float64
	OrbitRadius float64
}

// IsDead: частица подлежит удалению.
func (p *Particle) IsDead() bool { return p.Life <= 0 }

// LifeRatio: доля оставшейся жизни в [0, 1]; управляет прозрачностью и масштабом.
func (p *Particle) LifeRatio() float64 {
	if p.MaxLife <= 0 || p.Life <= 0 {
		return 0
	}
	r := float64(p.Life) / float64(p.MaxLife)
	if r > 1 {
		return 1
	}
	return r
}

// DrawPosition: где рисовать частицу. Для энергокольца это точка на орбите.
func (p *Particle) DrawPosition() physics.Vec2 {
	if p.Kind == ParticleEnergyRing {
		return p.Anchor.Add(physics.FromAngle(p.Angle, p.OrbitRadius))
	}
	return p.Position
}

// DrawColor: цвет с учётом угасания.
func (p *Particle) DrawColor() color.RGBA {
	return render.FadeAlpha(p.Color, p.LifeRatio())
}

// Update продвигает частицу на тик по правилу её варианта.
func (p *Particle) Update(deltaTime float64) {
	particleUpdaters[p.Kind](p, deltaTime)
}

var particleUpdaters = [ParticleKindCount]func(*Particle, float64){
	ParticleBasic:        updateBase,
	ParticleSupernova:    updateSupernova,
	ParticlePlanetDebris: updateSpinning,
	ParticleImpact:       updateSpinning,
	ParticleEnergy:       updateEnergy,
	ParticleShockwave:    updateShockwave,
	ParticleBlackHole:    updateBlackHole,
	ParticleRing:         updateBase,
	ParticleEnergyRing:   updateEnergyRing,
}

func updateBase(p *Particle, deltaTime float64) {
	p.Position = physics.Integrate(p.Position, p.Velocity, deltaTime)
	p.Velocity = p.Velocity.Scale(baseDamping)
	p.Life--
}

func updateSpinning(p *Particle, deltaTime float64) {
	updateBase(p, deltaTime)
	p.Rotation += p.RotationSpeed * physics.Frames(deltaTime)
}

func updateSupernova(p *Particle, deltaTime float64) {
	updateSpinning(p, deltaTime)
	p.Velocity = p.Velocity.Scale(supernovaDamping)
}

func updateEnergy(p *Particle, deltaTime float64) {
	updateSpinning(p, deltaTime)
	p.Scale = sinScale(p.Life)
}

func updateShockwave(p *Particle, deltaTime float64) {
	p.Life--
	p.Size += (p.MaxSize - p.Size) * shockwaveEasing * physics.Frames(deltaTime)
}

func updateBlackHole(p *Particle, deltaTime float64) {
	toTarget := p.Anchor.Sub(p.Position)
	if dir, dist, ok := toTarget.Normalize(); ok && dist > blackHoleCapture {
		p.Velocity = p.Velocity.Add(dir.Scale(blackHoleAttract * physics.Frames(deltaTime)))
	}
	updateBase(p, deltaTime)
	p.Rotation += 5 * physics.Frames(deltaTime)
}

func updateEnergyRing(p *Particle, deltaTime float64) {
	p.Life--
	frames := physics.Frames(deltaTime)
	p.Angle += orbitAngularRate * frames
	p.OrbitRadius += orbitGrowthRate * frames
}

func sinScale(life int) float64 {
	return math.Sin(float64(life)*0.1)*0.3 + 0.7
}
