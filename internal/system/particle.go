// internal/system/particle.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/logger"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/physics"
	"go-space-arcade/pkg/render"
)

// ParticleSystem владеет всеми частицами и эмиттерами.
// Частицы лежат значениями в одном срезе; мёртвые вычищаются каждый тик.
type ParticleSystem struct {
	particles []component.Particle
	emitters  []component.Emitter
	rng       *utils.PRNGService
	log       logger.Log
	limit     int
	dropped   int
}

func NewParticleSystem(rng *utils.PRNGService, limit int, log logger.Log) *ParticleSystem {
	if limit <= 0 {
		limit = config.MaxParticles
	}
	return &ParticleSystem{
		particles: make([]component.Particle, 0, 512),
		rng:       rng,
		log:       log,
		limit:     limit,
	}
}

// Update продвигает эмиттеры и частицы, затем удаляет мёртвые.
func (s *ParticleSystem) Update(deltaTime float64) {
	live := s.emitters[:0]
	for i := range s.emitters {
		em := &s.emitters[i]
		for n := em.Update(deltaTime); n > 0; n-- {
			s.emitSmoke(em)
		}
		if !em.Finished() {
			live = append(live, *em)
		}
	}
	clear(s.emitters[len(live):])
	s.emitters = live

	n := 0
	for i := range s.particles {
		p := &s.particles[i]
		p.Update(deltaTime)
		if p.IsDead() {
			continue
		}
		s.particles[n] = *p
		n++
	}
	s.particles = s.particles[:n]

	if s.dropped > 0 {
		s.log.Warn("particle cap reached", logger.Int("dropped", s.dropped), logger.Int("limit", s.limit))
		s.dropped = 0
	}
}

// Particles: текущие частицы. Срез принадлежит системе и действителен до следующего Update.
func (s *ParticleSystem) Particles() []component.Particle { return s.particles }

func (s *ParticleSystem) Count() int { return len(s.particles) }

func (s *ParticleSystem) EmitterCount() int { return len(s.emitters) }

func (s *ParticleSystem) Clear() {
	s.particles = s.particles[:0]
	s.emitters = s.emitters[:0]
}

func (s *ParticleSystem) add(p component.Particle) {
	if len(s.particles) >= s.limit {
		s.dropped++
		return
	}
	p.MaxLife = p.Life
	if p.Scale == 0 {
		p.Scale = 1
	}
	s.particles = append(s.particles, p)
}

// burst: общий разлёт частиц во все стороны.
type burst struct {
	kind               component.ParticleKind
	speedMin, speedMax float64
	sizeMin, sizeMax   float64
	lifeMin, lifeSpan  int
	scale              float64
}

func (s *ParticleSystem) spawnBurst(at physics.Vec2, count int, palette render.Palette, b burst) {
	if len(palette) == 0 {
		palette = render.Palette{{255, 255, 255, 255}}
	}
	for i := 0; i < count; i++ {
		angle := s.rng.Float64() * 360
		speed := s.rng.Range(b.speedMin, b.speedMax)
		rotationSpeed := (s.rng.Float64() - 0.5) * 10
		if b.kind == component.ParticleEnergy {
			rotationSpeed *= 2
		}
		s.add(component.Particle{
			Kind:          b.kind,
			Position:      at,
			Velocity:      physics.FromAngle(angle, speed),
			Size:          s.rng.Range(b.sizeMin, b.sizeMax),
			Life:          b.lifeMin + s.rng.Intn(b.lifeSpan),
			Color:         palette[s.rng.Intn(len(palette))],
			Rotation:      s.rng.Float64() * 360,
			RotationSpeed: rotationSpeed,
			Scale:         b.scale,
		})
	}
}

// Supernova рисует взрыв корабля: разлёт обломков и ударные волны.
func (s *ParticleSystem) Supernova(at physics.Vec2, count int, palette render.Palette) {
	s.spawnBurst(at, count, palette, burst{
		kind: component.ParticleSupernova, speedMin: 3, speedMax: 15,
		sizeMin: 3, sizeMax: 11, lifeMin: 40, lifeSpan: 50, scale: 1.5,
	})
	s.Shockwave(at, config.ShipExplosionShockwaves, config.ShockwaveMaxSize)
}

// PlanetExplosion рисует разрушение планеты: обломки, огненное кольцо и шлейф дыма.
func (s *ParticleSystem) PlanetExplosion(at physics.Vec2, count int, t defs.PlanetType) {
	s.spawnBurst(at, count, defs.PlanetPalette(t), burst{
		kind: component.ParticlePlanetDebris, speedMin: 2, speedMax: 12,
		sizeMin: 4, sizeMax: 14, lifeMin: 60, lifeSpan: 80, scale: 1.2,
	})
	s.ExplosionRing(at, config.PlanetExplosionRings)
	s.emitters = append(s.emitters, component.Emitter{
		Position: at,
		Kind:     component.ParticlePlanetDebris,
		Palette:  defs.SmokePalette,
		Rate:     20,
		Duration: 1.5,
	})
}

// PlanetImpact: искры при таране планеты.
func (s *ParticleSystem) PlanetImpact(at physics.Vec2, count int, t defs.PlanetType) {
	s.spawnBurst(at, count, defs.PlanetPalette(t), burst{
		kind: component.ParticleImpact, speedMin: 1, speedMax: 7,
		sizeMin: 2, sizeMax: 7, lifeMin: 20, lifeSpan: 30, scale: 1,
	})
}

// BlackHoleEffect: частицы, затягиваемые в центр чёрной дыры.
func (s *ParticleSystem) BlackHoleEffect(center physics.Vec2, count int) {
	c := defs.BlackHolePalette[0]
	for i := 0; i < count; i++ {
		offset := physics.FromAngle(s.rng.Float64()*360, s.rng.Float64()*100)
		s.add(component.Particle{
			Kind:     component.ParticleBlackHole,
			Position: center.Add(offset),
			Anchor:   center,
			Size:     s.rng.Range(2, 6),
			Life:     60 + s.rng.Intn(60),
			Color:    c,
		})
	}
}

// RespawnEffect: энергетическое облако и кольца на точке появления.
func (s *ParticleSystem) RespawnEffect(at physics.Vec2, count int) {
	s.spawnBurst(at, count, defs.RespawnPalette, burst{
		kind: component.ParticleEnergy, speedMin: 0.5, speedMax: 2.5,
		sizeMin: 2, sizeMax: 8, lifeMin: 30, lifeSpan: 40, scale: 1,
	})
	s.EnergyRing(at, config.RespawnEnergyRings, config.EnergyRingSize)
}

// EnemyExplosion: гибель врага.
func (s *ParticleSystem) EnemyExplosion(at physics.Vec2, t defs.EnemyType) {
	c := defs.Enemy(t).Color
	s.Supernova(at, config.EnemyExplosionParticles, render.Palette{c, render.DarkenColor(c), defs.RingColor})
}

// Shockwave: count колец, растущих до maxSize.
func (s *ParticleSystem) Shockwave(at physics.Vec2, count int, maxSize float64) {
	for i := 0; i < count; i++ {
		s.add(component.Particle{
			Kind:     component.ParticleShockwave,
			Position: at,
			Size:     1,
			MaxSize:  maxSize * float64(i+1) / float64(count),
			Life:     20 + i*10,
			Color:    defs.ShockwaveColor,
		})
	}
}

// ExplosionRing: равномерное кольцо быстрых искр.
func (s *ParticleSystem) ExplosionRing(at physics.Vec2, count int) {
	for i := 0; i < count; i++ {
		angle := float64(i) * 360 / float64(count)
		s.add(component.Particle{
			Kind:     component.ParticleRing,
			Position: at,
			Velocity: physics.FromAngle(angle, s.rng.Range(8, 12)),
			Size:     6,
			Life:     40,
			Color:    defs.RingColor,
		})
	}
}

// EnergyRing: частицы на расширяющейся орбите вокруг точки.
func (s *ParticleSystem) EnergyRing(at physics.Vec2, count int, radius float64) {
	for i := 0; i < count; i++ {
		s.add(component.Particle{
			Kind:        component.ParticleEnergyRing,
			Position:    at,
			Anchor:      at,
			Angle:       float64(i) * 360 / float64(count),
			OrbitRadius: radius,
			Size:        8,
			Life:        60,
			Color:       defs.EnergyRingColor,
		})
	}
}

func (s *ParticleSystem) emitSmoke(em *component.Emitter) {
	s.spawnBurst(em.Position, 1, em.Palette, burst{
		kind: em.Kind, speedMin: 0.3, speedMax: 1.5,
		sizeMin: 6, sizeMax: 14, lifeMin: 40, lifeSpan: 40, scale: 1,
	})
}
