package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/logger"
	"go-space-arcade/internal/utils"
	"go-space-arcade/pkg/physics"
)

func TestSupernovaPrunesBackToBaseline(t *testing.T) {
	s := NewParticleSystem(utils.NewPRNGService(1), 4000, logger.Nop())
	s.Supernova(physics.V(10, 10), 80, defs.ShipExplosionPalette)
	assert.Equal(t, 80+config.ShipExplosionShockwaves, s.Count())

	s.Update(tick)
	assert.Equal(t, 80+config.ShipExplosionShockwaves, s.Count(), "nothing dies on the first tick")

	for i := 0; i < 120; i++ {
		s.Update(tick)
	}
	assert.Zero(t, s.Count())
}

func TestParticleCapDropsAndWarns(t *testing.T) {
	core, logs := observer.New(zapcore.WarnLevel)
	s := NewParticleSystem(utils.NewPRNGService(1), 50, logger.FromZap(zap.New(core)))

	s.Supernova(physics.Vec2{}, 80, defs.ShipExplosionPalette)
	assert.Equal(t, 50, s.Count())

	s.Update(tick)
	entries := logs.FilterMessage("particle cap reached").All()
	if assert.Len(t, entries, 1) {
		assert.EqualValues(t, 33, entries[0].ContextMap()["dropped"])
	}

	s.Update(tick)
	assert.Equal(t, 1, logs.Len(), "warning is per overflow, not per tick")
}

func TestPlanetExplosionSmokeEmitter(t *testing.T) {
	s := NewParticleSystem(utils.NewPRNGService(3), 4000, logger.Nop())
	s.PlanetExplosion(physics.V(50, 50), config.PlanetExplosionParticles, defs.PlanetToxic)
	assert.Equal(t, 1, s.EmitterCount())
	start := s.Count()
	assert.Equal(t, config.PlanetExplosionParticles+config.PlanetExplosionRings, start)

	s.Update(0.5)
	assert.Greater(t, s.Count(), start, "smoke added")

	for i := 0; i < 90; i++ {
		s.Update(tick)
	}
	assert.Zero(t, s.EmitterCount())

	for i := 0; i < 300; i++ {
		s.Update(tick)
	}
	assert.Zero(t, s.Count())
}

func TestEffectsUseParticleKinds(t *testing.T) {
	s := NewParticleSystem(utils.NewPRNGService(5), 4000, logger.Nop())
	s.BlackHoleEffect(physics.V(0, 0), 10)
	s.RespawnEffect(physics.V(0, 0), 10)
	s.EnemyExplosion(physics.V(0, 0), defs.EnemyElite)
	s.PlanetImpact(physics.V(0, 0), 5, defs.PlanetIce)

	kinds := map[string]int{}
	for _, p := range s.Particles() {
		kinds[p.Kind.String()]++
		assert.Equal(t, p.Life, p.MaxLife)
		assert.NotZero(t, p.Scale)
	}
	assert.Len(t, s.Particles(), 10+10+config.RespawnEnergyRings+config.EnemyExplosionParticles+config.ShipExplosionShockwaves+5)
	assert.Greater(t, len(kinds), 4)

	s.Clear()
	assert.Zero(t, s.Count())
}
