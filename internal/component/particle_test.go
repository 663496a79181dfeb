package component

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-space-arcade/pkg/physics"
)

func TestLifeRatioNeverNegative(t *testing.T) {
	p := Particle{Kind: ParticleBasic, Life: 3, MaxLife: 3}
	for i := 0; i < 6; i++ {
		p.Update(1.0 / 60)
		assert.GreaterOrEqual(t, p.LifeRatio(), 0.0)
	}
	assert.True(t, p.IsDead())
	assert.Zero(t, p.LifeRatio())
	assert.Zero(t, (&Particle{}).LifeRatio())
}

func TestSupernovaDampsFasterThanBase(t *testing.T) {
	base := Particle{Kind: ParticleBasic, Velocity: physics.V(10, 0), Life: 10, MaxLife: 10}
	nova := Particle{Kind: ParticleSupernova, Velocity: physics.V(10, 0), Life: 10, MaxLife: 10}
	base.Update(1.0 / 60)
	nova.Update(1.0 / 60)
	assert.InDelta(t, 9.9, base.Velocity.X, 1e-9)
	assert.InDelta(t, 9.9*0.98, nova.Velocity.X, 1e-9)
	assert.InDelta(t, 10.0, base.Position.X, 1e-9)
}

func TestShockwaveEasesTowardMax(t *testing.T) {
	p := Particle{Kind: ParticleShockwave, Position: physics.V(5, 5), Size: 1, MaxSize: 101, Life: 20, MaxLife: 20}
	p.Update(1.0 / 60)
	assert.InDelta(t, 11.0, p.Size, 1e-9)
	assert.Equal(t, physics.V(5, 5), p.Position)
	assert.Equal(t, 19, p.Life)
}

func TestBlackHoleParticleIsAttracted(t *testing.T) {
	p := Particle{Kind: ParticleBlackHole, Position: physics.V(100, 0), Anchor: physics.V(0, 0), Life: 60, MaxLife: 60}
	p.Update(1.0 / 60)
	assert.InDelta(t, -0.1*0.99, p.Velocity.X, 1e-9)
	assert.InDelta(t, 99.9, p.Position.X, 1e-9)

	near := Particle{Kind: ParticleBlackHole, Position: physics.V(3, 0), Life: 60, MaxLife: 60}
	near.Update(1.0 / 60)
	assert.Zero(t, near.Velocity.X)
}

func TestEnergyRingOrbits(t *testing.T) {
	p := Particle{Kind: ParticleEnergyRing, Anchor: physics.V(10, 10), Angle: 0, OrbitRadius: 120, Life: 60, MaxLife: 60}
	p.Update(1.0 / 60)
	assert.InDelta(t, 3.0, p.Angle, 1e-9)
	assert.InDelta(t, 122.0, p.OrbitRadius, 1e-9)
	d := p.DrawPosition().Distance(p.Anchor)
	assert.InDelta(t, 122.0, d, 1e-9)
}

func TestEmitterRateAndDuration(t *testing.T) {
	e := Emitter{Rate: 10, Duration: 1}
	total := 0
	for i := 0; i < 30; i++ {
		total += e.Update(0.05)
	}
	assert.True(t, e.Finished())
	assert.InDelta(t, 10, total, 1)
	assert.Zero(t, e.Update(0.05))
}
