// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	MaxDeltaTime = 0.06
	TickRate     = 60

	ShipRadius       = 40.0
	ShipMaxSpeed     = 15.0
	ShipAcceleration = 0.8
	ShipFriction     = 0.92
	ShipMaxHealth    = 100.0
	ShipMaxShield    = 100.0

	ShieldRegenRate      = 5.0  // в секунду, пока щит выключен
	ShieldDrainRate      = 10.0 // в секунду, пока щит включён
	ShieldActivationCost = 30.0 // минимальный заряд для включения

	EngineGlowRise = 5.0
	EngineGlowFall = 3.0

	PlanetContactDamage  = 25
	PlanetPowerUpChance  = 0.3
	OffscreenMargin      = 200.0
	EnemySpawnMargin     = 50.0
	StartingLives        = 3
	EnemyAttackFlash     = 0.25 // секунды подсветки врага после атаки
	LevelTransitionDelay = 1.0  // секунды

	CameraSmoothness   = 0.1
	CameraShakeMax     = 5.0
	CameraShakeFactor  = 0.1
	CameraShakePeriod  = 0.05 // секунды между пересчётами тряски
	CameraZoomFactor   = 0.005
	CameraZoomMaxDelta = 0.3

	MaxParticles = 4000

	// Эффекты столкновений.
	ShipExplosionParticles   = 80
	ShipExplosionShockwaves  = 3
	ShockwaveMaxSize         = 150.0
	RespawnParticles         = 60
	RespawnEnergyRings       = 4
	EnergyRingSize           = 120.0
	BlackHoleEffectParticles = 30
	PlanetImpactParticles    = 25
	PlanetExplosionParticles = 100
	PlanetExplosionRings     = 5
	EnemyExplosionParticles  = 40

	StarCount      = 500
	NebulaCount    = 8
	BlackHoleCount = 3

	PowerUpLifetime = 20.0 // секунды до исчезновения несобранного бонуса

	JoystickBaseRadius = 80.0
	JoystickDeadZone   = 0.2

	TextCharWidth = 7
	TextOffsetY   = 4
)

var (
	BackgroundColor = color.RGBA{5, 5, 20, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	ShipColor       = color.RGBA{200, 220, 255, 255}
	ShieldColor     = color.RGBA{80, 180, 255, 120}
	EngineColor     = color.RGBA{255, 140, 40, 255}
	HealthBarColor  = color.RGBA{220, 60, 60, 255}
	ShieldBarColor  = color.RGBA{70, 130, 220, 255}
	BarBackColor    = color.RGBA{40, 40, 50, 200}
	JoystickColor   = color.RGBA{255, 255, 255, 60}
	StrokeWidth     = float32(2.0)
)
