package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound: звуковой эффект игры
type Sound int

const (
	SoundExplosion Sound = iota
	SoundImpact
	SoundShield
	SoundLevelStart
	SoundLevelComplete
	SoundGameOver
	SoundBlackHole
	SoundPlanetExplosion
	SoundRespawn
	SoundPowerUp
	SoundCount
)

var soundNames = [SoundCount]string{
	"explosion", "impact", "shield", "level_start", "level_complete",
	"game_over", "black_hole", "planet_explosion", "respawn", "power_up",
}

func (s Sound) String() string {
	if s < 0 || s >= SoundCount {
		return "sound(?)"
	}
	return soundNames[s]
}

// soundVolumes: относительная громкость эффектов
var soundVolumes = [SoundCount]float64{
	SoundExplosion:       1.0,
	SoundImpact:          0.7,
	SoundShield:          0.8,
	SoundLevelStart:      1.0,
	SoundLevelComplete:   1.0,
	SoundGameOver:        1.0,
	SoundBlackHole:       0.9,
	SoundPlanetExplosion: 1.0,
	SoundRespawn:         0.8,
	SoundPowerUp:         0.8,
}

// Effect синтезирует эффект. pitch умножает базовые частоты.
func Effect(s Sound, pitch float64, rate beep.SampleRate) beep.Streamer {
	if pitch <= 0 {
		pitch = 1
	}
	note := func(freq float64, d, attack, release time.Duration, wave WaveType) beep.Streamer {
		return NewEnvelope(NewOscillator(freq*pitch, d, wave, rate), d, attack, release, rate)
	}

	switch s {
	case SoundExplosion, SoundPlanetExplosion:
		d := 600 * time.Millisecond
		if s == SoundPlanetExplosion {
			d = 900 * time.Millisecond
		}
		return beep.Mix(
			newVolume(note(0, d, 5*time.Millisecond, d-50*time.Millisecond, WaveNoise), 0.6),
			newVolume(note(55, d, 5*time.Millisecond, d/2, WaveSine), 0.5),
		)
	case SoundImpact:
		return note(140, 120*time.Millisecond, 2*time.Millisecond, 100*time.Millisecond, WaveSaw)
	case SoundShield:
		return beep.Seq(
			note(440, 80*time.Millisecond, 5*time.Millisecond, 20*time.Millisecond, WaveSine),
			note(660, 160*time.Millisecond, 5*time.Millisecond, 120*time.Millisecond, WaveSine),
		)
	case SoundLevelStart:
		return beep.Seq(
			note(523.25, 120*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, WaveSquare),
			note(659.25, 120*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, WaveSquare),
			note(783.99, 220*time.Millisecond, 5*time.Millisecond, 150*time.Millisecond, WaveSquare),
		)
	case SoundLevelComplete:
		return beep.Seq(
			note(783.99, 120*time.Millisecond, 5*time.Millisecond, 40*time.Millisecond, WaveSquare),
			note(1046.5, 300*time.Millisecond, 5*time.Millisecond, 220*time.Millisecond, WaveSquare),
		)
	case SoundGameOver:
		return beep.Seq(
			note(392, 250*time.Millisecond, 10*time.Millisecond, 80*time.Millisecond, WaveSaw),
			note(311.13, 250*time.Millisecond, 10*time.Millisecond, 80*time.Millisecond, WaveSaw),
			note(261.63, 600*time.Millisecond, 10*time.Millisecond, 500*time.Millisecond, WaveSaw),
		)
	case SoundBlackHole:
		return note(70, 700*time.Millisecond, 200*time.Millisecond, 400*time.Millisecond, WaveSine)
	case SoundRespawn:
		return beep.Seq(
			note(330, 100*time.Millisecond, 20*time.Millisecond, 30*time.Millisecond, WaveSine),
			note(494, 100*time.Millisecond, 20*time.Millisecond, 30*time.Millisecond, WaveSine),
			note(660, 200*time.Millisecond, 20*time.Millisecond, 150*time.Millisecond, WaveSine),
		)
	case SoundPowerUp:
		return beep.Seq(
			note(987.77, 80*time.Millisecond, 2*time.Millisecond, 40*time.Millisecond, WaveSquare),
			note(1318.51, 200*time.Millisecond, 2*time.Millisecond, 150*time.Millisecond, WaveSquare),
		)
	default:
		return nil
	}
}
