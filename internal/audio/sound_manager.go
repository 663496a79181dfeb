package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"go-space-arcade/internal/event"
	"go-space-arcade/internal/logger"
	"go-space-arcade/internal/utils"
	pkgutils "go-space-arcade/pkg/utils"
)

const sampleRate = beep.SampleRate(44100)

const (
	engineVolumeRate = 2.0  // изменение громкости двигателя в секунду
	engineThreshold  = 0.1  // ниже этого двигатель молчит
	engineBaseFreq   = 65.0 // Гц на нулевой скорости
)

// SoundManager озвучивает события игры и гул двигателя.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      float64
	rng         *utils.PRNGService
	log         logger.Log
	initialized bool
	// play подменяется в тестах
	play func(s Sound, streamer beep.Streamer)

	engineVolume float64
	engineCtrl   *beep.Ctrl
	engineGain   *effects.Volume
}

func NewSoundManager(master float64, rng *utils.PRNGService, log logger.Log) *SoundManager {
	sm := &SoundManager{
		mixer:  &beep.Mixer{},
		master: pkgutils.Clamp01(master),
		rng:    rng,
		log:    log,
	}
	sm.play = sm.mix
	return sm
}

// Initialize открывает устройство вывода.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup глушит всё и отпускает микшер.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.engineCtrl, sm.engineGain = nil, nil
	sm.initialized = false
}

// Subscribe подписывает менеджер на игровые события.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm,
		event.PlanetHit, event.PlanetDestroyed, event.EnemyDestroyed, event.EnemyConsumed,
		event.EnemyAttack, event.ShipDestroyed, event.ShipRespawned, event.ShieldActivated,
		event.PowerUpCollected, event.LevelStarted, event.LevelCompleted, event.GameOver,
	)
}

// OnEvent: реакция на событие
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.PlanetHit, event.EnemyAttack:
		sm.Play(SoundImpact, 0.8+sm.rng.Float64()*0.4)
	case event.PlanetDestroyed:
		sm.Play(SoundPlanetExplosion, 0.9+sm.rng.Float64()*0.2)
	case event.EnemyDestroyed, event.ShipDestroyed:
		sm.Play(SoundExplosion, 1)
	case event.EnemyConsumed:
		sm.Play(SoundBlackHole, 0.7+sm.rng.Float64()*0.6)
	case event.ShipRespawned:
		sm.Play(SoundRespawn, 1)
	case event.ShieldActivated:
		sm.Play(SoundShield, 1)
	case event.PowerUpCollected:
		sm.Play(SoundPowerUp, 1)
	case event.LevelStarted:
		sm.Play(SoundLevelStart, 1)
	case event.LevelCompleted:
		sm.Play(SoundLevelComplete, 1)
	case event.GameOver:
		sm.Play(SoundGameOver, 1)
	}
}

// Play запускает эффект с заданной высотой.
func (sm *SoundManager) Play(s Sound, pitch float64) {
	streamer := Effect(s, pitch, sampleRate)
	if streamer == nil {
		return
	}
	sm.play(s, newVolume(streamer, soundVolumes[s]*sm.master))
}

func (sm *SoundManager) mix(_ Sound, streamer beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// EngineTarget: целевая громкость двигателя по скорости и свечению сопла.
func EngineTarget(speed, glow float64) float64 {
	return math.Min(1, speed/15+glow*0.3)
}

// UpdateEngine плавно ведёт громкость двигателя к цели.
func (sm *SoundManager) UpdateEngine(speed, glow, deltaTime float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.engineVolume = utils.Approach(sm.engineVolume, EngineTarget(speed, glow), deltaTime*engineVolumeRate)
	if !sm.initialized {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()
	switch {
	case sm.engineCtrl == nil && sm.engineVolume > engineThreshold:
		sm.engineGain = newVolume(NewOscillator(engineBaseFreq, 0, WaveSaw, sampleRate), 0)
		sm.engineCtrl = &beep.Ctrl{Streamer: sm.engineGain}
		sm.mixer.Add(sm.engineCtrl)
	case sm.engineCtrl != nil && sm.engineVolume < engineThreshold:
		sm.engineCtrl.Streamer = nil
		sm.engineCtrl, sm.engineGain = nil, nil
	}
	if sm.engineGain != nil {
		setVolume(sm.engineGain, sm.engineVolume*0.25*sm.master)
	}
}

func (sm *SoundManager) EngineVolume() float64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.engineVolume
}

// SetPaused глушит вывод целиком (пауза игры).
func (sm *SoundManager) SetPaused(paused bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if !sm.initialized {
		return
	}
	var err error
	if paused {
		err = speaker.Suspend()
	} else {
		err = speaker.Resume()
	}
	if err != nil {
		sm.log.Warn("audio suspend/resume failed", logger.Bool("paused", paused), logger.Err(err))
	}
}
