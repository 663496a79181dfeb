// cmd/game/main.go
package main

import (
	"errors"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-space-arcade/internal/audio"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/logger"
	"go-space-arcade/internal/state"
	"go-space-arcade/internal/storage"
	"go-space-arcade/internal/utils"
)

const startFromGame = false // true: начинать сразу с игры, false, с заставки

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	width, height  int
}

// saver: экраны, которым есть что сохранить при закрытии окна.
type saver interface{ Save() }

func (a *AppGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if s, ok := a.stateMachine.Current().(saver); ok {
			s.Save()
		}
		return ebiten.Termination
	}

	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	settings, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	level, err := logger.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	zl, err := logger.New(level)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	if settings.PprofAddr != "" {
		go func() {
			zl.Warn("pprof stopped", logger.Err(http.ListenAndServe(settings.PprofAddr, nil)))
		}()
	}

	deps := state.Deps{Settings: settings, Log: zl}
	if settings.SavePath != "" {
		deps.Store = storage.NewFileStore(settings.SavePath)
	}
	if settings.AudioEnabled {
		sound := audio.NewSoundManager(settings.AudioVolume, utils.NewPRNGService(utils.SeedFromString(settings.Seed)), zl)
		if err := sound.Initialize(); err != nil {
			zl.Warn("audio disabled", logger.Err(err))
		} else {
			defer sound.Cleanup()
			deps.Sound = sound
		}
	}

	sm := state.NewStateMachine()
	if startFromGame {
		sm.SetState(state.NewPlayState(sm, deps))
	} else {
		sm.SetState(state.NewMenuState(sm, deps, nil))
	}
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		width:          settings.ScreenWidth,
		height:         settings.ScreenHeight,
	}

	ebiten.SetWindowSize(settings.ScreenWidth, settings.ScreenHeight)
	ebiten.SetWindowTitle("Space Arcade")
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(settings.TickRate)
	zl.Info("starting", logger.String("seed", settings.Seed), logger.Int("tick_rate", settings.TickRate))
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		zl.Fatal("game stopped", logger.Err(err))
	}
}
