// internal/state/deps.go
package state

import (
	"github.com/google/uuid"

	"go-space-arcade/internal/app"
	"go-space-arcade/internal/audio"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/interfaces"
	"go-space-arcade/internal/logger"
	"go-space-arcade/internal/storage"
)

// Deps: общие зависимости экранов.
type Deps struct {
	Settings config.Settings
	Log      logger.Log
	Store    *storage.FileStore  // nil: без сохранений
	Sound    *audio.SoundManager // nil: без звука
}

// newSession собирает новую игру: свежая сессия, прогресс из сохранения, звук на событиях.
func (d Deps) newSession(input interfaces.ForceProvider) (*app.Game, logger.Log) {
	sessionID := uuid.NewString()
	log := d.Log.With(logger.String("session_id", sessionID))
	gs := component.NewGameState(sessionID)

	if d.Store != nil {
		d.Store.Restore(gs, log)
	}

	game := app.NewGame(app.OptionsFromSettings(d.Settings), input, gs, log)
	if d.Sound != nil {
		d.Sound.Subscribe(game.EventDispatcher)
	}
	game.Start()
	return game, log
}
