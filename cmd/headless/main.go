// cmd/headless/main.go
// Безголовый запуск: симуляция на таймере, автопилот, наблюдатели по websocket
// и, по желанию, картинка в терминале.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"go-space-arcade/internal/app"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/input"
	"go-space-arcade/internal/logger"
	"go-space-arcade/internal/spectate"
	"go-space-arcade/internal/storage"
	"go-space-arcade/internal/tui"
	"go-space-arcade/pkg/physics"
)

func main() {
	useTUI := flag.Bool("tui", false, "draw the game in the terminal")
	logFile := flag.String("log-file", "", "log destination (default stderr, space-arcade.log with -tui)")
	settings, err := config.ParseFlags(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	level, err := logger.ParseLevel(settings.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	output := *logFile
	if output == "" {
		output = "stderr"
		if *useTUI {
			output = "space-arcade.log"
		}
	}
	zl, err := logger.NewWithPaths(level, output)
	if err != nil {
		log.Fatal(err)
	}
	defer zl.Sync()

	if err := run(settings, *useTUI, zl); err != nil {
		zl.Error("headless run failed", logger.Err(err))
		os.Exit(1)
	}
}

func run(settings config.Settings, useTUI bool, zl logger.Log) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessionID := uuid.NewString()
	sessionLog := zl.With(logger.String("session_id", sessionID))
	gs := component.NewGameState(sessionID)

	var store *storage.FileStore
	if settings.SavePath != "" {
		store = storage.NewFileStore(settings.SavePath)
		store.Restore(gs, sessionLog)
	}

	keys := tui.NewKeyInput()
	game := app.NewGame(app.OptionsFromSettings(settings), input.NewStatic(physics.Vec2{}, false), gs, sessionLog)
	game.ShipSystem.SetInput(input.Merge{keys, input.NewAutoPilot(game.World)})
	game.Start()

	runner := app.NewRunner(game, settings.TickInterval(), sessionLog)
	g, gctx := errgroup.WithContext(ctx)

	// Конец игры останавливает остальных участников группы.
	runCtx, finish := context.WithCancel(gctx)
	defer finish()
	g.Go(func() error {
		defer finish()
		return runner.Run(runCtx)
	})

	if settings.SpectatorAddr != "" {
		server := spectate.NewServer(settings.SpectatorAddr, game, settings.SpectatorInterval, sessionLog)
		g.Go(func() error { return server.Run(runCtx) })
	}
	if settings.PprofAddr != "" {
		go func() {
			sessionLog.Warn("pprof stopped", logger.Err(http.ListenAndServe(settings.PprofAddr, nil)))
		}()
	}
	if useTUI {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		if err := screen.Init(); err != nil {
			return err
		}
		defer screen.Fini()
		term := tui.NewTerminal(screen, keys, game, runner, time.Second/30, sessionLog)
		g.Go(func() error { return term.Run(runCtx) })
	}

	err := g.Wait()
	if errors.Is(err, tui.ErrQuit) {
		err = nil
	}

	snap := game.Snapshot()
	sessionLog.Info("session finished",
		logger.Any("tick", snap.Tick),
		logger.String("phase", snap.Phase),
		logger.Int("score", snap.Progress.Score),
		logger.Int("level", snap.Progress.Level))

	if store != nil {
		// Runner уже остановлен, мир можно читать напрямую.
		if saveErr := store.Save(storage.Capture(game.World.GameState, time.Now())); saveErr != nil {
			sessionLog.Error("failed to save progress", logger.Err(saveErr))
		} else {
			sessionLog.Info("progress saved", logger.String("path", store.Path()))
		}
	}
	return err
}
