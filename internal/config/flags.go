// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
)

// ParseFlags читает -config, затем накладывает поверх файла только явно заданные флаги.
func ParseFlags(fs *flag.FlagSet, args []string) (Settings, error) {
	cli := DefaultSettings()
	path := fs.String("config", "", "path to YAML settings file")
	fs.IntVar(&cli.ScreenWidth, "width", cli.ScreenWidth, "screen width")
	fs.IntVar(&cli.ScreenHeight, "height", cli.ScreenHeight, "screen height")
	fs.StringVar(&cli.Seed, "seed", cli.Seed, "random seed string (empty = time based)")
	fs.IntVar(&cli.TickRate, "tick-rate", cli.TickRate, "simulation ticks per second")
	fs.Float64Var(&cli.LevelTransitionDelay, "level-delay", cli.LevelTransitionDelay, "pause between levels, seconds")
	fs.IntVar(&cli.MaxParticles, "max-particles", cli.MaxParticles, "particle cap")
	fs.StringVar(&cli.LogLevel, "log-level", cli.LogLevel, "debug, info, warn, error")
	fs.BoolVar(&cli.AudioEnabled, "audio", cli.AudioEnabled, "enable sound")
	fs.Float64Var(&cli.AudioVolume, "volume", cli.AudioVolume, "master volume 0..1")
	fs.StringVar(&cli.SavePath, "save", cli.SavePath, "progress file (empty = no saves)")
	fs.StringVar(&cli.PprofAddr, "pprof", cli.PprofAddr, "pprof listen address (empty = off)")
	fs.StringVar(&cli.SpectatorAddr, "spectate", cli.SpectatorAddr, "spectator websocket listen address (empty = off)")
	fs.DurationVar(&cli.SpectatorInterval, "spectate-interval", cli.SpectatorInterval, "spectator snapshot period")
	fs.Float64Var(&cli.JoystickDeadZone, "dead-zone", cli.JoystickDeadZone, "joystick dead zone 0..0.5")
	fs.BoolVar(&cli.ShieldRam, "shield-ram", cli.ShieldRam, "shielded ship damages enemies it touches")

	if err := fs.Parse(args); err != nil {
		return cli, err
	}

	s, err := LoadSettingsFile(*path)
	if err != nil {
		return s, err
	}

	overrides := map[string]func(){
		"width":             func() { s.ScreenWidth = cli.ScreenWidth },
		"height":            func() { s.ScreenHeight = cli.ScreenHeight },
		"seed":              func() { s.Seed = cli.Seed },
		"tick-rate":         func() { s.TickRate = cli.TickRate },
		"level-delay":       func() { s.LevelTransitionDelay = cli.LevelTransitionDelay },
		"max-particles":     func() { s.MaxParticles = cli.MaxParticles },
		"log-level":         func() { s.LogLevel = cli.LogLevel },
		"audio":             func() { s.AudioEnabled = cli.AudioEnabled },
		"volume":            func() { s.AudioVolume = cli.AudioVolume },
		"save":              func() { s.SavePath = cli.SavePath },
		"pprof":             func() { s.PprofAddr = cli.PprofAddr },
		"spectate":          func() { s.SpectatorAddr = cli.SpectatorAddr },
		"spectate-interval": func() { s.SpectatorInterval = cli.SpectatorInterval },
		"dead-zone":         func() { s.JoystickDeadZone = cli.JoystickDeadZone },
		"shield-ram":        func() { s.ShieldRam = cli.ShieldRam },
	}
	fs.Visit(func(f *flag.Flag) {
		if apply, ok := overrides[f.Name]; ok {
			apply()
		}
	})

	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("settings: %w", err)
	}
	return s, nil
}
