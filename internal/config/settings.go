// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings оборачивает все ошибки проверки настроек.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings: настройки запуска, читаются из YAML и перекрываются флагами.
type Settings struct {
	ScreenWidth          int           `yaml:"screen_width"`
	ScreenHeight         int           `yaml:"screen_height"`
	Seed                 string        `yaml:"seed"`
	TickRate             int           `yaml:"tick_rate"`
	LevelTransitionDelay float64       `yaml:"level_transition_delay"`
	MaxParticles         int           `yaml:"max_particles"`
	LogLevel             string        `yaml:"log_level"`
	AudioEnabled         bool          `yaml:"audio_enabled"`
	AudioVolume          float64       `yaml:"audio_volume"`
	SavePath             string        `yaml:"save_path"`
	PprofAddr            string        `yaml:"pprof_addr"`
	SpectatorAddr        string        `yaml:"spectator_addr"`
	SpectatorInterval    time.Duration `yaml:"spectator_interval"`
	JoystickDeadZone     float64       `yaml:"joystick_dead_zone"`
	ShieldRam            bool          `yaml:"shield_ram"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	return Settings{
		ScreenWidth:          ScreenWidth,
		ScreenHeight:         ScreenHeight,
		TickRate:             TickRate,
		LevelTransitionDelay: LevelTransitionDelay,
		MaxParticles:         MaxParticles,
		LogLevel:             "info",
		AudioEnabled:         true,
		AudioVolume:          0.7,
		SavePath:             "space-arcade-save.json",
		SpectatorInterval:    100 * time.Millisecond,
		JoystickDeadZone:     JoystickDeadZone,
	}
}

// LoadSettings читает YAML поверх значений по умолчанию.
func LoadSettings(r io.Reader) (Settings, error) {
	s := DefaultSettings()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, fmt.Errorf("decode settings: %w", err)
	}
	return s, s.Validate()
}

// LoadSettingsFile: LoadSettings для файла. Пустой путь даёт значения по умолчанию.
func LoadSettingsFile(path string) (Settings, error) {
	if path == "" {
		return DefaultSettings(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return DefaultSettings(), fmt.Errorf("open settings %s: %w", path, err)
	}
	defer f.Close()
	return LoadSettings(f)
}

// Validate сообщает обо всех нарушениях сразу.
func (s Settings) Validate() error {
	var errs []error
	if s.ScreenWidth <= 0 || s.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", s.ScreenWidth, s.ScreenHeight))
	}
	if s.TickRate <= 0 || s.TickRate > 1000 {
		errs = append(errs, fmt.Errorf("tick_rate must be in (0, 1000], got %d", s.TickRate))
	}
	if s.LevelTransitionDelay < 0 {
		errs = append(errs, fmt.Errorf("level_transition_delay must be >= 0, got %v", s.LevelTransitionDelay))
	}
	if s.MaxParticles <= 0 {
		errs = append(errs, fmt.Errorf("max_particles must be positive, got %d", s.MaxParticles))
	}
	if s.AudioVolume < 0 || s.AudioVolume > 1 {
		errs = append(errs, fmt.Errorf("audio_volume must be in [0, 1], got %v", s.AudioVolume))
	}
	if s.JoystickDeadZone < 0 || s.JoystickDeadZone > 0.5 {
		errs = append(errs, fmt.Errorf("joystick_dead_zone must be in [0, 0.5], got %v", s.JoystickDeadZone))
	}
	if s.SpectatorInterval <= 0 {
		errs = append(errs, fmt.Errorf("spectator_interval must be positive, got %v", s.SpectatorInterval))
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidSettings, errors.Join(errs...))
}

// TickInterval: период тика для Runner.
func (s Settings) TickInterval() time.Duration {
	return time.Second / time.Duration(s.TickRate)
}
