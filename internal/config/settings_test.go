package config

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	require.NoError(t, DefaultSettings().Validate())
	assert.Equal(t, time.Second/60, DefaultSettings().TickInterval())
}

func TestLoadSettingsOverridesDefaults(t *testing.T) {
	src := `
seed: nebula
tick_rate: 30
level_transition_delay: 0
spectator_interval: 250ms
`
	s, err := LoadSettings(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, "nebula", s.Seed)
	assert.Equal(t, 30, s.TickRate)
	assert.Zero(t, s.LevelTransitionDelay)
	assert.Equal(t, 250*time.Millisecond, s.SpectatorInterval)
	assert.Equal(t, ScreenWidth, s.ScreenWidth)
}

func TestLoadSettingsEmptyInput(t *testing.T) {
	s, err := LoadSettings(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestValidateJoinsAllProblems(t *testing.T) {
	s := DefaultSettings()
	s.TickRate = 0
	s.AudioVolume = 2
	s.JoystickDeadZone = 0.9

	err := s.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidSettings))
	msg := err.Error()
	assert.Contains(t, msg, "tick_rate")
	assert.Contains(t, msg, "audio_volume")
	assert.Contains(t, msg, "joystick_dead_zone")
}

func TestLoadSettingsFileMissing(t *testing.T) {
	_, err := LoadSettingsFile("/nonexistent/settings.yaml")
	assert.Error(t, err)

	s, err := LoadSettingsFile("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)
}

func TestShieldRamIsOptIn(t *testing.T) {
	assert.False(t, DefaultSettings().ShieldRam)

	s, err := LoadSettings(strings.NewReader("shield_ram: true\n"))
	require.NoError(t, err)
	assert.True(t, s.ShieldRam)
}
