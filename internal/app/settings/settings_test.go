package settings_test

import (
	"log/slog"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"

	"github.com/abarroso/questdeck/internal/app/settings"
	"github.com/abarroso/questdeck/internal/app/testutil"
)

func TestLogLevel(t *testing.T) {
	t.Run("defaults to info", func(t *testing.T) {
		s := settings.New(testutil.NewPreferences())
		assert.Equal(t, "info", s.LogLevel())
		assert.Equal(t, slog.LevelInfo, s.LogLevelSlog())
	})
	t.Run("can set and map a level", func(t *testing.T) {
		s := settings.New(testutil.NewPreferences())
		s.SetLogLevel("debug")
		assert.Equal(t, slog.LevelDebug, s.LogLevelSlog())
	})
	t.Run("unknown level falls back to the default", func(t *testing.T) {
		s := settings.New(testutil.NewPreferences())
		s.SetLogLevel("verbose")
		assert.Equal(t, slog.LevelInfo, s.LogLevelSlog())
	})
	t.Run("names are sorted", func(t *testing.T) {
		s := settings.New(testutil.NewPreferences())
		assert.Equal(t, []string{"debug", "error", "info", "warning"}, s.LogLevelNames())
	})
}

func TestWindowSize(t *testing.T) {
	t.Run("has a default", func(t *testing.T) {
		s := settings.New(testutil.NewPreferences())
		got := s.WindowSize()
		assert.Greater(t, got.Width, float32(0))
		assert.Greater(t, got.Height, float32(0))
	})
	t.Run("round trips", func(t *testing.T) {
		s := settings.New(testutil.NewPreferences())
		s.SetWindowSize(fyne.NewSize(800, 450))
		assert.Equal(t, fyne.NewSize(800, 450), s.WindowSize())
	})
	t.Run("ignores a malformed value", func(t *testing.T) {
		p := testutil.NewPreferences()
		p.Data["window-size"] = []float64{123}
		s := settings.New(p)
		assert.Equal(t, fyne.NewSize(1100, 700), s.WindowSize())
	})
}

func TestKeys(t *testing.T) {
	p := testutil.NewPreferences()
	s := settings.New(p)
	s.SetDeveloperMode(true)
	s.SetLogLevel("debug")
	s.SetPlayerName("Thorin")
	s.SetSessionActive(true)
	s.SetWindowSize(fyne.NewSize(800, 450))
	for _, k := range settings.Keys() {
		p.RemoveValue(k)
	}
	assert.Empty(t, p.Data)
	assert.False(t, s.DeveloperMode())
	assert.Equal(t, "info", s.LogLevel())
	assert.Equal(t, "Aventureiro", s.PlayerName())
	assert.False(t, s.SessionActive())
	assert.Equal(t, fyne.NewSize(1100, 700), s.WindowSize())
}

func TestSession(t *testing.T) {
	s := settings.New(testutil.NewPreferences())
	assert.False(t, s.SessionActive())
	assert.Equal(t, "Aventureiro", s.PlayerName())
	s.SetPlayerName("Thorin")
	s.SetSessionActive(true)
	assert.True(t, s.SessionActive())
	assert.Equal(t, "Thorin", s.PlayerName())
}
