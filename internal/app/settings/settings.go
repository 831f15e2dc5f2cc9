// Package settings provides typed access to the application settings.
//
// These are app level concerns like window geometry and log level. Game
// facing options (volume, dark mode, notifications) live in the layout
// store and are persisted with its snapshot instead.
package settings

import (
	"log/slog"
	"maps"
	"slices"

	"fyne.io/fyne/v2"
)

const (
	settingDeveloperMode        = "developer-mode"
	settingDeveloperModeDefault = false
	settingLogLevel             = "logLevel"
	settingLogLevelDefault      = "info"
	settingPlayerName           = "player-name"
	settingSessionActive        = "session-active"
	settingWindowHeightDefault  = 700
	settingWindowSize           = "window-size"
	settingWindowWidthDefault   = 1100
)

type AppSettings struct {
	p fyne.Preferences
}

func New(p fyne.Preferences) *AppSettings {
	return &AppSettings{p: p}
}

func (s AppSettings) DeveloperMode() bool {
	return s.p.BoolWithFallback(settingDeveloperMode, settingDeveloperModeDefault)
}

func (s AppSettings) SetDeveloperMode(v bool) {
	s.p.SetBool(settingDeveloperMode, v)
}

var logLevelName2Level = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"error":   slog.LevelError,
	"info":    slog.LevelInfo,
	"warning": slog.LevelWarn,
}

func (s AppSettings) LogLevelNames() []string {
	x := slices.Collect(maps.Keys(logLevelName2Level))
	slices.Sort(x)
	return x
}

func (s AppSettings) LogLevelSlog() slog.Level {
	l, ok := logLevelName2Level[s.LogLevel()]
	if !ok {
		l = logLevelName2Level[settingLogLevelDefault]
	}
	return l
}

func (s AppSettings) LogLevel() string {
	return s.p.StringWithFallback(settingLogLevel, settingLogLevelDefault)
}

func (s AppSettings) LogLevelDefault() string {
	return settingLogLevelDefault
}

func (s AppSettings) SetLogLevel(l string) {
	s.p.SetString(settingLogLevel, l)
}

// SessionActive reports whether a local play session exists. There is no
// remote account; the session gate only keeps the dashboard behind an
// explicit start.
func (s AppSettings) SessionActive() bool {
	return s.p.Bool(settingSessionActive)
}

func (s AppSettings) SetSessionActive(v bool) {
	s.p.SetBool(settingSessionActive, v)
}

func (s AppSettings) PlayerName() string {
	return s.p.StringWithFallback(settingPlayerName, "Aventureiro")
}

func (s AppSettings) SetPlayerName(v string) {
	s.p.SetString(settingPlayerName, v)
}

func (s AppSettings) WindowSize() fyne.Size {
	x := s.p.FloatList(settingWindowSize)
	if len(x) < 2 {
		return fyne.NewSize(settingWindowWidthDefault, settingWindowHeightDefault)
	}
	return fyne.NewSize(float32(x[0]), float32(x[1]))
}

func (s AppSettings) SetWindowSize(v fyne.Size) {
	s.p.SetFloatList(settingWindowSize, []float64{float64(v.Width), float64(v.Height)})
}

// Keys returns all setting keys. Mostly to know what to delete on a reset.
func Keys() []string {
	return []string{
		settingDeveloperMode,
		settingLogLevel,
		settingPlayerName,
		settingSessionActive,
		settingWindowSize,
	}
}
