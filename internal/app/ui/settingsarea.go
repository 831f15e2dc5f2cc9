package ui

import (
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	kxwidget "github.com/ErikKalkoken/fyne-kx/widget"
)

// SettingsArea is the settings page. Game options write to the layout
// store's settings bag, app options to the preferences backed settings.
type SettingsArea struct {
	Content fyne.CanvasObject

	developerMode *kxwidget.Switch
	hideSidebar   *kxwidget.Switch
	darkMode      *kxwidget.Switch
	logLevel      *widget.Select
	notifications *kxwidget.Switch
	playerName    *widget.Entry
	sfxVolume     *kxwidget.Slider
	vibration     *kxwidget.Switch
	volume        *kxwidget.Slider
	u             *BaseUI
}

func NewSettingsArea(u *BaseUI) *SettingsArea {
	a := &SettingsArea{u: u}

	a.volume = kxwidget.NewSlider(0, 100)
	a.volume.OnChangeEnded = func(v float64) {
		u.Layout.SetVolume(int(v))
	}
	a.sfxVolume = kxwidget.NewSlider(0, 100)
	a.sfxVolume.OnChangeEnded = func(v float64) {
		u.Layout.SetSfxVolume(int(v))
	}
	a.notifications = kxwidget.NewSwitch(func(on bool) {
		if on != u.Layout.NotificationsEnabled() {
			u.Layout.ToggleNotifications()
		}
	})
	a.darkMode = kxwidget.NewSwitch(func(on bool) {
		if on != u.Layout.DarkMode() {
			u.Layout.ToggleDarkMode()
		}
	})
	a.vibration = kxwidget.NewSwitch(func(on bool) {
		if on != u.Layout.Vibration() {
			u.Layout.ToggleVibration()
		}
	})
	a.hideSidebar = kxwidget.NewSwitch(func(on bool) {
		u.Layout.SetUserSidebarPreference(on)
	})

	a.playerName = widget.NewEntry()
	a.playerName.OnSubmitted = func(name string) {
		u.Settings.SetPlayerName(name)
		u.HomeArea.Refresh()
	}
	a.logLevel = widget.NewSelect(u.Settings.LogLevelNames(), func(l string) {
		u.Settings.SetLogLevel(l)
		slog.SetLogLoggerLevel(u.Settings.LogLevelSlog())
	})
	a.developerMode = kxwidget.NewSwitch(func(on bool) {
		u.Settings.SetDeveloperMode(on)
		if on {
			slog.SetLogLoggerLevel(slog.LevelDebug)
		} else {
			slog.SetLogLoggerLevel(u.Settings.LogLevelSlog())
		}
	})

	game := widget.NewForm(
		widget.NewFormItem("Volume da música", a.volume),
		widget.NewFormItem("Volume dos efeitos", a.sfxVolume),
		widget.NewFormItem("Notificações", a.notifications),
		widget.NewFormItem("Modo escuro", a.darkMode),
		widget.NewFormItem("Vibração", a.vibration),
		widget.NewFormItem("Ocultar menu lateral", a.hideSidebar),
	)
	appForm := widget.NewForm(
		widget.NewFormItem("Nome do personagem", a.playerName),
		widget.NewFormItem("Nível de log", a.logLevel),
		widget.NewFormItem("Modo desenvolvedor", a.developerMode),
	)
	a.Content = container.NewVScroll(container.NewVBox(
		widget.NewLabelWithStyle("Jogo", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		game,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Aplicativo", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		appForm,
	))
	a.Refresh()
	return a
}

// Refresh loads the widget states from the stores.
func (a *SettingsArea) Refresh() {
	a.volume.SetValue(float64(a.u.Layout.Volume()))
	a.sfxVolume.SetValue(float64(a.u.Layout.SfxVolume()))
	a.notifications.SetState(a.u.Layout.NotificationsEnabled())
	a.darkMode.SetState(a.u.Layout.DarkMode())
	a.vibration.SetState(a.u.Layout.Vibration())
	a.hideSidebar.SetState(a.u.Layout.UserPrefersSidebarHidden())
	a.playerName.SetText(a.u.Settings.PlayerName())
	a.logLevel.SetSelected(a.u.Settings.LogLevel())
	a.developerMode.SetState(a.u.Settings.DeveloperMode())
}
