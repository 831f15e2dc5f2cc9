package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// showSessionGate asks for a character name before the first session.
// There is no remote account behind this; the name is stored locally.
func (u *BaseUI) showSessionGate() {
	name := widget.NewEntry()
	name.SetText(u.Settings.PlayerName())
	name.Validator = requiredValidator("Informe um nome")
	items := []*widget.FormItem{
		widget.NewFormItem("Nome do personagem", name),
	}
	d := dialog.NewForm("Começar aventura", "Entrar", "Sair", items, func(confirmed bool) {
		if !confirmed {
			u.Window.Close()
			return
		}
		u.Settings.SetPlayerName(name.Text)
		u.Settings.SetSessionActive(true)
		u.HomeArea.Refresh()
	}, u.Window)
	d.Resize(fyne.NewSize(350, 150))
	d.Show()
}
