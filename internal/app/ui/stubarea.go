package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StubArea is a placeholder page for parts of the dashboard that only
// exist as mock content.
type StubArea struct {
	Content fyne.CanvasObject

	u *BaseUI
}

func NewStubArea(u *BaseUI, title, hint string) *StubArea {
	a := &StubArea{u: u}
	back := widget.NewButton("Voltar", func() {
		u.NavigateTo("")
	})
	a.Content = container.NewBorder(
		nil, container.NewCenter(back), nil, nil,
		container.NewCenter(container.NewVBox(
			widget.NewLabelWithStyle(title, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			widget.NewLabel(hint),
		)),
	)
	return a
}
