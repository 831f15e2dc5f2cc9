package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	kxwidget "github.com/ErikKalkoken/fyne-kx/widget"

	"github.com/abarroso/questdeck/internal/app"
	"github.com/abarroso/questdeck/internal/app/dragdrop"
	"github.com/abarroso/questdeck/internal/app/geometry"
	"github.com/abarroso/questdeck/internal/app/layout"
	iwidget "github.com/abarroso/questdeck/internal/widget"
)

// HomeArea is the free placement canvas: floating shortcut buttons and the
// character marker, laid out from their center relative coordinates.
type HomeArea struct {
	Content fyne.CanvasObject

	board      *fyne.Container
	buttonDrag *dragdrop.ButtonController
	buttons    map[*iwidget.FloatingButton]app.ButtonItem
	charDrag   *dragdrop.CharacterController
	editSwitch *kxwidget.Switch
	marker     *iwidget.MarkerButton
	u          *BaseUI
}

func NewHomeArea(u *BaseUI) *HomeArea {
	a := &HomeArea{
		buttonDrag: dragdrop.NewButtonController(u.Layout),
		buttons:    map[*iwidget.FloatingButton]app.ButtonItem{},
		charDrag:   dragdrop.NewCharacterController(u.Layout),
		u:          u,
	}
	a.board = container.New(placementLayout{a: a})

	a.marker = iwidget.NewMarkerButton(u.Settings.PlayerName(), func() {
		u.NavigateTo(app.PageBody)
	})
	a.marker.OnMoved = a.onMarkerMoved

	a.editSwitch = kxwidget.NewSwitch(func(bool) {
		u.Layout.ToggleEditMode()
	})
	addButton := widget.NewButtonWithIcon("Adicionar atalho", theme.ContentAddIcon(), a.showAddButtonDialog)
	toolbar := container.NewHBox(
		widget.NewLabel("Modo edição"), a.editSwitch,
		addButton,
		widget.NewButtonWithIcon("", theme.MenuIcon(), u.Layout.ToggleSidebar),
	)
	a.Content = container.NewBorder(toolbar, nil, nil, nil, a.board)

	u.Layout.Changed().AddListener(func(_ context.Context, c layout.Change) {
		switch c.Aspect {
		case layout.AspectButtons, layout.AspectCharacter, layout.AspectEditMode:
			fyne.Do(a.Refresh)
		}
	})
	a.Refresh()
	return a
}

// Refresh rebuilds the board from the layout store.
func (a *HomeArea) Refresh() {
	edit := a.u.Layout.IsEditMode()
	a.editSwitch.SetState(edit)
	a.marker.SetEditMode(edit)
	a.marker.SetName(a.u.Settings.PlayerName())

	clear(a.buttons)
	objects := make([]fyne.CanvasObject, 0, len(a.buttons)+1)
	for _, item := range a.u.Layout.Buttons() {
		b := a.makeButton(item)
		b.SetEditMode(edit)
		a.buttons[b] = item
		objects = append(objects, b)
	}
	objects = append(objects, a.marker)
	a.board.Objects = objects
	a.board.Refresh()
}

func (a *HomeArea) makeButton(item app.ButtonItem) *iwidget.FloatingButton {
	b := iwidget.NewFloatingButton(item.Label, item.Icon, func() {
		a.u.NavigateTo(pageForButton(item))
	})
	b.OnMoved = func(center fyne.Position) {
		a.buttonDrag.End(item.ID, center, a.board.Size())
	}
	b.OnRemove = func() {
		dialog.NewConfirm(
			"Remover atalho",
			fmt.Sprintf("Remover o atalho \"%s\" da tela inicial?", item.Label),
			func(confirmed bool) {
				if confirmed {
					a.u.Layout.RemoveButton(item.ID)
				}
			},
			a.u.Window,
		).Show()
	}
	return b
}

func (a *HomeArea) onMarkerMoved(center fyne.Position) {
	a.charDrag.End(center, a.board.Size())
}

func (a *HomeArea) showAddButtonDialog() {
	label := widget.NewEntry()
	label.Validator = requiredValidator("Informe um nome")
	icon := widget.NewSelect([]string{"body", "home", "inventory", "map", "missions", "settings"}, nil)
	icon.SetSelected("map")
	items := []*widget.FormItem{
		widget.NewFormItem("Nome", label),
		widget.NewFormItem("Ícone", icon),
	}
	d := dialog.NewForm("Novo atalho", "Criar", "Cancelar", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		a.u.Layout.AddButton(app.ButtonItem{
			ID:    app.NewID(),
			Label: label.Text,
			Icon:  icon.Selected,
			X:     geometry.ZoneHalfWidth + geometry.SnapMargin,
			Y:     0,
		})
		a.u.Snackbar.Show("Atalho criado")
	}, a.u.Window)
	d.Show()
}

// pageForButton maps a shortcut to its target page, falling back to the
// label as routing key for buttons created before icons existed.
func pageForButton(item app.ButtonItem) string {
	key := item.Icon
	if key == "" {
		key = app.Titler.String(item.Label)
	}
	switch key {
	case "body", "Corpo":
		return app.PageBody
	case "inventory", "Inventário":
		return app.PageInventory
	case "map", "Mapa":
		return app.PageMap
	case "missions", "Missões":
		return app.PageMissions
	case "settings", "Ajustes":
		return app.PageSettings
	}
	return app.PageHome
}

// placementLayout positions every child from its center relative
// coordinates. Widgets that are mid drag are left alone so a store refresh
// does not yank them out from under the pointer.
type placementLayout struct {
	a *HomeArea
}

func (l placementLayout) MinSize(_ []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(2*geometry.ZoneHalfWidth, 2*geometry.ZoneHalfHeight)
}

func (l placementLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	for _, o := range objects {
		var rel app.Point
		switch w := o.(type) {
		case *iwidget.FloatingButton:
			if w.IsDragging() {
				continue
			}
			rel = l.a.buttons[w].Position()
		case *iwidget.MarkerButton:
			if w.IsDragging() {
				continue
			}
			rel = l.a.u.Layout.CharacterPosition()
		default:
			continue
		}
		ms := o.MinSize()
		o.Resize(ms)
		center := geometry.ToAbsolute(rel, size)
		o.Move(fyne.NewPos(center.X-ms.Width/2, center.Y-ms.Height/2))
	}
}
