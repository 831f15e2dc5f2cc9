package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/abarroso/questdeck/internal/app"
	iwidget "github.com/abarroso/questdeck/internal/widget"
)

// Sidebar is the navigation rail. Its visibility follows the layout
// store's transient sidebar flag.
type Sidebar struct {
	Content fyne.CanvasObject

	entries map[string]*ttwidget.Button
	u       *BaseUI
}

var sidebarEntries = []struct {
	pageID  string
	tooltip string
}{
	{app.PageHome, "Início"},
	{app.PageBody, "Corpo"},
	{app.PageInventory, "Inventário"},
	{app.PageMap, "Mapa"},
	{app.PageMissions, "Missões"},
	{app.PageSettings, "Ajustes"},
}

func NewSidebar(u *BaseUI) *Sidebar {
	s := &Sidebar{
		entries: map[string]*ttwidget.Button{},
		u:       u,
	}
	box := container.NewVBox()
	for _, e := range sidebarEntries {
		b := ttwidget.NewButtonWithIcon("", iwidget.IconResource(e.pageID), func() {
			u.NavigateTo(e.pageID)
		})
		b.SetToolTip(e.tooltip)
		s.entries[e.pageID] = b
		box.Add(b)
	}
	s.Content = container.NewVBox(box)
	return s
}

// Refresh highlights the active page.
func (s *Sidebar) Refresh() {
	active := s.u.Layout.ActivePageID()
	if active == "" {
		active = app.PageHome
	}
	for id, b := range s.entries {
		if id == active {
			b.Importance = widget.HighImportance
		} else {
			b.Importance = widget.MediumImportance
		}
		b.Refresh()
	}
}
