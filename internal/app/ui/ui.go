// Package ui contains the user interface.
package ui

import (
	"context"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/abarroso/questdeck/internal/app"
	"github.com/abarroso/questdeck/internal/app/body"
	"github.com/abarroso/questdeck/internal/app/layout"
	"github.com/abarroso/questdeck/internal/app/quest"
	"github.com/abarroso/questdeck/internal/app/settings"
	"github.com/abarroso/questdeck/internal/app/snapshot"
	iwidget "github.com/abarroso/questdeck/internal/widget"
)

type BaseUI struct {
	FyneApp fyne.App
	Window  fyne.Window

	Settings  *settings.AppSettings
	Layout    *layout.Store
	Quests    *quest.Store
	Body      *body.Store
	Snapshots *snapshot.Service

	HomeArea       *HomeArea
	QuestBoardArea *QuestBoardArea
	BodyArea       *BodyArea
	InventoryArea  *StubArea
	MapArea        *StubArea
	MissionsArea   *StubArea
	SettingsArea   *SettingsArea
	Sidebar        *Sidebar
	Snackbar       *iwidget.Snackbar

	homePage *container.Split
	pages    *fyne.Container
	content  *fyne.Container
}

func NewBaseUI(fyneApp fyne.App, st *settings.AppSettings, ls *layout.Store, qs *quest.Store, bs *body.Store, sn *snapshot.Service) *BaseUI {
	u := &BaseUI{
		FyneApp:   fyneApp,
		Settings:  st,
		Layout:    ls,
		Quests:    qs,
		Body:      bs,
		Snapshots: sn,
	}
	u.Window = fyneApp.NewWindow(u.AppName())
	u.Window.Resize(st.WindowSize())
	u.Snackbar = iwidget.NewSnackbar(u.Window)

	u.HomeArea = NewHomeArea(u)
	u.QuestBoardArea = NewQuestBoardArea(u)
	u.BodyArea = NewBodyArea(u)
	u.InventoryArea = NewStubArea(u, "Inventário", "O seu saque aparecerá aqui.")
	u.MapArea = NewStubArea(u, "Mapa", "O mundo ainda não foi explorado.")
	u.MissionsArea = NewStubArea(u, "Missões", "O quadro de missões da guilda está vazio.")
	u.SettingsArea = NewSettingsArea(u)
	u.Sidebar = NewSidebar(u)
	// The quest board lives on the home page, below the placement
	// canvas, so it is always one click away like the rest of the
	// dashboard.
	u.homePage = container.NewVSplit(u.HomeArea.Content, u.QuestBoardArea.Content)
	u.homePage.SetOffset(0.55)
	return u
}

func (u *BaseUI) AppName() string {
	name := u.FyneApp.Metadata().Name
	if name == "" {
		return "QuestDeck"
	}
	return name
}

// Init restores persisted state and builds the window content. Must be
// called once before [BaseUI.ShowAndRun].
func (u *BaseUI) Init() {
	u.Snapshots.Restore()
	u.Snapshots.Start()
	u.pages = container.NewStack()
	u.content = container.NewBorder(nil, nil, u.Sidebar.Content, nil, u.pages)
	u.Window.SetContent(fynetooltip.AddWindowToolTipLayer(u.content, u.Window.Canvas()))
	u.Layout.Changed().AddListener(u.onLayoutChanged)
	u.showActivePage()
	u.refreshSidebar()
}

func (u *BaseUI) onLayoutChanged(_ context.Context, c layout.Change) {
	switch c.Aspect {
	case layout.AspectPage:
		fyne.Do(func() {
			u.showActivePage()
			u.refreshSidebar()
		})
	case layout.AspectSidebar, layout.AspectSidebarPref:
		fyne.Do(u.refreshSidebar)
	}
}

// NavigateTo selects a page in the layout store. The content switches
// through the store's change signal, so programmatic and user navigation
// take the same path.
func (u *BaseUI) NavigateTo(pageID string) {
	u.Layout.SetActivePage(pageID)
}

func (u *BaseUI) showActivePage() {
	var page fyne.CanvasObject
	switch u.Layout.ActivePageID() {
	case app.PageBody:
		u.BodyArea.Refresh()
		page = u.BodyArea.Content
	case app.PageInventory:
		page = u.InventoryArea.Content
	case app.PageMap:
		page = u.MapArea.Content
	case app.PageMissions:
		page = u.MissionsArea.Content
	case app.PageSettings:
		u.SettingsArea.Refresh()
		page = u.SettingsArea.Content
	default:
		u.HomeArea.Refresh()
		u.QuestBoardArea.Refresh()
		page = u.homePage
	}
	u.pages.Objects = []fyne.CanvasObject{page}
	u.pages.Refresh()
}

func (u *BaseUI) refreshSidebar() {
	u.Sidebar.Refresh()
	if u.Layout.ShowSidebar() {
		u.Sidebar.Content.Show()
	} else {
		u.Sidebar.Content.Hide()
	}
	u.content.Refresh()
}

// ShowAndRun shows the UI and runs it (blocking).
func (u *BaseUI) ShowAndRun() {
	u.FyneApp.Lifecycle().SetOnStarted(func() {
		u.Snackbar.Start()
		slog.Info("App started")
	})
	u.FyneApp.Lifecycle().SetOnStopped(func() {
		u.Settings.SetWindowSize(u.Window.Canvas().Size())
		u.Snapshots.Flush()
		slog.Info("App shut down complete")
	})
	if !u.Settings.SessionActive() {
		u.showSessionGate()
	}
	u.Window.ShowAndRun()
}
