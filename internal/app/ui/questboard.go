package ui

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/abarroso/questdeck/internal/app"
	"github.com/abarroso/questdeck/internal/app/dragdrop"
	"github.com/abarroso/questdeck/internal/app/quest"
	iwidget "github.com/abarroso/questdeck/internal/widget"
)

// QuestBoardArea is the kanban board with one column per quest status.
// Cards are dragged between columns; the drop column is found by hit
// testing the release point against the live column rectangles.
type QuestBoardArea struct {
	Content fyne.CanvasObject

	cardDrag *dragdrop.CardController
	cards    map[app.QuestStatus]*fyne.Container
	frames   map[app.QuestStatus]fyne.CanvasObject
	headers  map[app.QuestStatus]*widget.Label
	u        *BaseUI
}

func NewQuestBoardArea(u *BaseUI) *QuestBoardArea {
	a := &QuestBoardArea{
		cardDrag: dragdrop.NewCardController(u.Quests),
		cards:    map[app.QuestStatus]*fyne.Container{},
		frames:   map[app.QuestStatus]fyne.CanvasObject{},
		headers:  map[app.QuestStatus]*widget.Label{},
		u:        u,
	}
	columns := make([]fyne.CanvasObject, 0, 3)
	for _, st := range app.QuestStatuses() {
		h := widget.NewLabelWithStyle(st.Display(), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
		cc := container.NewVBox()
		f := container.NewBorder(
			container.NewVBox(h, widget.NewSeparator()), nil, nil, nil,
			container.NewVScroll(cc),
		)
		a.cards[st] = cc
		a.frames[st] = f
		a.headers[st] = h
		columns = append(columns, f)
	}
	add := widget.NewButtonWithIcon("Nova missão", theme.ContentAddIcon(), a.showAddQuestDialog)
	a.Content = container.NewBorder(
		container.NewHBox(add), nil, nil, nil,
		container.NewGridWithColumns(3, columns...),
	)
	u.Quests.Changed().AddListener(func(_ context.Context, _ struct{}) {
		fyne.Do(a.Refresh)
	})
	a.Refresh()
	return a
}

// Refresh rebuilds all columns from the quest store.
func (a *QuestBoardArea) Refresh() {
	for _, st := range app.QuestStatuses() {
		quests := a.u.Quests.QuestsWithStatus(st)
		a.headers[st].SetText(fmt.Sprintf("%s (%d)", st.Display(), len(quests)))
		objects := make([]fyne.CanvasObject, 0, len(quests))
		for _, q := range quests {
			objects = append(objects, a.makeCard(q, st))
		}
		a.cards[st].Objects = objects
		a.cards[st].Refresh()
	}
}

func (a *QuestBoardArea) makeCard(q app.Quest, st app.QuestStatus) *iwidget.QuestCard {
	card := iwidget.NewQuestCard(q)
	card.OnDropped = func(center fyne.Position) {
		p := absolutePosition(a.cards[st]).Add(center)
		if to, ok := a.cardDrag.End(q.ID, p, a.zones()); ok && to != st {
			a.u.Snackbar.Show(fmt.Sprintf("Missão movida para %s", to.Display()))
		}
	}
	card.OnDelete = func() {
		dialog.NewConfirm(
			"Abandonar missão",
			fmt.Sprintf("Abandonar a missão \"%s\"?", q.Title),
			func(confirmed bool) {
				if confirmed {
					a.u.Quests.RemoveQuest(q.ID)
					a.u.Snackbar.Show("Missão abandonada")
				}
			},
			a.u.Window,
		).Show()
	}
	card.OnEditNotes = func() {
		a.showEditNotesDialog(q)
	}
	return card
}

// zones returns the current column rectangles in window coordinates.
func (a *QuestBoardArea) zones() []dragdrop.ColumnZone {
	zz := make([]dragdrop.ColumnZone, 0, 3)
	for _, st := range app.QuestStatuses() {
		f := a.frames[st]
		zz = append(zz, dragdrop.ColumnZone{
			Status: st,
			Pos:    absolutePosition(f),
			Size:   f.Size(),
		})
	}
	return zz
}

func (a *QuestBoardArea) showAddQuestDialog() {
	title := widget.NewEntry()
	title.Validator = requiredValidator("Informe um título")
	description := widget.NewMultiLineEntry()
	description.Validator = requiredValidator("Informe uma descrição")
	difficulty := widget.NewSelect(difficultyOptions(), nil)
	difficulty.SetSelected(string(app.DifficultyEasy))
	reward := widget.NewEntry()
	notes := widget.NewMultiLineEntry()
	items := []*widget.FormItem{
		widget.NewFormItem("Título", title),
		widget.NewFormItem("Descrição", description),
		widget.NewFormItem("Dificuldade", difficulty),
		widget.NewFormItem("Recompensa", reward),
		widget.NewFormItem("Anotações", notes),
	}
	d := dialog.NewForm("Nova missão", "Criar", "Cancelar", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		_, err := a.u.Quests.AddQuest(quest.Draft{
			Title:       title.Text,
			Description: description.Text,
			Difficulty:  app.QuestDifficulty(difficulty.Selected),
			Notes:       notes.Text,
			Reward:      reward.Text,
		})
		if err != nil {
			dialog.ShowError(err, a.u.Window)
			return
		}
		a.u.Snackbar.Show("Missão criada")
	}, a.u.Window)
	d.Resize(fyne.NewSize(400, 400))
	d.Show()
}

func (a *QuestBoardArea) showEditNotesDialog(q app.Quest) {
	notes := widget.NewMultiLineEntry()
	notes.SetText(q.Notes)
	items := []*widget.FormItem{
		widget.NewFormItem("Anotações", notes),
	}
	d := dialog.NewForm("Editar anotações", "Salvar", "Cancelar", items, func(confirmed bool) {
		if !confirmed {
			return
		}
		a.u.Quests.UpdateQuestNotes(q.ID, notes.Text)
	}, a.u.Window)
	d.Resize(fyne.NewSize(400, 300))
	d.Show()
}

func difficultyOptions() []string {
	dd := app.QuestDifficulties()
	out := make([]string, 0, len(dd))
	for _, d := range dd {
		out = append(out, string(d))
	}
	return out
}
