package widget

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/abarroso/questdeck/internal/app"
)

// QuestCard shows one quest on the board. Tapping flips the card between
// the description and the notes side. Cards can be dragged onto another
// column: the widget snaps back visually and reports the release point
// through OnDropped; moving the quest is the caller's job.
type QuestCard struct {
	widget.BaseWidget

	// OnDropped is called with the card's center after a drag ended.
	OnDropped func(center fyne.Position)
	// OnDelete is called on a secondary tap.
	OnDelete func()
	// OnEditNotes is called on a double tap.
	OnEditNotes func()

	age        *widget.Label
	bg         *canvas.Rectangle
	back       fyne.CanvasObject
	difficulty *widget.Label
	descr      *widget.Label
	flipped    bool
	front      fyne.CanvasObject
	notes      *widget.Label
	quest      app.Quest
	reward     *widget.Label
	title      *widget.Label

	dragging  bool
	dragStart fyne.Position
}

var _ fyne.DoubleTappable = (*QuestCard)(nil)
var _ fyne.Draggable = (*QuestCard)(nil)
var _ fyne.SecondaryTappable = (*QuestCard)(nil)
var _ fyne.Tappable = (*QuestCard)(nil)
var _ fyne.Widget = (*QuestCard)(nil)

func NewQuestCard(q app.Quest) *QuestCard {
	w := &QuestCard{
		age:        widget.NewLabel(""),
		difficulty: widget.NewLabel(""),
		descr:      widget.NewLabel(""),
		notes:      widget.NewLabel(""),
		reward:     widget.NewLabel(""),
		title:      widget.NewLabel(""),
	}
	w.title.TextStyle = fyne.TextStyle{Bold: true}
	w.title.Truncation = fyne.TextTruncateEllipsis
	w.descr.Wrapping = fyne.TextWrapWord
	w.notes.Wrapping = fyne.TextWrapWord
	w.notes.TextStyle = fyne.TextStyle{Italic: true}
	w.age.Importance = widget.LowImportance
	w.reward.Importance = widget.LowImportance
	w.bg = canvas.NewRectangle(color.Transparent)
	w.bg.CornerRadius = theme.Size(theme.SizeNameInputRadius)
	w.ExtendBaseWidget(w)
	w.Set(q)
	return w
}

// Set updates the card from a quest.
func (w *QuestCard) Set(q app.Quest) {
	w.quest = q
	w.title.SetText(q.Title)
	w.descr.SetText(q.Description)
	w.age.SetText(humanize.Time(q.CreatedAt))
	w.difficulty.SetText(string(q.Difficulty))
	w.difficulty.Importance = difficultyImportance(q.Difficulty)
	if q.Reward != "" {
		w.reward.SetText("Recompensa: " + q.Reward)
		w.reward.Show()
	} else {
		w.reward.Hide()
	}
	if q.Notes != "" {
		w.notes.SetText(q.Notes)
	} else {
		w.notes.SetText("Sem anotações.")
	}
	w.Refresh()
}

// Quest returns the shown quest.
func (w *QuestCard) Quest() app.Quest {
	return w.quest
}

// IsFlipped reports whether the notes side is shown.
func (w *QuestCard) IsFlipped() bool {
	return w.flipped
}

func (w *QuestCard) Tapped(_ *fyne.PointEvent) {
	w.flipped = !w.flipped
	w.Refresh()
}

func (w *QuestCard) DoubleTapped(_ *fyne.PointEvent) {
	if w.OnEditNotes != nil {
		w.OnEditNotes()
	}
}

func (w *QuestCard) TappedSecondary(_ *fyne.PointEvent) {
	if w.OnDelete != nil {
		w.OnDelete()
	}
}

func (w *QuestCard) Dragged(e *fyne.DragEvent) {
	if !w.dragging {
		w.dragging = true
		w.dragStart = w.Position()
		w.Refresh()
	}
	w.Move(w.Position().Add(e.Dragged))
}

func (w *QuestCard) DragEnd() {
	if !w.dragging {
		return
	}
	w.dragging = false
	s := w.Size()
	center := w.Position().Add(fyne.NewPos(s.Width/2, s.Height/2))
	// snap back; a committed move re-renders the board anyway
	w.Move(w.dragStart)
	w.Refresh()
	if w.OnDropped != nil {
		w.OnDropped(center)
	}
}

func (w *QuestCard) Refresh() {
	w.updateState()
	w.bg.Refresh()
	w.BaseWidget.Refresh()
}

func (w *QuestCard) updateState() {
	if w.bg == nil || w.front == nil {
		return
	}
	th := w.Theme()
	v := fyne.CurrentApp().Settings().ThemeVariant()
	if w.dragging {
		w.bg.FillColor = th.Color(theme.ColorNameSelection, v)
	} else {
		w.bg.FillColor = th.Color(theme.ColorNameInputBackground, v)
	}
	if w.flipped {
		w.front.Hide()
		w.back.Show()
	} else {
		w.back.Hide()
		w.front.Show()
	}
}

func (w *QuestCard) CreateRenderer() fyne.WidgetRenderer {
	w.front = container.NewVBox(
		container.NewBorder(nil, nil, nil, w.difficulty, w.title),
		w.descr,
		w.reward,
		w.age,
	)
	w.back = container.NewVBox(
		widget.NewLabelWithStyle("Anotações", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		w.notes,
	)
	w.updateState()
	c := container.NewStack(w.bg, container.NewPadded(container.NewStack(w.front, w.back)))
	return widget.NewSimpleRenderer(c)
}

func difficultyImportance(d app.QuestDifficulty) widget.Importance {
	switch d {
	case app.DifficultyEasy:
		return widget.SuccessImportance
	case app.DifficultyMedium:
		return widget.HighImportance
	case app.DifficultyHard:
		return widget.WarningImportance
	case app.DifficultyDeadly:
		return widget.DangerImportance
	}
	return widget.MediumImportance
}
