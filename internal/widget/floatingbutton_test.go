package widget_test

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"

	"github.com/abarroso/questdeck/internal/app"
	"github.com/abarroso/questdeck/internal/widget"
)

func dragBy(d fyne.Draggable, dx, dy float32) {
	d.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: dx, DY: dy}})
}

func TestFloatingButton_Tap(t *testing.T) {
	t.Run("fires the callback", func(t *testing.T) {
		test.NewTempApp(t)
		var tapped bool
		b := widget.NewFloatingButton("Mapa", "map", func() {
			tapped = true
		})
		w := test.NewWindow(b)
		defer w.Close()

		test.Tap(b)
		assert.True(t, tapped)
	})
	t.Run("is inert in edit mode", func(t *testing.T) {
		test.NewTempApp(t)
		var tapped bool
		b := widget.NewFloatingButton("Mapa", "map", func() {
			tapped = true
		})
		w := test.NewWindow(b)
		defer w.Close()

		b.SetEditMode(true)
		test.Tap(b)
		assert.False(t, tapped)
	})
}

func TestFloatingButton_Remove(t *testing.T) {
	t.Run("secondary tap in edit mode asks for removal", func(t *testing.T) {
		test.NewTempApp(t)
		var removed bool
		b := widget.NewFloatingButton("Mapa", "map", nil)
		b.OnRemove = func() {
			removed = true
		}
		w := test.NewWindow(b)
		defer w.Close()

		b.SetEditMode(true)
		test.TapSecondary(b)
		assert.True(t, removed)
	})
	t.Run("secondary tap outside edit mode is ignored", func(t *testing.T) {
		test.NewTempApp(t)
		var removed bool
		b := widget.NewFloatingButton("Mapa", "map", nil)
		b.OnRemove = func() {
			removed = true
		}
		w := test.NewWindow(b)
		defer w.Close()

		test.TapSecondary(b)
		assert.False(t, removed)
	})
}

func TestFloatingButton_Drag(t *testing.T) {
	newPlaced := func(t *testing.T) *widget.FloatingButton {
		t.Helper()
		test.NewTempApp(t)
		b := widget.NewFloatingButton("Mapa", "map", nil)
		c := container.NewWithoutLayout(b)
		w := test.NewWindow(c)
		t.Cleanup(w.Close)
		w.Resize(fyne.NewSize(600, 400))
		b.Resize(fyne.NewSize(80, 60))
		b.Move(fyne.NewPos(100, 100))
		return b
	}
	t.Run("drag in edit mode moves and reports the center", func(t *testing.T) {
		b := newPlaced(t)
		b.SetEditMode(true)
		var dropped fyne.Position
		b.OnMoved = func(center fyne.Position) {
			dropped = center
		}

		dragBy(b, 30, -20)
		assert.True(t, b.IsDragging())
		assert.Equal(t, fyne.NewPos(130, 80), b.Position())

		b.DragEnd()
		assert.False(t, b.IsDragging())
		assert.Equal(t, fyne.NewPos(170, 110), dropped)
	})
	t.Run("drag outside edit mode is ignored", func(t *testing.T) {
		b := newPlaced(t)
		var moved bool
		b.OnMoved = func(fyne.Position) {
			moved = true
		}

		dragBy(b, 30, -20)
		b.DragEnd()
		assert.Equal(t, fyne.NewPos(100, 100), b.Position())
		assert.False(t, moved)
	})
	t.Run("drag end without a drag is ignored", func(t *testing.T) {
		b := newPlaced(t)
		b.SetEditMode(true)
		var moved bool
		b.OnMoved = func(fyne.Position) {
			moved = true
		}

		b.DragEnd()
		assert.False(t, moved)
	})
}

func TestMarkerButton(t *testing.T) {
	t.Run("tap opens the character view", func(t *testing.T) {
		test.NewTempApp(t)
		var tapped bool
		m := widget.NewMarkerButton("Thorin", func() {
			tapped = true
		})
		w := test.NewWindow(m)
		defer w.Close()

		test.Tap(m)
		assert.True(t, tapped)
	})
	t.Run("drag is gated on edit mode", func(t *testing.T) {
		test.NewTempApp(t)
		m := widget.NewMarkerButton("Thorin", nil)
		c := container.NewWithoutLayout(m)
		w := test.NewWindow(c)
		defer w.Close()
		w.Resize(fyne.NewSize(600, 400))
		m.Resize(fyne.NewSize(60, 80))
		m.Move(fyne.NewPos(200, 150))
		var dropped fyne.Position
		m.OnMoved = func(center fyne.Position) {
			dropped = center
		}

		dragBy(m, 10, 10)
		m.DragEnd()
		assert.Equal(t, fyne.NewPos(200, 150), m.Position())

		m.SetEditMode(true)
		dragBy(m, 10, 10)
		m.DragEnd()
		assert.Equal(t, fyne.NewPos(210, 160), m.Position())
		assert.Equal(t, fyne.NewPos(240, 200), dropped)
	})
}

func makeQuest() app.Quest {
	return app.Quest{
		ID:          "q1",
		Title:       "O Troll da Ponte",
		Description: "Derrote o troll que cobra pedágio.",
		Status:      app.QuestStatusProgress,
		Difficulty:  app.DifficultyMedium,
		Notes:       "Tem medo de fogo.",
		Reward:      "Espada",
		CreatedAt:   time.Now().Add(-2 * time.Hour),
	}
}

func TestQuestCard(t *testing.T) {
	t.Run("tap flips between description and notes", func(t *testing.T) {
		test.NewTempApp(t)
		card := widget.NewQuestCard(makeQuest())
		w := test.NewWindow(card)
		defer w.Close()

		assert.False(t, card.IsFlipped())
		test.Tap(card)
		assert.True(t, card.IsFlipped())
		test.Tap(card)
		assert.False(t, card.IsFlipped())
	})
	t.Run("secondary tap asks for deletion", func(t *testing.T) {
		test.NewTempApp(t)
		card := widget.NewQuestCard(makeQuest())
		var deleted bool
		card.OnDelete = func() {
			deleted = true
		}
		w := test.NewWindow(card)
		defer w.Close()

		test.TapSecondary(card)
		assert.True(t, deleted)
	})
	t.Run("drag reports the release center and snaps back", func(t *testing.T) {
		test.NewTempApp(t)
		card := widget.NewQuestCard(makeQuest())
		c := container.NewWithoutLayout(card)
		w := test.NewWindow(c)
		defer w.Close()
		w.Resize(fyne.NewSize(700, 500))
		card.Resize(fyne.NewSize(200, 100))
		card.Move(fyne.NewPos(20, 40))
		var dropped fyne.Position
		card.OnDropped = func(center fyne.Position) {
			dropped = center
		}

		dragBy(card, 250, 30)
		card.DragEnd()
		assert.Equal(t, fyne.NewPos(370, 120), dropped)
		assert.Equal(t, fyne.NewPos(20, 40), card.Position(), "card must snap back")
	})
	t.Run("set updates the shown quest", func(t *testing.T) {
		test.NewTempApp(t)
		card := widget.NewQuestCard(makeQuest())
		w := test.NewWindow(card)
		defer w.Close()

		q := makeQuest()
		q.Title = "Outra Missão"
		card.Set(q)
		assert.Equal(t, "Outra Missão", card.Quest().Title)
	})
}
