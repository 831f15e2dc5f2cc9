// Package testutil contains factories for creating test objects in the stores.
package testutil

import (
	"math/rand/v2"

	"fyne.io/fyne/v2"
	"github.com/icrowley/fake"

	"github.com/abarroso/questdeck/internal/app"
	"github.com/abarroso/questdeck/internal/app/geometry"
	"github.com/abarroso/questdeck/internal/app/layout"
	"github.com/abarroso/questdeck/internal/app/quest"
)

type Factory struct {
	ls *layout.Store
	qs *quest.Store
}

func NewFactory(ls *layout.Store, qs *quest.Store) Factory {
	return Factory{ls: ls, qs: qs}
}

// CreateButton creates and returns a new floating button. Empty fields are
// filled with random values; random positions are outside the exclusion zone.
func (f Factory) CreateButton(args ...app.ButtonItem) app.ButtonItem {
	var arg app.ButtonItem
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.ID == "" {
		arg.ID = fake.CharactersN(8)
	}
	if arg.Label == "" {
		arg.Label = fake.Word()
	}
	if arg.Icon == "" {
		arg.Icon = fake.Word()
	}
	if arg.X == 0 && arg.Y == 0 {
		arg.X = geometry.ZoneHalfWidth + rand.Float32()*200
		arg.Y = rand.Float32()*400 - 200
	}
	f.ls.AddButton(arg)
	return arg
}

// CreateQuest creates and returns a new quest. Empty draft fields are filled
// with random values. When a status other than todo is given the quest is
// moved there after creation.
func (f Factory) CreateQuest(status app.QuestStatus, args ...quest.Draft) app.Quest {
	var arg quest.Draft
	if len(args) > 0 {
		arg = args[0]
	}
	if arg.Title == "" {
		arg.Title = fake.Title()
	}
	if arg.Description == "" {
		arg.Description = fake.Sentence()
	}
	if arg.Difficulty == "" {
		dd := app.QuestDifficulties()
		arg.Difficulty = dd[rand.IntN(len(dd))]
	}
	q, err := f.qs.AddQuest(arg)
	if err != nil {
		panic(err)
	}
	if status != "" && status != app.QuestStatusTodo {
		f.qs.UpdateQuestStatus(q.ID, status)
		q.Status = status
	}
	return q
}

// Preferences is an in-memory stub for replacing fyne.Preferences in tests.
// Methods not listed here panic when called.
type Preferences struct {
	fyne.Preferences

	Data map[string]any
}

func NewPreferences() Preferences {
	return Preferences{Data: map[string]any{}}
}

func (p Preferences) Bool(key string) bool {
	return getAny[bool](p, key)
}

func (p Preferences) BoolWithFallback(key string, fallback bool) bool {
	return getAnyWithFallback(p, key, fallback)
}

func (p Preferences) SetBool(k string, v bool) {
	p.Data[k] = v
}

func (p Preferences) Float(key string) float64 {
	return getAny[float64](p, key)
}

func (p Preferences) FloatWithFallback(key string, fallback float64) float64 {
	return getAnyWithFallback(p, key, fallback)
}

func (p Preferences) SetFloat(k string, v float64) {
	p.Data[k] = v
}

func (p Preferences) FloatList(key string) []float64 {
	return getAny[[]float64](p, key)
}

func (p Preferences) SetFloatList(k string, v []float64) {
	p.Data[k] = v
}

func (p Preferences) Int(key string) int {
	return getAny[int](p, key)
}

func (p Preferences) IntWithFallback(key string, fallback int) int {
	return getAnyWithFallback(p, key, fallback)
}

func (p Preferences) SetInt(k string, v int) {
	p.Data[k] = v
}

func (p Preferences) String(key string) string {
	return getAny[string](p, key)
}

func (p Preferences) StringWithFallback(key string, fallback string) string {
	return getAnyWithFallback(p, key, fallback)
}

func (p Preferences) SetString(k string, v string) {
	p.Data[k] = v
}

func (p Preferences) RemoveValue(key string) {
	delete(p.Data, key)
}

func getAny[T any](p Preferences, k string) T {
	var z T
	return getAnyWithFallback(p, k, z)
}

func getAnyWithFallback[T any](p Preferences, key string, fallback T) T {
	x, ok := p.Data[key]
	if !ok {
		return fallback
	}
	v, ok := x.(T)
	if !ok {
		return fallback
	}
	return v
}
