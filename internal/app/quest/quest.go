// Package quest provides the state container for the quest board.
//
// Quests live in three kanban columns derived from their status. Any status
// is reachable from any other; the board is not a workflow.
package quest

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/ErikKalkoken/go-set"
	"github.com/maniartech/signals"

	"github.com/abarroso/questdeck/internal/app"
)

// ErrInvalidDraft is returned when a draft misses its title or description.
var ErrInvalidDraft = errors.New("quest draft needs a title and a description")

// Draft is the user supplied part of a new quest. Status and id are assigned
// by the store; difficulty defaults are the form's responsibility.
type Draft struct {
	Title       string
	Description string
	Difficulty  app.QuestDifficulty
	Notes       string
	Reward      string
}

// Store holds the quest collection. Safe for concurrent use.
type Store struct {
	changed signals.Signal[struct{}]

	mu     sync.RWMutex
	quests []app.Quest
}

// New returns an empty store.
func New() *Store {
	return &Store{changed: signals.NewSync[struct{}]()}
}

// NewWithDefaults returns a store seeded with the starter quests shown on a
// first run.
func NewWithDefaults() *Store {
	s := New()
	s.quests = DefaultQuests()
	return s
}

// DefaultQuests returns the starter quests.
func DefaultQuests() []app.Quest {
	now := time.Now()
	return []app.Quest{
		{
			ID:          newQuestID(),
			Title:       "Ervas Medicinais",
			Description: "Colete 5 ervas luaminosa na Floresta Negra.",
			Status:      app.QuestStatusTodo,
			Difficulty:  app.DifficultyEasy,
			Reward:      "50 Moedas de Ouro",
			CreatedAt:   now,
		},
		{
			ID:          newQuestID(),
			Title:       "O Troll da Ponte",
			Description: "Derrote o troll que cobra pedágio na ponte velha.",
			Status:      app.QuestStatusProgress,
			Difficulty:  app.DifficultyMedium,
			Notes:       "Ele parece ter medo de fogo.",
			Reward:      "Espada Enferrujada",
			CreatedAt:   now,
		},
		{
			ID:          newQuestID(),
			Title:       "Entrega Secreta",
			Description: "Entregue a carta selada ao estalajadeiro.",
			Status:      app.QuestStatusDone,
			Difficulty:  app.DifficultyEasy,
			Notes:       "Entregue com sucesso.",
			Reward:      "Cerveja Grátis",
			CreatedAt:   now,
		},
	}
}

// Changed returns the signal emitted after every mutation.
func (s *Store) Changed() signals.Signal[struct{}] {
	return s.changed
}

func (s *Store) emit() {
	s.changed.Emit(context.Background(), struct{}{})
}

// AddQuest creates a quest from a draft. The title and description must be
// non empty after trimming. The new quest starts in the todo column with a
// fresh id that is unique within the collection.
func (s *Store) AddQuest(d Draft) (app.Quest, error) {
	title := strings.TrimSpace(d.Title)
	description := strings.TrimSpace(d.Description)
	if title == "" || description == "" {
		return app.Quest{}, ErrInvalidDraft
	}
	q := app.Quest{
		Title:       title,
		Description: description,
		Status:      app.QuestStatusTodo,
		Difficulty:  d.Difficulty,
		Notes:       d.Notes,
		Reward:      strings.TrimSpace(d.Reward),
		CreatedAt:   time.Now(),
	}
	s.mu.Lock()
	var ids set.Set[string]
	for _, x := range s.quests {
		ids.Add(x.ID)
	}
	q.ID = newQuestID()
	for ids.Contains(q.ID) {
		q.ID = newQuestID()
	}
	s.quests = append(s.quests, q)
	s.mu.Unlock()
	s.emit()
	return q, nil
}

// UpdateQuestStatus moves a quest to another column. Any transition is
// allowed. An unknown id is silently ignored.
func (s *Store) UpdateQuestStatus(id string, status app.QuestStatus) {
	s.update(id, func(q *app.Quest) {
		q.Status = status
	})
}

// UpdateQuestNotes overwrites a quest's notes. Notes are editable in any
// column. An unknown id is silently ignored.
func (s *Store) UpdateQuestNotes(id string, notes string) {
	s.update(id, func(q *app.Quest) {
		q.Notes = notes
	})
}

func (s *Store) update(id string, fn func(*app.Quest)) {
	s.mu.Lock()
	found := false
	for i := range s.quests {
		if s.quests[i].ID == id {
			fn(&s.quests[i])
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.emit()
	}
}

// RemoveQuest deletes a quest. The caller obtains user confirmation first.
// An unknown id is silently ignored.
func (s *Store) RemoveQuest(id string) {
	s.mu.Lock()
	n := len(s.quests)
	s.quests = slices.DeleteFunc(s.quests, func(q app.Quest) bool {
		return q.ID == id
	})
	removed := len(s.quests) != n
	s.mu.Unlock()
	if removed {
		s.emit()
	}
}

// Quests returns a copy of all quests in insertion order.
func (s *Store) Quests() []app.Quest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.quests)
}

// QuestsWithStatus returns the quests of one board column, keeping the
// collection's insertion order. Column membership is derived from the
// status only.
func (s *Store) QuestsWithStatus(status app.QuestStatus) []app.Quest {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []app.Quest
	for _, q := range s.quests {
		if q.Status == status {
			out = append(out, q)
		}
	}
	return out
}

// Restore replaces the collection, e.g. from a loaded snapshot.
// No change is emitted.
func (s *Store) Restore(quests []app.Quest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.quests = slices.Clone(quests)
}

func newQuestID() string {
	return app.NewID()
}
