package quest_test

import (
	"context"
	"testing"

	"github.com/ErikKalkoken/go-set"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarroso/questdeck/internal/app"
	"github.com/abarroso/questdeck/internal/app/quest"
)

func TestStore_AddQuest(t *testing.T) {
	t.Run("creates a quest in the todo column", func(t *testing.T) {
		s := quest.New()
		q, err := s.AddQuest(quest.Draft{
			Title:       "A",
			Description: "B",
			Difficulty:  app.DifficultyEasy,
		})
		require.NoError(t, err)
		got := s.Quests()
		require.Len(t, got, 1)
		assert.Equal(t, q, got[0])
		assert.Equal(t, app.QuestStatusTodo, got[0].Status)
		assert.Equal(t, app.DifficultyEasy, got[0].Difficulty)
		assert.NotEmpty(t, got[0].ID)
		assert.False(t, got[0].CreatedAt.IsZero())
	})
	t.Run("trims title, description and reward", func(t *testing.T) {
		s := quest.New()
		q, err := s.AddQuest(quest.Draft{
			Title:       "  O Pergaminho Perdido ",
			Description: " Encontre o pergaminho.  ",
			Difficulty:  app.DifficultyHard,
			Reward:      " 100 Moedas ",
		})
		require.NoError(t, err)
		assert.Equal(t, "O Pergaminho Perdido", q.Title)
		assert.Equal(t, "Encontre o pergaminho.", q.Description)
		assert.Equal(t, "100 Moedas", q.Reward)
	})
	t.Run("keeps the difficulty the caller supplied", func(t *testing.T) {
		s := quest.New()
		q, err := s.AddQuest(quest.Draft{Title: "A", Description: "B", Difficulty: app.DifficultyDeadly})
		require.NoError(t, err)
		assert.Equal(t, app.DifficultyDeadly, q.Difficulty)
	})
	t.Run("rejects empty title", func(t *testing.T) {
		s := quest.New()
		_, err := s.AddQuest(quest.Draft{Title: "   ", Description: "B"})
		assert.ErrorIs(t, err, quest.ErrInvalidDraft)
		assert.Empty(t, s.Quests())
	})
	t.Run("rejects empty description", func(t *testing.T) {
		s := quest.New()
		_, err := s.AddQuest(quest.Draft{Title: "A", Description: ""})
		assert.ErrorIs(t, err, quest.ErrInvalidDraft)
	})
	t.Run("ids are unique", func(t *testing.T) {
		s := quest.New()
		var ids set.Set[string]
		for range 50 {
			q, err := s.AddQuest(quest.Draft{Title: "A", Description: "B"})
			require.NoError(t, err)
			assert.False(t, ids.Contains(q.ID))
			ids.Add(q.ID)
		}
	})
}

func TestStore_UpdateQuestStatus(t *testing.T) {
	t.Run("changes only the status", func(t *testing.T) {
		s := quest.New()
		q, err := s.AddQuest(quest.Draft{Title: "A", Description: "B", Notes: "n", Reward: "r"})
		require.NoError(t, err)

		s.UpdateQuestStatus(q.ID, app.QuestStatusDone)

		got := s.Quests()[0]
		want := q
		want.Status = app.QuestStatusDone
		assert.Equal(t, want, got)
	})
	t.Run("any transition is allowed", func(t *testing.T) {
		s := quest.New()
		q, _ := s.AddQuest(quest.Draft{Title: "A", Description: "B"})
		s.UpdateQuestStatus(q.ID, app.QuestStatusDone)
		s.UpdateQuestStatus(q.ID, app.QuestStatusTodo)
		s.UpdateQuestStatus(q.ID, app.QuestStatusProgress)
		assert.Equal(t, app.QuestStatusProgress, s.Quests()[0].Status)
	})
	t.Run("unknown id leaves the collection unchanged", func(t *testing.T) {
		s := quest.New()
		s.AddQuest(quest.Draft{Title: "A", Description: "B"})
		before := s.Quests()
		s.UpdateQuestStatus("nonexistent", app.QuestStatusDone)
		assert.Equal(t, before, s.Quests())
	})
}

func TestStore_UpdateQuestNotes(t *testing.T) {
	s := quest.New()
	q, _ := s.AddQuest(quest.Draft{Title: "A", Description: "B"})
	s.UpdateQuestStatus(q.ID, app.QuestStatusDone)

	// Notes stay editable regardless of status.
	s.UpdateQuestNotes(q.ID, "updated")
	assert.Equal(t, "updated", s.Quests()[0].Notes)

	s.UpdateQuestNotes("nonexistent", "x")
	assert.Equal(t, "updated", s.Quests()[0].Notes)
}

func TestStore_RemoveQuest(t *testing.T) {
	s := quest.New()
	q1, _ := s.AddQuest(quest.Draft{Title: "A", Description: "B"})
	q2, _ := s.AddQuest(quest.Draft{Title: "C", Description: "D"})

	s.RemoveQuest(q1.ID)
	got := s.Quests()
	require.Len(t, got, 1)
	assert.Equal(t, q2.ID, got[0].ID)

	s.RemoveQuest("nonexistent")
	assert.Len(t, s.Quests(), 1)
}

func TestStore_QuestsWithStatus(t *testing.T) {
	s := quest.New()
	q1, _ := s.AddQuest(quest.Draft{Title: "A", Description: "B"})
	q2, _ := s.AddQuest(quest.Draft{Title: "C", Description: "D"})
	q3, _ := s.AddQuest(quest.Draft{Title: "E", Description: "F"})
	s.UpdateQuestStatus(q2.ID, app.QuestStatusDone)

	todo := s.QuestsWithStatus(app.QuestStatusTodo)
	require.Len(t, todo, 2)
	// Column membership derives from status; insertion order is kept.
	assert.Equal(t, q1.ID, todo[0].ID)
	assert.Equal(t, q3.ID, todo[1].ID)

	done := s.QuestsWithStatus(app.QuestStatusDone)
	require.Len(t, done, 1)
	assert.Equal(t, q2.ID, done[0].ID)

	assert.Empty(t, s.QuestsWithStatus(app.QuestStatusProgress))
}

func TestStore_ChangeSignal(t *testing.T) {
	s := quest.New()
	count := 0
	s.Changed().AddListener(func(_ context.Context, _ struct{}) {
		count++
	})

	q, _ := s.AddQuest(quest.Draft{Title: "A", Description: "B"})
	s.UpdateQuestStatus(q.ID, app.QuestStatusDone)
	s.UpdateQuestNotes(q.ID, "n")
	s.RemoveQuest(q.ID)
	assert.Equal(t, 4, count)

	// Ignored operations stay silent.
	s.UpdateQuestStatus("nonexistent", app.QuestStatusDone)
	s.RemoveQuest("nonexistent")
	_, err := s.AddQuest(quest.Draft{Title: "", Description: ""})
	assert.Error(t, err)
	assert.Equal(t, 4, count)
}

func TestStore_NewWithDefaults(t *testing.T) {
	s := quest.NewWithDefaults()
	got := s.Quests()
	require.Len(t, got, 3)
	assert.Equal(t, app.QuestStatusTodo, got[0].Status)
	assert.Equal(t, app.QuestStatusProgress, got[1].Status)
	assert.Equal(t, app.QuestStatusDone, got[2].Status)
}

func TestStore_Restore(t *testing.T) {
	s := quest.NewWithDefaults()
	count := 0
	s.Changed().AddListener(func(_ context.Context, _ struct{}) {
		count++
	})

	quests := []app.Quest{{ID: "q1", Title: "A", Description: "B", Status: app.QuestStatusDone}}
	s.Restore(quests)

	assert.Equal(t, quests, s.Quests())
	assert.Equal(t, 0, count, "restore must not emit a change")
}
