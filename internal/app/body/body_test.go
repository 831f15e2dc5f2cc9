package body_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abarroso/questdeck/internal/app"
	"github.com/abarroso/questdeck/internal/app/body"
)

func TestStore_New(t *testing.T) {
	s, err := body.New()
	require.NoError(t, err)

	parts := s.Parts()
	require.Len(t, parts, 6)
	assert.Equal(t, app.BodyPartHead, parts[0].Name)
	assert.Equal(t, "Cabeça", parts[0].Label)
	for _, p := range parts {
		assert.Equal(t, 100, p.Health)
		assert.Equal(t, app.ConditionHealthy, p.Condition)
	}

	stats := s.Stats()
	assert.Equal(t, 100, stats.Health)
	assert.Equal(t, 80, stats.Energy)
}

func TestStore_UpdateStat(t *testing.T) {
	s, err := body.New()
	require.NoError(t, err)

	s.UpdateStat("hunger", 55)
	assert.Equal(t, 55, s.Stats().Hunger)

	s.UpdateStat("sanity", 140)
	assert.Equal(t, 100, s.Stats().Sanity, "stats are clamped")

	s.UpdateStat("energy", -5)
	assert.Equal(t, 0, s.Stats().Energy)

	before := s.Stats()
	s.UpdateStat("luck", 50)
	assert.Equal(t, before, s.Stats(), "unknown stats are ignored")
}

func TestStore_UpdatePartHealth(t *testing.T) {
	cases := []struct {
		health int
		want   app.BodyCondition
	}{
		{100, app.ConditionHealthy},
		{70, app.ConditionHealthy},
		{69, app.ConditionInjured},
		{30, app.ConditionInjured},
		{29, app.ConditionCritical},
		{1, app.ConditionCritical},
		{0, app.ConditionBroken},
		{-10, app.ConditionBroken},
	}
	for _, tc := range cases {
		s, err := body.New()
		require.NoError(t, err)
		s.UpdatePartHealth(app.BodyPartTorso, tc.health)
		p, ok := s.Part(app.BodyPartTorso)
		require.True(t, ok)
		assert.Equalf(t, tc.want, p.Condition, "health %d", tc.health)
		assert.GreaterOrEqual(t, p.Health, 0)
	}
}

func TestStore_SelectPart(t *testing.T) {
	s, err := body.New()
	require.NoError(t, err)

	assert.Empty(t, s.SelectedPart())
	s.SelectPart(app.BodyPartLeftArm)
	assert.Equal(t, app.BodyPartLeftArm, s.SelectedPart())
	s.SelectPart("")
	assert.Empty(t, s.SelectedPart())
}
