package ui

import (
	"testing"

	chartData "github.com/s-daehling/fyne-charts/pkg/data"
	"github.com/stretchr/testify/assert"

	"github.com/abarroso/questdeck/internal/app"
)

func TestPageForButton(t *testing.T) {
	cases := []struct {
		name string
		item app.ButtonItem
		want string
	}{
		{"routes by icon name", app.ButtonItem{Label: "Atalho", Icon: "map"}, app.PageMap},
		{"routes by label when icon is missing", app.ButtonItem{Label: "inventário"}, app.PageInventory},
		{"unknown target falls back to home", app.ButtonItem{Label: "tesouro", Icon: "chest"}, app.PageHome},
		{"settings icon", app.ButtonItem{Label: "x", Icon: "settings"}, app.PageSettings},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, pageForButton(tc.item))
		})
	}
}

func TestConditionPoints(t *testing.T) {
	parts := []app.BodyPartStatus{
		{Name: app.BodyPartHead, Condition: app.ConditionHealthy},
		{Name: app.BodyPartTorso, Condition: app.ConditionHealthy},
		{Name: app.BodyPartLeftArm, Condition: app.ConditionInjured},
		{Name: app.BodyPartRightArm, Condition: app.ConditionHealthy},
		{Name: app.BodyPartLeftLeg, Condition: app.ConditionBroken},
		{Name: app.BodyPartRightLeg, Condition: app.ConditionInjured},
	}
	got := conditionPoints(parts)
	want := []chartData.ProportionalPoint{
		{C: "Saudável", Val: 3},
		{C: "Ferido", Val: 2},
		{C: "Quebrado", Val: 1},
	}
	assert.Equal(t, want, got)
	assert.Equal(t, "3x Saudável, 2x Ferido, 1x Quebrado", conditionSummary(got))
}

func TestConditionPointsTieBreak(t *testing.T) {
	parts := []app.BodyPartStatus{
		{Name: app.BodyPartHead, Condition: app.ConditionCritical},
		{Name: app.BodyPartTorso, Condition: app.ConditionBroken},
	}
	got := conditionPoints(parts)
	// equal counts sort alphabetically
	want := []chartData.ProportionalPoint{
		{C: "Crítico", Val: 1},
		{C: "Quebrado", Val: 1},
	}
	assert.Equal(t, want, got)
}

func TestDifficultyOptions(t *testing.T) {
	assert.Equal(t, []string{"Fácil", "Médio", "Difícil", "Mortal"}, difficultyOptions())
}

func TestRequiredValidator(t *testing.T) {
	v := requiredValidator("obrigatório")
	assert.NoError(t, v("algo"))
	assert.Error(t, v(""))
	assert.Error(t, v("   "))
}
