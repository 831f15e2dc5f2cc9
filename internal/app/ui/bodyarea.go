package ui

import (
	"context"
	"fmt"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	chartData "github.com/s-daehling/fyne-charts/pkg/data"

	"github.com/abarroso/questdeck/internal/app"
)

// BodyArea shows the character's vitals and the per part condition.
type BodyArea struct {
	Content fyne.CanvasObject

	bars      map[string]*widget.ProgressBar
	parts     *widget.List
	partData  []app.BodyPartStatus
	condition *widget.Label
	u         *BaseUI
}

func NewBodyArea(u *BaseUI) *BodyArea {
	a := &BodyArea{
		bars:      map[string]*widget.ProgressBar{},
		condition: widget.NewLabel(""),
		u:         u,
	}
	stats := container.NewVBox()
	for _, name := range statNames() {
		bar := widget.NewProgressBar()
		bar.Max = 100
		a.bars[name] = bar
		stats.Add(container.NewBorder(nil, nil, widget.NewLabel(statLabel(name)), nil, bar))
	}
	a.parts = a.makePartList()
	a.Content = container.NewBorder(
		container.NewVBox(
			widget.NewLabelWithStyle("Condição Física", fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
			stats,
			a.condition,
			widget.NewSeparator(),
		),
		nil, nil, nil,
		a.parts,
	)
	u.Body.Changed().AddListener(func(_ context.Context, _ struct{}) {
		fyne.Do(a.Refresh)
	})
	a.Refresh()
	return a
}

func (a *BodyArea) makePartList() *widget.List {
	l := widget.NewList(
		func() int {
			return len(a.partData)
		},
		func() fyne.CanvasObject {
			return container.NewBorder(nil, nil,
				widget.NewLabel("part"), widget.NewLabel("condition"))
		},
		func(id widget.ListItemID, co fyne.CanvasObject) {
			if id >= len(a.partData) {
				return
			}
			p := a.partData[id]
			row := co.(*fyne.Container).Objects
			row[0].(*widget.Label).SetText(p.Label)
			c := row[1].(*widget.Label)
			c.SetText(conditionLabel(p.Condition))
			c.Importance = conditionImportance(p.Condition)
			c.Refresh()
		},
	)
	l.OnSelected = func(id widget.ListItemID) {
		if id < len(a.partData) {
			a.u.Body.SelectPart(a.partData[id].Name)
		}
		l.UnselectAll()
	}
	return l
}

// Refresh redraws vitals and parts from the body store.
func (a *BodyArea) Refresh() {
	st := a.u.Body.Stats()
	values := map[string]int{
		"health": st.Health,
		"energy": st.Energy,
		"hunger": st.Hunger,
		"thirst": st.Thirst,
		"sanity": st.Sanity,
	}
	for name, bar := range a.bars {
		bar.SetValue(float64(values[name]))
	}
	a.partData = a.u.Body.Parts()
	a.parts.Refresh()
	a.condition.SetText(conditionSummary(conditionPoints(a.partData)))
}

// conditionPoints aggregates the body parts into one proportional point per
// condition, for the summary line under the vitals.
func conditionPoints(parts []app.BodyPartStatus) []chartData.ProportionalPoint {
	byCondition := map[app.BodyCondition]float64{}
	for _, p := range parts {
		byCondition[p.Condition]++
	}
	points := make([]chartData.ProportionalPoint, 0, len(byCondition))
	for c, n := range byCondition {
		points = append(points, chartData.ProportionalPoint{C: conditionLabel(c), Val: n})
	}
	sort.Slice(points, func(i, j int) bool {
		if points[i].Val != points[j].Val {
			return points[i].Val > points[j].Val
		}
		return points[i].C < points[j].C
	})
	return points
}

func conditionSummary(points []chartData.ProportionalPoint) string {
	s := ""
	for i, p := range points {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%.0fx %s", p.Val, p.C)
	}
	return s
}

func statNames() []string {
	return []string{"health", "energy", "hunger", "thirst", "sanity"}
}

func statLabel(name string) string {
	switch name {
	case "health":
		return "Vida"
	case "energy":
		return "Energia"
	case "hunger":
		return "Fome"
	case "thirst":
		return "Sede"
	case "sanity":
		return "Sanidade"
	}
	return app.Titler.String(name)
}

func conditionLabel(c app.BodyCondition) string {
	switch c {
	case app.ConditionHealthy:
		return "Saudável"
	case app.ConditionInjured:
		return "Ferido"
	case app.ConditionCritical:
		return "Crítico"
	case app.ConditionBroken:
		return "Quebrado"
	}
	return string(c)
}

func conditionImportance(c app.BodyCondition) widget.Importance {
	switch c {
	case app.ConditionHealthy:
		return widget.SuccessImportance
	case app.ConditionInjured:
		return widget.WarningImportance
	case app.ConditionCritical, app.ConditionBroken:
		return widget.DangerImportance
	}
	return widget.MediumImportance
}
