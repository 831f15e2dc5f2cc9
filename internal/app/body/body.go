// Package body provides the state container for the character's vitals and
// per part condition shown on the body status panel.
//
// This state is session only and never persisted.
package body

import (
	"context"
	_ "embed"
	"fmt"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/maniartech/signals"
	"golang.org/x/exp/constraints"

	"github.com/abarroso/questdeck/internal/app"
)

//go:embed parts.yaml
var partsYAML []byte

type partDef struct {
	Name  app.BodyPartName `yaml:"name"`
	Label string           `yaml:"label"`
}

// Store holds the body state. Safe for concurrent use.
type Store struct {
	changed signals.Signal[struct{}]

	mu           sync.RWMutex
	stats        app.BodyStats
	parts        map[app.BodyPartName]app.BodyPartStatus
	order        []app.BodyPartName
	selectedPart app.BodyPartName // empty when nothing is selected
}

// New returns a store with every part healthy and the default vitals.
func New() (*Store, error) {
	var defs []partDef
	if err := yaml.Unmarshal(partsYAML, &defs); err != nil {
		return nil, fmt.Errorf("load body part definitions: %w", err)
	}
	s := &Store{
		changed: signals.NewSync[struct{}](),
		stats: app.BodyStats{
			Health: 100,
			Energy: 80,
			Hunger: 20,
			Thirst: 10,
			Sanity: 95,
		},
		parts: make(map[app.BodyPartName]app.BodyPartStatus),
	}
	for _, d := range defs {
		s.parts[d.Name] = app.BodyPartStatus{
			Name:      d.Name,
			Label:     d.Label,
			Health:    100,
			Condition: app.ConditionHealthy,
		}
		s.order = append(s.order, d.Name)
	}
	return s, nil
}

// Changed returns the signal emitted after every mutation.
func (s *Store) Changed() signals.Signal[struct{}] {
	return s.changed
}

func (s *Store) emit() {
	s.changed.Emit(context.Background(), struct{}{})
}

// Stats returns the current vitals.
func (s *Store) Stats() app.BodyStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stats
}

// UpdateStat sets a vital, clamped to 0-100. Unknown names are ignored.
func (s *Store) UpdateStat(name string, value int) {
	value = clamp(value, 0, 100)
	s.mu.Lock()
	switch name {
	case "health":
		s.stats.Health = value
	case "energy":
		s.stats.Energy = value
	case "hunger":
		s.stats.Hunger = value
	case "thirst":
		s.stats.Thirst = value
	case "sanity":
		s.stats.Sanity = value
	default:
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.emit()
}

// Parts returns all part statuses in display order.
func (s *Store) Parts() []app.BodyPartStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]app.BodyPartStatus, 0, len(s.order))
	for _, n := range s.order {
		out = append(out, s.parts[n])
	}
	return out
}

// Part returns the status of one part.
func (s *Store) Part(name app.BodyPartName) (app.BodyPartStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.parts[name]
	return p, ok
}

// SelectPart marks a part as selected on the panel. An empty name clears
// the selection.
func (s *Store) SelectPart(name app.BodyPartName) {
	s.mu.Lock()
	s.selectedPart = name
	s.mu.Unlock()
	s.emit()
}

// SelectedPart returns the selected part name, empty when none.
func (s *Store) SelectedPart() app.BodyPartName {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedPart
}

// UpdatePartHealth sets a part's health, clamped to 0-100, and derives its
// condition. Unknown parts are ignored.
func (s *Store) UpdatePartHealth(name app.BodyPartName, health int) {
	health = clamp(health, 0, 100)
	s.mu.Lock()
	p, ok := s.parts[name]
	if !ok {
		s.mu.Unlock()
		return
	}
	p.Health = health
	p.Condition = ConditionForHealth(health)
	s.parts[name] = p
	s.mu.Unlock()
	s.emit()
}

// ConditionForHealth derives a condition from a health value.
func ConditionForHealth(health int) app.BodyCondition {
	switch {
	case health <= 0:
		return app.ConditionBroken
	case health < 30:
		return app.ConditionCritical
	case health < 70:
		return app.ConditionInjured
	}
	return app.ConditionHealthy
}

func clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
