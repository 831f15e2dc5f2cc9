// Package snapshot persists the layout and quest state as two independent,
// opaque key/value snapshots.
//
// The stores know nothing about storage: a [Service] observes their change
// signals and serializes the persisted subset. Writes are best effort and
// throttled, so a drag storm does not rewrite the preferences file on every
// pixel; the two snapshots are saved independently and may observe
// different save points after a crash.
package snapshot

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/abarroso/questdeck/internal/app"
	"github.com/abarroso/questdeck/internal/app/layout"
	"github.com/abarroso/questdeck/internal/app/quest"
)

// Storage keys of the two snapshots.
const (
	KeyLayout = "layout-snapshot"
	KeyQuests = "quest-snapshot"
)

// At most one write per snapshot per interval; later changes are picked up
// by the next allowed write or the final flush.
const writesPerSecond = 2

type questSnapshot struct {
	Quests []app.Quest `json:"quests"`
}

// Service observes both stores and writes their snapshots.
type Service struct {
	prefs fyne.Preferences
	ls    *layout.Store
	qs    *quest.Store

	mu            sync.Mutex
	layoutLimiter *rate.Limiter
	questLimiter  *rate.Limiter
	layoutDirty   bool
	questsDirty   bool
}

// New returns a service for the given stores. Call [Service.Start] to begin
// observing.
func New(prefs fyne.Preferences, ls *layout.Store, qs *quest.Store) *Service {
	return &Service{
		prefs:         prefs,
		ls:            ls,
		qs:            qs,
		layoutLimiter: rate.NewLimiter(writesPerSecond, 1),
		questLimiter:  rate.NewLimiter(writesPerSecond, 1),
	}
}

// Start subscribes to both stores. Changes to transient layout state are
// ignored.
func (s *Service) Start() {
	s.ls.Changed().AddListener(func(_ context.Context, c layout.Change) {
		if !c.Persisted() {
			return
		}
		s.saveLayout(false)
	})
	s.qs.Changed().AddListener(func(_ context.Context, _ struct{}) {
		s.saveQuests(false)
	})
}

// Restore loads both snapshots into their stores. A missing or unreadable
// layout snapshot leaves the store at its defaults; a missing quest
// snapshot seeds the starter quests. Never fails.
func (s *Service) Restore() {
	if st, ok := s.loadLayout(); ok {
		s.ls.Restore(st)
	}
	if qq, ok := s.loadQuests(); ok {
		s.qs.Restore(qq)
	} else {
		s.qs.Restore(quest.DefaultQuests())
	}
}

// Flush writes every snapshot with unsaved changes. Called on shutdown.
func (s *Service) Flush() {
	s.mu.Lock()
	layoutDirty := s.layoutDirty
	questsDirty := s.questsDirty
	s.mu.Unlock()
	var g errgroup.Group
	if layoutDirty {
		g.Go(func() error {
			s.saveLayout(true)
			return nil
		})
	}
	if questsDirty {
		g.Go(func() error {
			s.saveQuests(true)
			return nil
		})
	}
	g.Wait()
}

func (s *Service) saveLayout(force bool) {
	s.mu.Lock()
	if !force && !s.layoutLimiter.Allow() {
		s.layoutDirty = true
		s.mu.Unlock()
		return
	}
	s.layoutDirty = false
	s.mu.Unlock()

	b, err := json.Marshal(s.ls.PersistedState())
	if err != nil {
		slog.Error("Failed to serialize layout snapshot", "error", err)
		return
	}
	s.prefs.SetString(KeyLayout, string(b))
}

func (s *Service) saveQuests(force bool) {
	s.mu.Lock()
	if !force && !s.questLimiter.Allow() {
		s.questsDirty = true
		s.mu.Unlock()
		return
	}
	s.questsDirty = false
	s.mu.Unlock()

	b, err := json.Marshal(questSnapshot{Quests: s.qs.Quests()})
	if err != nil {
		slog.Error("Failed to serialize quest snapshot", "error", err)
		return
	}
	s.prefs.SetString(KeyQuests, string(b))
}

func (s *Service) loadLayout() (layout.State, bool) {
	var st layout.State
	raw := s.prefs.String(KeyLayout)
	if raw == "" {
		return st, false
	}
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		slog.Error("Discarding unreadable layout snapshot", "error", err)
		return st, false
	}
	return st, true
}

func (s *Service) loadQuests() ([]app.Quest, bool) {
	raw := s.prefs.String(KeyQuests)
	if raw == "" {
		return nil, false
	}
	var snap questSnapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		slog.Error("Discarding unreadable quest snapshot", "error", err)
		return nil, false
	}
	return snap.Quests, true
}
