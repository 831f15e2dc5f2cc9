// Package layout provides the state container for the home canvas: placeable
// buttons, the character marker, mode flags and the global settings bag.
//
// The store is the single writer for this state. It is handed to consumers
// by reference and created explicitly in main, so there is no package level
// state and tests can run against a fresh instance.
package layout

import (
	"context"
	"slices"
	"sync"

	"github.com/maniartech/signals"
	"golang.org/x/exp/constraints"

	"github.com/abarroso/questdeck/internal/app"
)

// Aspect names the part of the store a change touched. Listeners use it to
// decide whether a persisted subset needs rewriting.
type Aspect uint

const (
	AspectButtons Aspect = iota
	AspectCharacter
	AspectEditMode
	AspectPage
	AspectSidebar
	AspectSidebarPref
	AspectSettings
)

// Change is the payload emitted on every mutation.
type Change struct {
	Aspect Aspect
}

// Persisted reports whether the changed aspect is part of the layout
// snapshot. Edit mode, page selection and the current sidebar visibility
// are session only.
func (c Change) Persisted() bool {
	switch c.Aspect {
	case AspectButtons, AspectCharacter, AspectSidebarPref, AspectSettings:
		return true
	}
	return false
}

// Defaults mirrored from a fresh install.
const (
	DefaultCharacterY   float32 = 300
	DefaultVolume               = 70
	DefaultSfxVolume            = 80
	volumeMin                   = 0
	volumeMax                   = 100
)

// Store holds the layout state. All methods are safe for concurrent use;
// every mutation is atomic from the perspective of readers.
type Store struct {
	changed signals.Signal[Change]

	mu                       sync.RWMutex
	buttons                  []app.ButtonItem
	characterPosition        app.Point
	isEditMode               bool
	activePageID             string
	showSidebar              bool
	userPrefersSidebarHidden bool
	volume                   int
	sfxVolume                int
	notifications            bool
	darkMode                 bool
	vibration                bool
}

// New returns a store with first run defaults: no buttons, the character
// marker below the exclusion zone and all settings at their defaults.
func New() *Store {
	return &Store{
		changed:           signals.NewSync[Change](),
		characterPosition: app.Point{X: 0, Y: DefaultCharacterY},
		showSidebar:       true,
		volume:            DefaultVolume,
		sfxVolume:         DefaultSfxVolume,
		notifications:     true,
		darkMode:          true,
		vibration:         true,
	}
}

// Changed returns the signal emitted after every mutation.
func (s *Store) Changed() signals.Signal[Change] {
	return s.changed
}

func (s *Store) emit(a Aspect) {
	s.changed.Emit(context.Background(), Change{Aspect: a})
}

// ToggleEditMode flips edit mode and changes nothing else.
func (s *Store) ToggleEditMode() {
	s.mu.Lock()
	s.isEditMode = !s.isEditMode
	s.mu.Unlock()
	s.emit(AspectEditMode)
}

// IsEditMode reports whether the canvas is in edit mode.
func (s *Store) IsEditMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isEditMode
}

// AddButton appends a fully formed button. The caller is responsible for a
// non colliding initial position; the drop resolver is not applied here.
func (s *Store) AddButton(b app.ButtonItem) {
	s.mu.Lock()
	s.buttons = append(s.buttons, b)
	s.mu.Unlock()
	s.emit(AspectButtons)
}

// UpdateButtonPosition replaces the position of the matching button with a
// coordinate that already went through the drop resolver. An unknown id is
// silently ignored.
func (s *Store) UpdateButtonPosition(id string, x, y float32) {
	s.mu.Lock()
	found := false
	for i := range s.buttons {
		if s.buttons[i].ID == id {
			s.buttons[i].X = x
			s.buttons[i].Y = y
			found = true
			break
		}
	}
	s.mu.Unlock()
	if found {
		s.emit(AspectButtons)
	}
}

// RemoveButton deletes the matching button. The caller obtains user
// confirmation first. An unknown id is silently ignored.
func (s *Store) RemoveButton(id string) {
	s.mu.Lock()
	n := len(s.buttons)
	s.buttons = slices.DeleteFunc(s.buttons, func(b app.ButtonItem) bool {
		return b.ID == id
	})
	removed := len(s.buttons) != n
	s.mu.Unlock()
	if removed {
		s.emit(AspectButtons)
	}
}

// Buttons returns a copy of the current button list in insertion order.
func (s *Store) Buttons() []app.ButtonItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.buttons)
}

// UpdateCharacterPosition overwrites the character marker position.
func (s *Store) UpdateCharacterPosition(x, y float32) {
	s.mu.Lock()
	s.characterPosition = app.Point{X: x, Y: y}
	s.mu.Unlock()
	s.emit(AspectCharacter)
}

// CharacterPosition returns the character marker position.
func (s *Store) CharacterPosition() app.Point {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.characterPosition
}

// SetActivePage selects the current page. An empty id and [app.PageHome]
// both denote the home view. Navigating to a sub page recomputes the
// sidebar from the persisted preference; navigating home leaves the sidebar
// as it is.
func (s *Store) SetActivePage(id string) {
	s.mu.Lock()
	s.activePageID = id
	isHome := id == "" || id == app.PageHome
	if !isHome {
		s.showSidebar = !s.userPrefersSidebarHidden
	}
	s.mu.Unlock()
	s.emit(AspectPage)
}

// ActivePageID returns the selected page id. Empty means home.
func (s *Store) ActivePageID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activePageID
}

// ToggleSidebar flips the transient sidebar visibility without touching the
// persisted preference.
func (s *Store) ToggleSidebar() {
	s.mu.Lock()
	s.showSidebar = !s.showSidebar
	s.mu.Unlock()
	s.emit(AspectSidebar)
}

// ShowSidebar reports whether the sidebar is currently visible.
func (s *Store) ShowSidebar() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.showSidebar
}

// SetUserSidebarPreference updates the persisted preference only. It takes
// effect on the next page navigation.
func (s *Store) SetUserSidebarPreference(hidden bool) {
	s.mu.Lock()
	s.userPrefersSidebarHidden = hidden
	s.mu.Unlock()
	s.emit(AspectSidebarPref)
}

// UserPrefersSidebarHidden returns the persisted sidebar preference.
func (s *Store) UserPrefersSidebarHidden() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.userPrefersSidebarHidden
}

// SetVolume sets the music volume, clamped to 0-100.
func (s *Store) SetVolume(v int) {
	s.mu.Lock()
	s.volume = clamp(v, volumeMin, volumeMax)
	s.mu.Unlock()
	s.emit(AspectSettings)
}

// Volume returns the music volume.
func (s *Store) Volume() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.volume
}

// SetSfxVolume sets the effects volume, clamped to 0-100.
func (s *Store) SetSfxVolume(v int) {
	s.mu.Lock()
	s.sfxVolume = clamp(v, volumeMin, volumeMax)
	s.mu.Unlock()
	s.emit(AspectSettings)
}

// SfxVolume returns the effects volume.
func (s *Store) SfxVolume() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sfxVolume
}

// ToggleNotifications flips the notifications setting.
func (s *Store) ToggleNotifications() {
	s.mu.Lock()
	s.notifications = !s.notifications
	s.mu.Unlock()
	s.emit(AspectSettings)
}

// NotificationsEnabled reports whether notifications are enabled.
func (s *Store) NotificationsEnabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.notifications
}

// ToggleDarkMode flips the dark mode setting.
func (s *Store) ToggleDarkMode() {
	s.mu.Lock()
	s.darkMode = !s.darkMode
	s.mu.Unlock()
	s.emit(AspectSettings)
}

// DarkMode reports whether dark mode is enabled.
func (s *Store) DarkMode() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.darkMode
}

// ToggleVibration flips the vibration setting.
func (s *Store) ToggleVibration() {
	s.mu.Lock()
	s.vibration = !s.vibration
	s.mu.Unlock()
	s.emit(AspectSettings)
}

// Vibration reports whether vibration is enabled.
func (s *Store) Vibration() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.vibration
}

// State is the persisted subset of the store.
type State struct {
	Buttons                  []app.ButtonItem `json:"buttons"`
	CharacterPosition        app.Point        `json:"characterPosition"`
	UserPrefersSidebarHidden bool             `json:"userPrefersSidebarHidden"`
	Volume                   int              `json:"volume"`
	SfxVolume                int              `json:"sfxVolume"`
	Notifications            bool             `json:"notifications"`
	DarkMode                 bool             `json:"darkMode"`
	Vibration                bool             `json:"vibration"`
}

// PersistedState returns the subset of the store that belongs in the layout
// snapshot. Edit mode, page selection and sidebar visibility are excluded.
func (s *Store) PersistedState() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Buttons:                  slices.Clone(s.buttons),
		CharacterPosition:        s.characterPosition,
		UserPrefersSidebarHidden: s.userPrefersSidebarHidden,
		Volume:                   s.volume,
		SfxVolume:                s.sfxVolume,
		Notifications:            s.notifications,
		DarkMode:                 s.darkMode,
		Vibration:                s.vibration,
	}
}

// Restore replaces the persisted subset in one step, e.g. from a loaded
// snapshot. Transient fields keep their defaults and no change is emitted.
func (s *Store) Restore(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buttons = slices.Clone(st.Buttons)
	s.characterPosition = st.CharacterPosition
	s.userPrefersSidebarHidden = st.UserPrefersSidebarHidden
	s.volume = clamp(st.Volume, volumeMin, volumeMax)
	s.sfxVolume = clamp(st.SfxVolume, volumeMin, volumeMax)
	s.notifications = st.Notifications
	s.darkMode = st.DarkMode
	s.vibration = st.Vibration
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
