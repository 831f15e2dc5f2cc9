// Package dragdrop bridges live pointer gestures to committed store changes.
//
// A gesture is an explicit state machine: Idle -> Dragging -> Committed or
// Reverted. While a drag is in flight only visual feedback happens; the
// owning store is touched exactly once, on release. Buttons and the
// character marker always commit (the drop resolver makes every release
// point valid); a quest card commits only when it lands on a column and
// springs back otherwise.
package dragdrop

import (
	"fyne.io/fyne/v2"

	"github.com/abarroso/questdeck/internal/app"
	"github.com/abarroso/questdeck/internal/app/geometry"
	"github.com/abarroso/questdeck/internal/app/layout"
	"github.com/abarroso/questdeck/internal/app/quest"
)

// State is the phase of a drag gesture.
type State uint

const (
	Idle State = iota
	Dragging
	Committed
	Reverted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Committed:
		return "committed"
	case Reverted:
		return "reverted"
	}
	return "unknown"
}

// Gesture tracks one drag gesture. The zero value is Idle. Illegal
// transitions are ignored, so stray events from the driver cannot corrupt
// the phase.
type Gesture struct {
	state State
}

// State returns the current phase.
func (g *Gesture) State() State {
	return g.state
}

// IsDragging reports whether a drag is in flight.
func (g *Gesture) IsDragging() bool {
	return g.state == Dragging
}

// Start enters Dragging. Valid from Idle and from either terminal phase,
// which begins the next gesture.
func (g *Gesture) Start() {
	if g.state == Dragging {
		return
	}
	g.state = Dragging
}

func (g *Gesture) commit() bool {
	if g.state != Dragging {
		return false
	}
	g.state = Committed
	return true
}

func (g *Gesture) revert() bool {
	if g.state != Dragging {
		return false
	}
	g.state = Reverted
	return true
}

// ButtonController commits drag releases of one floating button.
type ButtonController struct {
	gesture Gesture
	st      *layout.Store
}

// NewButtonController returns a controller writing to the given store.
func NewButtonController(st *layout.Store) *ButtonController {
	return &ButtonController{st: st}
}

// Start begins the gesture on the first drag event.
func (c *ButtonController) Start() {
	c.gesture.Start()
}

// IsDragging reports whether a drag is in flight.
func (c *ButtonController) IsDragging() bool {
	return c.gesture.IsDragging()
}

// State returns the gesture phase.
func (c *ButtonController) State() State {
	return c.gesture.State()
}

// End resolves the release point and commits it to the store. The release
// point is given in absolute canvas coordinates together with the live
// canvas size. Returns the committed position.
func (c *ButtonController) End(id string, abs fyne.Position, canvas fyne.Size) app.Point {
	p := geometry.ResolveDropPosition(geometry.ToRelative(abs, canvas))
	if !c.gesture.commit() {
		return p
	}
	c.st.UpdateButtonPosition(id, p.X, p.Y)
	return p
}

// CharacterController commits drag releases of the character marker.
type CharacterController struct {
	gesture Gesture
	st      *layout.Store
}

// NewCharacterController returns a controller writing to the given store.
func NewCharacterController(st *layout.Store) *CharacterController {
	return &CharacterController{st: st}
}

// Start begins the gesture on the first drag event.
func (c *CharacterController) Start() {
	c.gesture.Start()
}

// IsDragging reports whether a drag is in flight.
func (c *CharacterController) IsDragging() bool {
	return c.gesture.IsDragging()
}

// End resolves the release point and commits it to the store.
func (c *CharacterController) End(abs fyne.Position, canvas fyne.Size) app.Point {
	p := geometry.ResolveDropPosition(geometry.ToRelative(abs, canvas))
	if !c.gesture.commit() {
		return p
	}
	c.st.UpdateCharacterPosition(p.X, p.Y)
	return p
}

// ColumnZone is the live bounding rectangle of one board column, measured
// at drag time in absolute canvas coordinates.
type ColumnZone struct {
	Status app.QuestStatus
	Pos    fyne.Position
	Size   fyne.Size
}

// Contains reports whether a point lies inside the zone, edges included.
func (z ColumnZone) Contains(p fyne.Position) bool {
	return p.X >= z.Pos.X && p.X <= z.Pos.X+z.Size.Width &&
		p.Y >= z.Pos.Y && p.Y <= z.Pos.Y+z.Size.Height
}

// CardController commits drag releases of quest cards onto board columns.
type CardController struct {
	gesture Gesture
	st      *quest.Store
}

// NewCardController returns a controller writing to the given store.
func NewCardController(st *quest.Store) *CardController {
	return &CardController{st: st}
}

// Start begins the gesture on the first drag event.
func (c *CardController) Start() {
	c.gesture.Start()
}

// IsDragging reports whether a drag is in flight.
func (c *CardController) IsDragging() bool {
	return c.gesture.IsDragging()
}

// State returns the gesture phase.
func (c *CardController) State() State {
	return c.gesture.State()
}

// End tests the release point against the given column zones in order; the
// first hit wins and the quest moves to that column. With no hit the
// gesture reverts and the store stays untouched. Zones must be measured at
// release time, not cached across renders.
func (c *CardController) End(questID string, p fyne.Position, zones []ColumnZone) (app.QuestStatus, bool) {
	for _, z := range zones {
		if z.Contains(p) {
			if c.gesture.commit() {
				c.st.UpdateQuestStatus(questID, z.Status)
			}
			return z.Status, true
		}
	}
	c.gesture.revert()
	return "", false
}
