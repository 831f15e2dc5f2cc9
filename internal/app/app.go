// Package app is the root package of all domain related packages.
//
// All entity types are defined in this package.
package app

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NewID returns a random 16 character hex id for user created entities.
func NewID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(fmt.Sprintf("generate id: %s", err))
	}
	return hex.EncodeToString(b)
}

// Pages a button or the navigation can route to.
// An empty page ID and PageHome both denote the home view.
const (
	PageHome      = "home"
	PageBody      = "body"
	PageInventory = "inventory"
	PageMap       = "map"
	PageMissions  = "missions"
	PageSettings  = "settings"
)

// Titler converts a string into a title for english language.
var Titler = cases.Title(language.English)

// Point is a position relative to the center of the home canvas.
// Positive X extends right, positive Y extends down.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// ButtonItem is a user placed shortcut on the home canvas.
type ButtonItem struct {
	ID    string  `json:"id"`
	Label string  `json:"label"` // also the fallback routing key
	Icon  string  `json:"icon,omitempty"`
	X     float32 `json:"x"`
	Y     float32 `json:"y"`
}

// Position returns the button's position as a point.
func (b ButtonItem) Position() Point {
	return Point{X: b.X, Y: b.Y}
}

// QuestStatus is the column a quest belongs to on the board.
type QuestStatus string

const (
	QuestStatusTodo     QuestStatus = "todo"
	QuestStatusProgress QuestStatus = "progress"
	QuestStatusDone     QuestStatus = "done"
)

// QuestStatuses returns all statuses in board column order.
func QuestStatuses() []QuestStatus {
	return []QuestStatus{QuestStatusTodo, QuestStatusProgress, QuestStatusDone}
}

// Display returns the column title for a status.
func (s QuestStatus) Display() string {
	switch s {
	case QuestStatusTodo:
		return "A Fazer"
	case QuestStatusProgress:
		return "Em Progresso"
	case QuestStatusDone:
		return "Concluído"
	}
	return string(s)
}

// QuestDifficulty rates a quest. The values are display strings.
type QuestDifficulty string

const (
	DifficultyEasy   QuestDifficulty = "Fácil"
	DifficultyMedium QuestDifficulty = "Médio"
	DifficultyHard   QuestDifficulty = "Difícil"
	DifficultyDeadly QuestDifficulty = "Mortal"
)

// QuestDifficulties returns all difficulties in ascending order.
func QuestDifficulties() []QuestDifficulty {
	return []QuestDifficulty{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyDeadly}
}

// Quest is a work item on the quest board.
type Quest struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Status      QuestStatus     `json:"status"`
	Difficulty  QuestDifficulty `json:"difficulty"`
	Notes       string          `json:"notes"`
	Reward      string          `json:"reward,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// BodyPartName identifies a part on the body status panel.
type BodyPartName string

const (
	BodyPartHead     BodyPartName = "head"
	BodyPartTorso    BodyPartName = "torso"
	BodyPartLeftArm  BodyPartName = "leftArm"
	BodyPartRightArm BodyPartName = "rightArm"
	BodyPartLeftLeg  BodyPartName = "leftLeg"
	BodyPartRightLeg BodyPartName = "rightLeg"
)

// BodyCondition is the derived condition of a body part.
type BodyCondition string

const (
	ConditionHealthy  BodyCondition = "healthy"
	ConditionInjured  BodyCondition = "injured"
	ConditionCritical BodyCondition = "critical"
	ConditionBroken   BodyCondition = "broken"
)

// BodyPartStatus is the state of a single body part.
type BodyPartStatus struct {
	Name      BodyPartName
	Label     string
	Health    int // 0-100
	Condition BodyCondition
}

// BodyStats are the character's vitals. All values range 0-100.
type BodyStats struct {
	Health int
	Energy int
	Hunger int
	Thirst int
	Sanity int
}
