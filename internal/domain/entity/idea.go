package entity

import (
	"fmt"
	"time"
)

// Priority prioridad de una idea. El valor vacío significa "sin definir".
type Priority string

const (
	PriorityLow    Priority = "Low"
	PriorityMedium Priority = "Medium"
	PriorityHigh   Priority = "High"
)

// StoryPoints estimación en tallas de camiseta. El valor vacío significa "sin definir".
type StoryPoints string

const (
	StoryPointsXS StoryPoints = "XS"
	StoryPointsS  StoryPoints = "S"
	StoryPointsM  StoryPoints = "M"
	StoryPointsL  StoryPoints = "L"
	StoryPointsXL StoryPoints = "XL"
)

// MoSCoW clasificación de priorización. El valor vacío significa "sin definir".
type MoSCoW string

const (
	MoSCoWMust   MoSCoW = "Must-have"
	MoSCoWShould MoSCoW = "Should-have"
	MoSCoWCould  MoSCoW = "Could-have"
	MoSCoWWont   MoSCoW = "Won't-have"
)

// State estado de flujo de trabajo. Un admin puede fijar cualquier valor en cualquier orden.
type State string

const (
	StateToValidate State = "to-validate"
	StateInProgress State = "in-progress"
	StateDone       State = "done"
	StateToArchive  State = "to-archive"
)

// Valid informa si p es vacío o uno de los valores conocidos.
func (p Priority) Valid() bool {
	switch p {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

func (s StoryPoints) Valid() bool {
	switch s {
	case "", StoryPointsXS, StoryPointsS, StoryPointsM, StoryPointsL, StoryPointsXL:
		return true
	}
	return false
}

func (m MoSCoW) Valid() bool {
	switch m {
	case "", MoSCoWMust, MoSCoWShould, MoSCoWCould, MoSCoWWont:
		return true
	}
	return false
}

// Valid informa si s es un estado conocido. A diferencia de los demás campos, state nunca queda vacío.
func (s State) Valid() bool {
	switch s {
	case StateToValidate, StateInProgress, StateDone, StateToArchive:
		return true
	}
	return false
}

// Idea es una entrada del backlog (user story).
// Epic y Criteria vacíos se persisten como NULL.
type Idea struct {
	ID          int64
	USNumber    string
	Epic        string
	Story       string
	Criteria    string
	Priority    Priority
	StoryPoints StoryPoints
	MoSCoW      MoSCoW
	State       State
	Votes       int
	CreatedAt   time.Time
}

// USNumber deriva el identificador visible a partir del id: 7 -> "US-007", 1234 -> "US-1234".
func USNumber(id int64) string {
	return fmt.Sprintf("US-%03d", id)
}

// IdeaPatch actualización parcial: solo se aplican los campos no nil.
type IdeaPatch struct {
	Epic        *string
	Story       *string
	Criteria    *string
	Priority    *Priority
	StoryPoints *StoryPoints
	MoSCoW      *MoSCoW
	State       *State
}

// IsEmpty informa si el patch no trae ningún campo.
func (p IdeaPatch) IsEmpty() bool {
	return p.Epic == nil && p.Story == nil && p.Criteria == nil && p.Priority == nil &&
		p.StoryPoints == nil && p.MoSCoW == nil && p.State == nil
}

// Apply copia sobre idea los campos presentes en el patch.
func (p IdeaPatch) Apply(idea *Idea) {
	if p.Epic != nil {
		idea.Epic = *p.Epic
	}
	if p.Story != nil {
		idea.Story = *p.Story
	}
	if p.Criteria != nil {
		idea.Criteria = *p.Criteria
	}
	if p.Priority != nil {
		idea.Priority = *p.Priority
	}
	if p.StoryPoints != nil {
		idea.StoryPoints = *p.StoryPoints
	}
	if p.MoSCoW != nil {
		idea.MoSCoW = *p.MoSCoW
	}
	if p.State != nil {
		idea.State = *p.State
	}
}
