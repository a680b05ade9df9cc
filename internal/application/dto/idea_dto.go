package dto

import "time"

// CreateIdeaRequest entrada para enviar una idea. Solo story es obligatorio.
type CreateIdeaRequest struct {
	Story string `json:"story" validate:"required"`
}

// ImportIdeaRequest fila de una carga masiva. epic y criteria vacíos quedan sin definir.
type ImportIdeaRequest struct {
	Epic     string
	Story    string
	Criteria string
}

// UpdateIdeaRequest edición completa (solo admin). Los campos ausentes no se tocan;
// una cadena vacía deja el campo sin definir.
type UpdateIdeaRequest struct {
	Epic        *string `json:"epic"`
	Story       *string `json:"story"`
	Criteria    *string `json:"criteria"`
	Priority    *string `json:"priority"`
	StoryPoints *string `json:"storyPoints"`
	MoSCoW      *string `json:"moscow"`
	State       *string `json:"state"`
}

// UpdatePriorityRequest cambio de prioridad (po o admin).
type UpdatePriorityRequest struct {
	Priority *string `json:"priority"`
}

// IdeaResponse salida de una idea. Los campos sin definir se serializan como null.
type IdeaResponse struct {
	ID          int64     `json:"id"`
	USNumber    string    `json:"usNumber"`
	Epic        *string   `json:"epic"`
	Story       string    `json:"story"`
	Criteria    *string   `json:"criteria"`
	Priority    *string   `json:"priority"`
	StoryPoints *string   `json:"storyPoints"`
	MoSCoW      *string   `json:"moscow"`
	State       string    `json:"state"`
	Votes       int       `json:"votes"`
	CreatedAt   time.Time `json:"createdAt"`
}
