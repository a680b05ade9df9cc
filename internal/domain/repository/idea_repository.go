package repository

import (
	"context"

	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
)

// IdeaRepository define el puerto de persistencia para Idea (DIP).
// Las operaciones sobre un id inexistente devuelven domain.ErrNotFound, salvo GetByID que devuelve (nil, nil).
type IdeaRepository interface {
	// List devuelve todas las ideas, la más reciente primero.
	List(ctx context.Context) ([]*entity.Idea, error)
	GetByID(ctx context.Context, id int64) (*entity.Idea, error)
	// Insert crea la fila con story y valores por defecto y devuelve el id asignado.
	Insert(ctx context.Context, story string) (int64, error)
	// SetUSNumber fija el número visible; solo se llama una vez, justo después de Insert.
	SetUSNumber(ctx context.Context, id int64, usNumber string) error
	// Patch aplica solo los campos presentes y devuelve la fila resultante.
	Patch(ctx context.Context, id int64, patch entity.IdeaPatch) (*entity.Idea, error)
	UpdatePriority(ctx context.Context, id int64, priority entity.Priority) error
	// IncrementVotes suma un voto y devuelve la fila resultante.
	IncrementVotes(ctx context.Context, id int64) (*entity.Idea, error)
	Delete(ctx context.Context, id int64) error
}

// VoteRepository registra votos. La unicidad (idea, votante) la garantiza el store.
type VoteRepository interface {
	// Insert devuelve domain.ErrAlreadyVoted si el votante ya votó por la idea
	// y domain.ErrNotFound si la idea no existe.
	Insert(ctx context.Context, vote entity.Vote) error
}
