package usecase

import (
	"context"

	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
	"github.com/gloor0717/a4c-backlog/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repositorios atados a ella.
// Si fn devuelve error se hace rollback.
type TxRunner interface {
	Run(ctx context.Context, fn func(ideas repository.IdeaRepository, votes repository.VoteRepository) error) error
}

// BacklogPDFGenerator genera la representación imprimible del backlog.
type BacklogPDFGenerator interface {
	GenerateBacklogPDF(ctx context.Context, ideas []*entity.Idea) ([]byte, error)
}
