package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gloor0717/a4c-backlog/internal/application/usecase"
	"github.com/gloor0717/a4c-backlog/internal/domain"
	"github.com/gloor0717/a4c-backlog/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(ideas repository.IdeaRepository, votes repository.VoteRepository) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return domain.NewStoreError("begin transaction", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(NewIdeaRepository(tx), NewVoteRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return domain.NewStoreError("commit transaction", err)
	}
	return nil
}
