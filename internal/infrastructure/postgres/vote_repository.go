package postgres

import (
	"context"

	"github.com/gloor0717/a4c-backlog/internal/domain"
	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
	"github.com/gloor0717/a4c-backlog/internal/domain/repository"
)

var _ repository.VoteRepository = (*VoteRepo)(nil)

// VoteRepo registra votos en idea_votes. La PK (idea_id, voter_id) impide el doble voto
// incluso con peticiones simultáneas: la segunda inserción espera a la primera y falla con 23505.
type VoteRepo struct {
	q Querier
}

func NewVoteRepository(q Querier) *VoteRepo {
	return &VoteRepo{q: q}
}

func (r *VoteRepo) Insert(ctx context.Context, vote entity.Vote) error {
	_, err := r.q.Exec(ctx,
		`INSERT INTO idea_votes (idea_id, voter_id, created_at) VALUES ($1, $2, $3)`,
		vote.IdeaID, vote.VoterID, vote.CreatedAt,
	)
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrAlreadyVoted
	case isForeignKeyViolation(err):
		return domain.ErrNotFound
	default:
		return domain.NewStoreError("insert vote", err)
	}
}
