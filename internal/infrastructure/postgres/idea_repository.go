package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/gloor0717/a4c-backlog/internal/domain"
	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
	"github.com/gloor0717/a4c-backlog/internal/domain/repository"
)

var _ repository.IdeaRepository = (*IdeaRepo)(nil)

const ideaColumns = `id, us_number, epic, story, criteria, priority, story_points, moscow, state, votes, created_at`

// IdeaRepo implementación del puerto IdeaRepository sobre PostgreSQL (usable con pool o tx).
type IdeaRepo struct {
	q Querier
}

// NewIdeaRepository construye el adaptador de persistencia para ideas. Pasar pool o tx (Querier).
func NewIdeaRepository(q Querier) *IdeaRepo {
	return &IdeaRepo{q: q}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanIdea(row rowScanner) (*entity.Idea, error) {
	var i entity.Idea
	var usNumber, epic, criteria, prio, sp, moscow *string
	var state string
	if err := row.Scan(&i.ID, &usNumber, &epic, &i.Story, &criteria, &prio, &sp, &moscow, &state, &i.Votes, &i.CreatedAt); err != nil {
		return nil, err
	}
	i.USNumber = derefString(usNumber)
	i.Epic = derefString(epic)
	i.Criteria = derefString(criteria)
	i.Priority = entity.Priority(derefString(prio))
	i.StoryPoints = entity.StoryPoints(derefString(sp))
	i.MoSCoW = entity.MoSCoW(derefString(moscow))
	i.State = entity.State(state)
	return &i, nil
}

// List devuelve todas las ideas, la más reciente primero. El id desempata creaciones en el mismo instante.
func (r *IdeaRepo) List(ctx context.Context) ([]*entity.Idea, error) {
	rows, err := r.q.Query(ctx, `SELECT `+ideaColumns+` FROM ideas ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, domain.NewStoreError("list ideas", err)
	}
	defer rows.Close()

	var list []*entity.Idea
	for rows.Next() {
		idea, err := scanIdea(rows)
		if err != nil {
			return nil, domain.NewStoreError("scan idea", err)
		}
		list = append(list, idea)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewStoreError("list ideas", err)
	}
	return list, nil
}

// GetByID obtiene una idea por id; (nil, nil) si no existe.
func (r *IdeaRepo) GetByID(ctx context.Context, id int64) (*entity.Idea, error) {
	idea, err := scanIdea(r.q.QueryRow(ctx, `SELECT `+ideaColumns+` FROM ideas WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewStoreError("get idea", err)
	}
	return idea, nil
}

// Insert crea la fila; state, votes y created_at toman el DEFAULT de la tabla.
func (r *IdeaRepo) Insert(ctx context.Context, story string) (int64, error) {
	var id int64
	if err := r.q.QueryRow(ctx, `INSERT INTO ideas (story) VALUES ($1) RETURNING id`, story).Scan(&id); err != nil {
		return 0, domain.NewStoreError("insert idea", err)
	}
	return id, nil
}

func (r *IdeaRepo) SetUSNumber(ctx context.Context, id int64, usNumber string) error {
	tag, err := r.q.Exec(ctx, `UPDATE ideas SET us_number = $2 WHERE id = $1`, id, usNumber)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("us_number %s duplicado: %w", usNumber, domain.ErrConflict)
		}
		return domain.NewStoreError("set us_number", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Patch construye un UPDATE solo con las columnas presentes en el patch.
func (r *IdeaRepo) Patch(ctx context.Context, id int64, patch entity.IdeaPatch) (*entity.Idea, error) {
	if patch.IsEmpty() {
		return nil, domain.ErrEmptyPatch
	}
	sets := make([]string, 0, 7)
	args := []any{id}
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Epic != nil {
		add("epic", nullIfEmpty(*patch.Epic))
	}
	if patch.Story != nil {
		add("story", *patch.Story)
	}
	if patch.Criteria != nil {
		add("criteria", nullIfEmpty(*patch.Criteria))
	}
	if patch.Priority != nil {
		add("priority", nullIfEmpty(string(*patch.Priority)))
	}
	if patch.StoryPoints != nil {
		add("story_points", nullIfEmpty(string(*patch.StoryPoints)))
	}
	if patch.MoSCoW != nil {
		add("moscow", nullIfEmpty(string(*patch.MoSCoW)))
	}
	if patch.State != nil {
		add("state", string(*patch.State))
	}

	query := `UPDATE ideas SET ` + strings.Join(sets, ", ") + ` WHERE id = $1 RETURNING ` + ideaColumns
	idea, err := scanIdea(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewStoreError("patch idea", err)
	}
	return idea, nil
}

func (r *IdeaRepo) UpdatePriority(ctx context.Context, id int64, priority entity.Priority) error {
	tag, err := r.q.Exec(ctx, `UPDATE ideas SET priority = $2 WHERE id = $1`, id, nullIfEmpty(string(priority)))
	if err != nil {
		return domain.NewStoreError("update priority", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// IncrementVotes suma en la base para que incrementos concurrentes no se pisen.
func (r *IdeaRepo) IncrementVotes(ctx context.Context, id int64) (*entity.Idea, error) {
	idea, err := scanIdea(r.q.QueryRow(ctx, `UPDATE ideas SET votes = votes + 1 WHERE id = $1 RETURNING `+ideaColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, domain.NewStoreError("increment votes", err)
	}
	return idea, nil
}

// Delete borra la idea; idea_votes cae por ON DELETE CASCADE.
func (r *IdeaRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM ideas WHERE id = $1`, id)
	if err != nil {
		return domain.NewStoreError("delete idea", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
