package http_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gloor0717/a4c-backlog/internal/domain"
	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
	"github.com/gloor0717/a4c-backlog/internal/domain/repository"
)

// memStore store en memoria con las mismas garantías que PostgreSQL para los tests HTTP:
// username único, (idea, votante) único y transacciones serializadas con rollback.
type memStore struct {
	mu     sync.Mutex
	nextID int64
	ideas  map[int64]entity.Idea
	votes  map[voteKey]struct{}
	users  map[string]entity.User
	clock  time.Time
}

type voteKey struct {
	ideaID int64
	voter  string
}

func newMemStore() *memStore {
	return &memStore{
		ideas: map[int64]entity.Idea{},
		votes: map[voteKey]struct{}{},
		users: map[string]entity.User{},
		clock: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *memStore) Ideas() *memIdeas { return &memIdeas{s: s} }
func (s *memStore) Users() *memUsers { return &memUsers{s: s} }

// Run serializa la transacción completa y restaura el estado si fn falla.
func (s *memStore) Run(ctx context.Context, fn func(repository.IdeaRepository, repository.VoteRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ideas := make(map[int64]entity.Idea, len(s.ideas))
	for k, v := range s.ideas {
		ideas[k] = v
	}
	votes := make(map[voteKey]struct{}, len(s.votes))
	for k := range s.votes {
		votes[k] = struct{}{}
	}
	nextID := s.nextID

	if err := fn(&memIdeas{s: s, inTx: true}, &memVotes{s: s}); err != nil {
		s.ideas, s.votes, s.nextID = ideas, votes, nextID
		return err
	}
	return nil
}

type memIdeas struct {
	s    *memStore
	inTx bool
}

func (r *memIdeas) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.s.mu.Lock()
	return r.s.mu.Unlock
}

func (r *memIdeas) List(_ context.Context) ([]*entity.Idea, error) {
	defer r.lock()()
	list := make([]*entity.Idea, 0, len(r.s.ideas))
	for _, i := range r.s.ideas {
		i := i
		list = append(list, &i)
	}
	sort.Slice(list, func(a, b int) bool {
		if !list[a].CreatedAt.Equal(list[b].CreatedAt) {
			return list[a].CreatedAt.After(list[b].CreatedAt)
		}
		return list[a].ID > list[b].ID
	})
	return list, nil
}

func (r *memIdeas) GetByID(_ context.Context, id int64) (*entity.Idea, error) {
	defer r.lock()()
	i, ok := r.s.ideas[id]
	if !ok {
		return nil, nil
	}
	return &i, nil
}

func (r *memIdeas) Insert(_ context.Context, story string) (int64, error) {
	defer r.lock()()
	r.s.nextID++
	r.s.clock = r.s.clock.Add(time.Second)
	id := r.s.nextID
	r.s.ideas[id] = entity.Idea{ID: id, Story: story, State: entity.StateToValidate, CreatedAt: r.s.clock}
	return id, nil
}

func (r *memIdeas) SetUSNumber(_ context.Context, id int64, usNumber string) error {
	defer r.lock()()
	i, ok := r.s.ideas[id]
	if !ok {
		return domain.ErrNotFound
	}
	i.USNumber = usNumber
	r.s.ideas[id] = i
	return nil
}

func (r *memIdeas) Patch(_ context.Context, id int64, patch entity.IdeaPatch) (*entity.Idea, error) {
	defer r.lock()()
	i, ok := r.s.ideas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	patch.Apply(&i)
	r.s.ideas[id] = i
	return &i, nil
}

func (r *memIdeas) UpdatePriority(_ context.Context, id int64, p entity.Priority) error {
	defer r.lock()()
	i, ok := r.s.ideas[id]
	if !ok {
		return domain.ErrNotFound
	}
	i.Priority = p
	r.s.ideas[id] = i
	return nil
}

func (r *memIdeas) IncrementVotes(_ context.Context, id int64) (*entity.Idea, error) {
	defer r.lock()()
	i, ok := r.s.ideas[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	i.Votes++
	r.s.ideas[id] = i
	return &i, nil
}

func (r *memIdeas) Delete(_ context.Context, id int64) error {
	defer r.lock()()
	if _, ok := r.s.ideas[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.ideas, id)
	for k := range r.s.votes {
		if k.ideaID == id {
			delete(r.s.votes, k)
		}
	}
	return nil
}

// memVotes solo se usa dentro de Run (el lock ya está tomado).
type memVotes struct {
	s *memStore
}

func (r *memVotes) Insert(_ context.Context, v entity.Vote) error {
	if _, ok := r.s.ideas[v.IdeaID]; !ok {
		return domain.ErrNotFound
	}
	k := voteKey{ideaID: v.IdeaID, voter: v.VoterID}
	if _, dup := r.s.votes[k]; dup {
		return domain.ErrAlreadyVoted
	}
	r.s.votes[k] = struct{}{}
	return nil
}

type memUsers struct {
	s *memStore
}

func (r *memUsers) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, dup := r.s.users[u.Username]; dup {
		return domain.ErrUsernameTaken
	}
	r.s.users[u.Username] = *u
	return nil
}

func (r *memUsers) GetByUsername(_ context.Context, username string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	u, ok := r.s.users[username]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.ID == id {
			u := u
			return &u, nil
		}
	}
	return nil, nil
}
