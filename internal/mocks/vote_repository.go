package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
)

// VoteRepository is a mock type for the repository.VoteRepository type
type VoteRepository struct {
	mock.Mock
}

// Insert provides a mock function with given fields: ctx, vote
func (_m *VoteRepository) Insert(ctx context.Context, vote entity.Vote) error {
	ret := _m.Called(ctx, vote)
	return ret.Error(0)
}
