package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
)

// IdeaRepository is a mock type for the repository.IdeaRepository type
type IdeaRepository struct {
	mock.Mock
}

// List provides a mock function with given fields: ctx
func (_m *IdeaRepository) List(ctx context.Context) ([]*entity.Idea, error) {
	ret := _m.Called(ctx)
	var r0 []*entity.Idea
	if v := ret.Get(0); v != nil {
		r0 = v.([]*entity.Idea)
	}
	return r0, ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *IdeaRepository) GetByID(ctx context.Context, id int64) (*entity.Idea, error) {
	ret := _m.Called(ctx, id)
	var r0 *entity.Idea
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Idea)
	}
	return r0, ret.Error(1)
}

// Insert provides a mock function with given fields: ctx, story
func (_m *IdeaRepository) Insert(ctx context.Context, story string) (int64, error) {
	ret := _m.Called(ctx, story)
	return ret.Get(0).(int64), ret.Error(1)
}

// SetUSNumber provides a mock function with given fields: ctx, id, usNumber
func (_m *IdeaRepository) SetUSNumber(ctx context.Context, id int64, usNumber string) error {
	ret := _m.Called(ctx, id, usNumber)
	return ret.Error(0)
}

// Patch provides a mock function with given fields: ctx, id, patch
func (_m *IdeaRepository) Patch(ctx context.Context, id int64, patch entity.IdeaPatch) (*entity.Idea, error) {
	ret := _m.Called(ctx, id, patch)
	var r0 *entity.Idea
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Idea)
	}
	return r0, ret.Error(1)
}

// UpdatePriority provides a mock function with given fields: ctx, id, priority
func (_m *IdeaRepository) UpdatePriority(ctx context.Context, id int64, priority entity.Priority) error {
	ret := _m.Called(ctx, id, priority)
	return ret.Error(0)
}

// IncrementVotes provides a mock function with given fields: ctx, id
func (_m *IdeaRepository) IncrementVotes(ctx context.Context, id int64) (*entity.Idea, error) {
	ret := _m.Called(ctx, id)
	var r0 *entity.Idea
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.Idea)
	}
	return r0, ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, id
func (_m *IdeaRepository) Delete(ctx context.Context, id int64) error {
	ret := _m.Called(ctx, id)
	return ret.Error(0)
}
