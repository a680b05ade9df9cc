package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
)

// UserRepository is a mock type for the repository.UserRepository type
type UserRepository struct {
	mock.Mock
}

// Create provides a mock function with given fields: ctx, user
func (_m *UserRepository) Create(ctx context.Context, user *entity.User) error {
	ret := _m.Called(ctx, user)
	return ret.Error(0)
}

// GetByUsername provides a mock function with given fields: ctx, username
func (_m *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	ret := _m.Called(ctx, username)
	var r0 *entity.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.User)
	}
	return r0, ret.Error(1)
}

// GetByID provides a mock function with given fields: ctx, id
func (_m *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	ret := _m.Called(ctx, id)
	var r0 *entity.User
	if v := ret.Get(0); v != nil {
		r0 = v.(*entity.User)
	}
	return r0, ret.Error(1)
}
