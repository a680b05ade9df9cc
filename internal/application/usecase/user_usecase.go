package usecase

import (
	"context"

	"github.com/gloor0717/a4c-backlog/internal/application/dto"
	"github.com/gloor0717/a4c-backlog/internal/domain"
	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
	"github.com/gloor0717/a4c-backlog/internal/domain/repository"
)

// UserUseCase consultas sobre usuarios ya registrados.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// GetByID obtiene un usuario por ID. Un token válido de un usuario borrado da ErrNotFound.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	if id == "" {
		return nil, domain.ErrUnauthorized
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return entityToUserResponse(user), nil
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
