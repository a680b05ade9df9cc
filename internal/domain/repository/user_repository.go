package repository

import (
	"context"

	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario. Devuelve domain.ErrUsernameTaken si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
	// GetByUsername devuelve (nil, nil) si no existe.
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
