package auth

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gloor0717/a4c-backlog/internal/application/dto"
	"github.com/gloor0717/a4c-backlog/internal/domain"
	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
	"github.com/gloor0717/a4c-backlog/internal/domain/repository"
	"github.com/gloor0717/a4c-backlog/pkg/jwt"
)

// bcrypt solo considera los primeros 72 bytes.
const maxPasswordBytes = 72

// JWTConfig configuración para generación de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticación: registro y login.
type AuthUseCase struct {
	userRepo repository.UserRepository
	jwtCfg   JWTConfig
	cost     int
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, jwtCfg: jwtCfg, cost: bcrypt.DefaultCost}
}

// WithHashCost cambia el coste de bcrypt (los tests usan bcrypt.MinCost).
func (uc *AuthUseCase) WithHashCost(cost int) *AuthUseCase {
	uc.cost = cost
	return uc
}

// RegisterUser crea un usuario: valida campos y rol, hashea password con bcrypt y persiste.
// Devuelve ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" || in.Role == "" {
		return nil, domain.NewValidationError("username, password, role", "son requeridos")
	}
	if !entity.IsValidRole(in.Role) {
		return nil, domain.NewValidationError("role", "debe ser admin, po o developer")
	}
	if len(in.Password) > maxPasswordBytes {
		return nil, domain.NewValidationError("password", "máximo 72 bytes")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), uc.cost)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		Username:     username,
		PasswordHash: string(hash),
		Role:         in.Role,
		CreatedAt:    time.Now().UTC(),
	}
	// La unicidad la decide el índice único del store, no una consulta previa.
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return &dto.UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}, nil
}

// Login verifica username/password y emite un JWT con id y rol.
// Usuario inexistente y password incorrecta producen el mismo ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	if strings.TrimSpace(in.Username) == "" || in.Password == "" {
		return nil, domain.NewValidationError("username, password", "son requeridos")
	}
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(in.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Comparación contra un hash ficticio para que el tiempo de respuesta no revele si el usuario existe.
		_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(in.Password))
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}
	ttl := time.Duration(uc.jwtCfg.ExpMinutes) * time.Minute
	token, err := jwt.Generate(uc.jwtCfg.Secret, user.ID, user.Role, uc.jwtCfg.Issuer, ttl)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, Role: user.Role}, nil
}

var (
	dummyOnce sync.Once
	dummy     []byte
)

func dummyHash() []byte {
	dummyOnce.Do(func() {
		dummy, _ = bcrypt.GenerateFromPassword([]byte("a4c-backlog-dummy"), bcrypt.DefaultCost)
	})
	return dummy
}
