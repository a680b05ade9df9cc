package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas). La capa HTTP los traduce a códigos de estado.
var (
	ErrValidation   = errors.New("entrada inválida")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrConflict     = errors.New("conflicto con el estado actual")

	ErrInvalidCredentials = fmt.Errorf("%w: credenciales inválidas", ErrUnauthorized)
	ErrUsernameTaken      = fmt.Errorf("%w: el nombre de usuario ya existe", ErrConflict)
	ErrAlreadyVoted       = fmt.Errorf("%w: ya votaste por esta idea", ErrConflict)
	ErrEmptyPatch         = fmt.Errorf("%w: no hay campos para actualizar", ErrValidation)
)

// ValidationError describe qué campo no pasó la validación. Es ErrValidation para errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError construye un ValidationError.
func NewValidationError(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// StoreError envuelve un fallo de la capa de persistencia (HTTP 500).
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store: %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NewStoreError envuelve err con la operación que falló. Devuelve nil si err es nil.
func NewStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StoreError{Op: op, Err: err}
}
