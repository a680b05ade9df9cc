package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin        = "admin"
	RoleProductOwner = "po"
	RoleDeveloper    = "developer"
)

// IsValidRole informa si role pertenece al conjunto permitido.
func IsValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleProductOwner, RoleDeveloper:
		return true
	}
	return false
}

// User representa un usuario del sistema. Inmutable una vez creado.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // admin, po, developer
	CreatedAt    time.Time
}
