package domain

import "github.com/gloor0717/a4c-backlog/internal/domain/entity"

// Operation identifica una acción sujeta a autorización sobre el backlog.
type Operation string

const (
	OpEditIdea       Operation = "idea:edit"
	OpUpdatePriority Operation = "idea:priority"
	OpDeleteIdea     Operation = "idea:delete"
	OpVote           Operation = "idea:vote"
	OpExportBacklog  Operation = "backlog:export"
)

// anyAuthenticated marca operaciones abiertas a cualquier identidad autenticada.
const anyAuthenticated = "*"

// policy es la tabla única (operación -> roles). Listar y crear ideas no figuran: son públicas.
var policy = map[Operation][]string{
	OpEditIdea:       {entity.RoleAdmin},
	OpUpdatePriority: {entity.RoleProductOwner, entity.RoleAdmin},
	OpDeleteIdea:     {entity.RoleAdmin},
	OpVote:           {anyAuthenticated},
	OpExportBacklog:  {entity.RoleProductOwner, entity.RoleAdmin},
}

// Authorize devuelve nil si role puede ejecutar op.
// Sin rol -> ErrUnauthorized; rol válido pero insuficiente -> ErrForbidden.
func Authorize(role string, op Operation) error {
	if role == "" {
		return ErrUnauthorized
	}
	allowed, ok := policy[op]
	if !ok {
		return ErrForbidden
	}
	for _, r := range allowed {
		if r == anyAuthenticated && entity.IsValidRole(role) {
			return nil
		}
		if r == role {
			return nil
		}
	}
	return ErrForbidden
}
