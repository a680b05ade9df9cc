package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/gloor0717/a4c-backlog/internal/application/dto"
	"github.com/gloor0717/a4c-backlog/internal/domain"
	"github.com/gloor0717/a4c-backlog/pkg/logger"
)

// errorStatus traduce un error de dominio a código HTTP y código de error estable.
// Lo que no pertenece a la taxonomía se considera fallo interno.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrEmptyPatch):
		return fiber.StatusBadRequest, "EMPTY_PATCH"
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "INVALID_CREDENTIALS"
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrUsernameTaken):
		return fiber.StatusConflict, "USERNAME_TAKEN"
	case errors.Is(err, domain.ErrAlreadyVoted):
		return fiber.StatusConflict, "ALREADY_VOTED"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// writeError responde con dto.ErrorResponse. Los 500 se registran con la causa
// y el cliente solo recibe un mensaje genérico.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code := errorStatus(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("error interno")
		msg = "error interno"
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}

// ErrorHandler manejador de errores de Fiber: rutas inexistentes, cuerpos demasiado grandes
// y cualquier error que un handler devuelva sin responder.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			code := "HTTP_ERROR"
			switch fe.Code {
			case fiber.StatusNotFound:
				code = "NOT_FOUND"
			case fiber.StatusMethodNotAllowed:
				code = "METHOD_NOT_ALLOWED"
			case fiber.StatusRequestEntityTooLarge:
				code = "BODY_TOO_LARGE"
			}
			return c.Status(fe.Code).JSON(dto.ErrorResponse{Code: code, Message: fe.Message})
		}
		return writeError(c, log, err)
	}
}
