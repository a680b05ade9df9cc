package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/gloor0717/a4c-backlog/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, estado, latencia y request id.
// Debe ir después de requestid para que el header X-Request-ID ya esté puesto.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			// El ErrorHandler aún no escribió la respuesta; se invoca aquí para registrar el estado real.
			if herr := c.App().ErrorHandler(c, err); herr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		status := c.Response().StatusCode()
		ev := log.Info()
		switch {
		case status >= fiber.StatusInternalServerError:
			ev = log.Error()
		case status >= fiber.StatusBadRequest:
			ev = log.Warn()
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("ip", c.IP()).
			Str("request_id", c.GetRespHeader(fiber.HeaderXRequestID)).
			Msg("http")
		return nil
	}
}
