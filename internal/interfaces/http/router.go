package http

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/gloor0717/a4c-backlog/internal/application/auth"
	"github.com/gloor0717/a4c-backlog/internal/application/dto"
	"github.com/gloor0717/a4c-backlog/internal/application/usecase"
	"github.com/gloor0717/a4c-backlog/internal/domain"
	"github.com/gloor0717/a4c-backlog/pkg/logger"
)

// Pinger comprueba que el store responde (lo implementa *pgxpool.Pool).
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC    *auth.AuthUseCase
	UserUC    *usecase.UserUseCase
	IdeaUC    *usecase.IdeaUseCase
	JWTSecret string
	AppName   string
	DB        Pinger
	Log       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", healthHandler(deps.AppName, deps.DB))

	requireAuth := AuthMiddleware(deps.JWTSecret)

	// Auth (público salvo /me)
	authGroup := app.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC, deps.UserUC, log.Named("auth"))
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Get("/me", requireAuth, authHandler.Me)

	ideas := app.Group("/ideas")
	ideaHandler := NewIdeaHandler(deps.IdeaUC, log.Named("ideas"))

	// Lectura y envío de ideas (público)
	ideas.Get("/", ideaHandler.List)
	ideas.Post("/", ideaHandler.Create)

	// export.pdf antes de /:id para que no lo capture el parámetro
	ideas.Get("/export.pdf", requireAuth, RequirePermission(domain.OpExportBacklog), ideaHandler.ExportPDF)
	ideas.Get("/:id", ideaHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	ideas.Put("/:id", requireAuth, RequirePermission(domain.OpEditIdea), ideaHandler.Update)
	ideas.Put("/:id/priority", requireAuth, RequirePermission(domain.OpUpdatePriority), ideaHandler.UpdatePriority)
	ideas.Post("/:id/vote", requireAuth, RequirePermission(domain.OpVote), ideaHandler.Vote)
	ideas.Delete("/:id", requireAuth, RequirePermission(domain.OpDeleteIdea), ideaHandler.Delete)
}

func healthHandler(appName string, db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if db != nil {
			if err := db.Ping(c.UserContext()); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(dto.ErrorResponse{Code: "DB_UNAVAILABLE", Message: "la base de datos no responde"})
			}
		}
		return c.JSON(fiber.Map{"status": "ok", "service": appName})
	}
}
