package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/gloor0717/a4c-backlog/internal/application/auth"
	"github.com/gloor0717/a4c-backlog/internal/application/usecase"
	infrapdf "github.com/gloor0717/a4c-backlog/internal/infrastructure/pdf"
	"github.com/gloor0717/a4c-backlog/internal/infrastructure/postgres"
	httpRouter "github.com/gloor0717/a4c-backlog/internal/interfaces/http"
	"github.com/gloor0717/a4c-backlog/pkg/config"
	"github.com/gloor0717/a4c-backlog/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("configuración inválida")
	}
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	userRepo := postgres.NewUserRepository(pool)
	ideaRepo := postgres.NewIdeaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// PDF: exportación imprimible del backlog
	pdfGenerator := infrapdf.NewMarotoPDFGenerator(cfg.App.Name)
	ideaUC := usecase.NewIdeaUseCase(ideaRepo, txRunner, pdfGenerator)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: httpRouter.ErrorHandler(log.Named("http")),
	})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(httpRouter.RequestLogger(log.Named("http")))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORS.Origins(),
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.File); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.File,
			Path:     "docs",
			Title:    "A4C Backlog API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.File).Msg("swagger deshabilitado: archivo no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:    authUC,
		UserUC:    usecase.NewUserUseCase(userRepo),
		IdeaUC:    ideaUC,
		JWTSecret: cfg.JWT.Secret,
		AppName:   cfg.App.Name,
		DB:        pool,
		Log:       log,
	})

	// Frontend compilado; las rutas de la API ya están registradas y tienen prioridad.
	if cfg.HTTP.StaticDir != "" {
		app.Static("/", cfg.HTTP.StaticDir)
	}

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
