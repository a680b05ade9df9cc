// import_backlog carga ideas en bloque desde un CSV (epic;story;criteria).
//
// Uso: go run ./cmd/import_backlog --file backlog.csv [--latin1] [--dry-run]
//
// Cada fila se crea con el mismo caso de uso de ideas, de modo que el número US se asigna
// igual que en la API. story, epic y criteria de una fila se escriben en una sola transacción.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/gloor0717/a4c-backlog/internal/application/dto"
	"github.com/gloor0717/a4c-backlog/internal/application/usecase"
	"github.com/gloor0717/a4c-backlog/internal/domain/entity"
	"github.com/gloor0717/a4c-backlog/internal/infrastructure/postgres"
	"github.com/gloor0717/a4c-backlog/pkg/config"
	"github.com/gloor0717/a4c-backlog/pkg/logger"
)

func main() {
	file := pflag.StringP("file", "f", "backlog.csv", "ruta del CSV (epic;story;criteria)")
	latin1 := pflag.Bool("latin1", false, "el archivo está en ISO-8859-1")
	dryRun := pflag.Bool("dry-run", false, "solo valida el archivo, no escribe en la base")
	pflag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("import_backlog")

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("abrir CSV")
	}
	defer f.Close()

	rows, skipped, err := readRows(f, *latin1)
	if err != nil {
		log.Fatal().Err(err).Msg("leer CSV")
	}
	for _, line := range skipped {
		log.Warn().Int("line", line).Msg("fila sin story, se omite")
	}
	if *dryRun {
		log.Info().Int("rows", len(rows)).Int("skipped", len(skipped)).Msg("dry-run: archivo válido")
		return
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool, log); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	uc := usecase.NewIdeaUseCase(postgres.NewIdeaRepository(pool), postgres.NewTxRunner(pool), nil)
	imported, failed := importRows(ctx, uc, rows, log)
	log.Info().Int("imported", imported).Int("failed", failed).Int("skipped", len(skipped)).Msg("importación terminada")
	if failed > 0 {
		os.Exit(1)
	}
}

// importRows crea cada idea con su epic y criteria. Un fallo en una fila no detiene el resto
// y no deja la idea a medias.
func importRows(ctx context.Context, uc *usecase.IdeaUseCase, rows []backlogRow, log *logger.Logger) (imported, failed int) {
	for _, row := range rows {
		created, err := uc.Import(ctx, entity.RoleAdmin, dto.ImportIdeaRequest{
			Epic:     row.Epic,
			Story:    row.Story,
			Criteria: row.Criteria,
		})
		if err != nil {
			log.Error().Err(err).Int("line", row.Line).Msg("importar idea")
			failed++
			continue
		}
		log.Debug().Int("line", row.Line).Str("us_number", created.USNumber).Msg("idea importada")
		imported++
	}
	return imported, failed
}
