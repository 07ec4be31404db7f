package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/jhoicas/Backoffice-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Backoffice-api/pkg/config"
	"github.com/jhoicas/Backoffice-api/pkg/logger"
)

var version = "1.0.0"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "backoffice",
		Short: "Backoffice CLI: diferencial cambiario, exportes y migraciones",
		Long: `Herramientas de línea de comandos del backoffice.

Los comandos "calcular" no necesitan base de datos. "exportar" y "migrar"
leen la conexión de DATABASE_URL o DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME
(también desde un archivo .env en el directorio actual).`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newCalcularCmd(), newExportarCmd(), newMigrarCmd())
	return root
}

// entorno configuración, logger y pool para los comandos que usan la base.
type entorno struct {
	cfg  *config.Config
	log  *logger.Logger
	pool *pgxpool.Pool
}

func abrirEntorno(ctx context.Context, component string) (*entorno, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).WithComponent(component)
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("conexión a PostgreSQL: %w", err)
	}
	return &entorno{cfg: cfg, log: log, pool: pool}, nil
}

func (e *entorno) Close() { e.pool.Close() }
