package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"

	"github.com/jhoicas/customers-api/internal/infrastructure/migration"
	"github.com/jhoicas/customers-api/internal/infrastructure/postgres"
	"github.com/jhoicas/customers-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/customers-api/pkg/config"
	"github.com/jhoicas/customers-api/pkg/logger"
)

func main() {
	flag.Parse()
	args := flag.Args()
	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cargar configuración:", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Named("migrate")

	m, err := newMigrator(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("inicializar migraciones")
	}
	defer func() { _, _ = m.Close() }()
	m.Log = migration.NewLogger(log, false)

	switch args[0] {
	case "up":
		if err := migration.Up(m, log); err != nil {
			log.Fatal().Err(err).Msg("up")
		}
		log.Info().Msg("migraciones aplicadas")

	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				log.Fatal().Str("steps", args[1]).Msg("down: número de pasos inválido")
			}
			steps = n
		}
		if err := migration.Down(m, steps); err != nil {
			log.Fatal().Err(err).Msg("down")
		}
		log.Info().Int("steps", steps).Msg("migraciones revertidas")

	case "version":
		v, dirty, err := migration.Version(m)
		if err != nil {
			log.Fatal().Err(err).Msg("version")
		}
		fmt.Printf("version: %d  dirty: %v\n", v, dirty)

	case "force":
		if len(args) < 2 {
			log.Fatal().Msg("force: falta la versión")
		}
		v, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal().Str("version", args[1]).Msg("force: versión inválida")
		}
		if err := migration.Force(m, v); err != nil {
			log.Fatal().Err(err).Msg("force")
		}
		log.Info().Int("version", v).Msg("versión forzada")

	default:
		usage()
		os.Exit(1)
	}
}

// newMigrator elige el esquema embebido del motor configurado.
func newMigrator(cfg config.DBConfig) (*migrate.Migrate, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		return postgres.NewMigrator(cfg.ConnectionString())
	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		// Cerrar el migrador cierra también la base.
		return s.NewMigrator()
	}
	return nil, errors.New("DB_DRIVER no soportado: " + cfg.Driver)
}

func usage() {
	fmt.Fprintln(os.Stderr, `Uso: migrate <comando> [args]

Comandos:
  up           Aplica las migraciones pendientes
  down [N]     Revierte N migraciones (por defecto 1)
  version      Muestra la versión aplicada
  force <V>    Fija la versión sin ejecutar SQL (estado dirty)

Entorno:
  DB_DRIVER          postgres | sqlite
  DATABASE_URL       DSN de PostgreSQL (o DB_HOST, DB_PORT, DB_USER, ...)
  SQLITE_PATH        Archivo SQLite (por defecto customers.sqlite)`)
}
