package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/customers-api/internal/application/customer"
	"github.com/jhoicas/customers-api/internal/infrastructure/migration"
	"github.com/jhoicas/customers-api/internal/infrastructure/postgres"
	"github.com/jhoicas/customers-api/internal/infrastructure/sqlite"
	httpRouter "github.com/jhoicas/customers-api/internal/interfaces/http"
	"github.com/jhoicas/customers-api/pkg/config"
	"github.com/jhoicas/customers-api/pkg/logger"
)

// store lo que la API necesita de la base: transacciones y health check.
type store interface {
	customer.TxRunner
	httpRouter.Pinger
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("db_driver", cfg.DB.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()
	db, closeDB, err := openStore(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.DB.Driver).Msg("conexión a la base de datos")
	}
	defer closeDB()

	customerUC := customer.NewUseCase(db)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))

	// Swagger UI: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.Swagger.FilePath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.Swagger.FilePath,
			Path:     "docs",
			Title:    "Customers API",
		}))
	} else {
		log.Warn().Str("file", cfg.Swagger.FilePath).Msg("swagger deshabilitado: documento no encontrado")
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		CustomerUC: customerUC,
		DB:         db,
		Logger:     log,
		AppName:    cfg.App.Name,
	})

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

// openStore abre el motor configurado y, si DB_AUTO_MIGRATE, aplica el esquema.
func openStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (store, func(), error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			return nil, nil, err
		}
		if cfg.DB.AutoMigrate {
			m, err := postgres.NewMigrator(cfg.DB.ConnectionString())
			if err != nil {
				pool.Close()
				return nil, nil, err
			}
			err = migration.Up(m, log)
			_, _ = m.Close()
			if err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return postgres.NewTxRunner(pool), pool.Close, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(cfg.DB.SQLitePath)
		if err != nil {
			return nil, nil, err
		}
		if cfg.DB.AutoMigrate {
			if err := s.Migrate(log); err != nil {
				_ = s.Close()
				return nil, nil, err
			}
		}
		return s, func() { _ = s.Close() }, nil
	}
	return nil, nil, fmt.Errorf("DB_DRIVER no soportado: %q", cfg.DB.Driver)
}
