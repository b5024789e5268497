// Package sqlite implementa los repositorios sobre SQLite (modernc.org/sqlite, sin cgo).
// Se usa en desarrollo local y en los tests; producción usa el paquete postgres.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/jhoicas/customers-api/internal/application/customer"
	"github.com/jhoicas/customers-api/internal/domain/repository"
	"github.com/jhoicas/customers-api/internal/infrastructure/migration"
	"github.com/jhoicas/customers-api/internal/infrastructure/sqlite/migrations"
	"github.com/jhoicas/customers-api/pkg/logger"
)

var _ customer.TxRunner = (*Store)(nil)

// Pragmas aplicados a cada conexión del pool: sin foreign_keys no hay
// cascada ni SET NULL.
const dsnParams = "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_txlock=immediate&_time_format=sqlite"

// Store base SQLite con sus repositorios transaccionales.
type Store struct {
	db *sql.DB
}

// Open abre (o crea) la base en path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("ruta de sqlite requerida")
	}
	db, err := sql.Open("sqlite", filepath.Clean(path)+dsnParams)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	return &Store{db: db}, nil
}

// Close cierra el pool.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping verifica que la base responde (usado por /health).
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Run inicia una transacción, ejecuta fn con repos atados a la tx y hace Commit o Rollback.
func (s *Store) Run(ctx context.Context, fn func(repos repository.Repositories) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	repos := repository.Repositories{
		Customers:      NewCustomerRepository(tx),
		Addresses:      NewAddressRepository(tx),
		PaymentMethods: NewPaymentMethodRepository(tx),
	}
	if err := fn(repos); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", classify(err))
	}
	return nil
}

// NewMigrator construye un migrador golang-migrate sobre el esquema embebido.
// Cerrar el migrador cierra también la base del Store.
func (s *Store) NewMigrator() (*migrate.Migrate, error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, fmt.Errorf("migrations source: %w", err)
	}
	driver, err := migratesqlite.WithInstance(s.db, &migratesqlite.Config{})
	if err != nil {
		return nil, fmt.Errorf("migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return nil, fmt.Errorf("migrate init: %w", err)
	}
	return m, nil
}

// Migrate aplica las migraciones pendientes sin cerrar la base.
func (s *Store) Migrate(log *logger.Logger) error {
	m, err := s.NewMigrator()
	if err != nil {
		return err
	}
	return migration.Up(m, log)
}
