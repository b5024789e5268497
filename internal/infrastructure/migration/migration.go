// Package migration aplica los esquemas embebidos con golang-migrate,
// independientemente del motor (PostgreSQL o SQLite).
package migration

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-migrate/migrate/v4"

	"github.com/jhoicas/customers-api/pkg/logger"
)

// Up aplica las migraciones pendientes. Sin cambios no es un error.
func Up(m *migrate.Migrate, log *logger.Logger) error {
	if log != nil {
		m.Log = NewLogger(log, false)
	}
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}

// Down revierte steps migraciones.
func Down(m *migrate.Migrate, steps int) error {
	if steps < 1 {
		return fmt.Errorf("steps debe ser >= 1")
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate down: %w", err)
	}
	return nil
}

// Version devuelve la versión aplicada; 0 si no hay ninguna.
func Version(m *migrate.Migrate) (uint, bool, error) {
	v, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return v, dirty, err
}

// Logger adapta el logger zerolog a migrate.Logger.
type Logger struct {
	log     *logger.Logger
	verbose bool
}

var _ migrate.Logger = Logger{}

// NewLogger construye el adaptador.
func NewLogger(log *logger.Logger, verbose bool) Logger {
	return Logger{log: log.Named("migrate"), verbose: verbose}
}

func (l Logger) Printf(format string, v ...any) {
	l.log.Info().Msgf(strings.TrimSpace(format), v...)
}

func (l Logger) Verbose() bool { return l.verbose }

// Force fija la versión sin ejecutar SQL (recuperación de un estado dirty).
func Force(m *migrate.Migrate, version int) error {
	if err := m.Force(version); err != nil {
		return fmt.Errorf("migrate force: %w", err)
	}
	return nil
}
