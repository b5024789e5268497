package sqlite

import (
	"context"
	"database/sql"
)

// querier es la superficie común de *sql.DB y *sql.Tx que usan los repositorios.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// rowScanner cubre *sql.Row y *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// nullable desreferencia un opcional: nil se enlaza como NULL.
func nullable[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
