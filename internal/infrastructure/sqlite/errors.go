package sqlite

import (
	"errors"
	"strings"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/jhoicas/customers-api/internal/domain"
)

// classify traduce violaciones de constraints a errores de dominio; el resto
// se devuelve tal cual para que el caller lo envuelva.
func classify(err error) error {
	var se *sqlite.Error
	if !errors.As(err, &se) {
		return err
	}
	msg := se.Error()
	switch {
	case se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE,
		se.Code() == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
		strings.Contains(msg, "UNIQUE constraint failed"):
		return domain.Conflict("email duplicado o constraint violada", msg)
	case se.Code() == sqlite3.SQLITE_CONSTRAINT_CHECK,
		strings.Contains(msg, "CHECK constraint failed"):
		return &domain.Error{Kind: domain.ErrValidation, Message: "valor no permitido", Detail: msg}
	case se.Code() == sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY,
		strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return &domain.Error{Kind: domain.ErrNotFound, Message: "recurso referenciado no existe", Detail: msg}
	}
	return err
}
