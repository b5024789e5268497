package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/customers-api/internal/domain"
)

// Códigos SQLSTATE de violación de constraints.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// classify traduce violaciones de constraints a errores de dominio; el resto
// se devuelve tal cual para que el caller lo envuelva.
func classify(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	detail := pgErr.Message
	if pgErr.Detail != "" {
		detail += " (" + pgErr.Detail + ")"
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		return domain.Conflict("email duplicado o constraint violada", detail)
	case codeCheckViolation:
		return &domain.Error{Kind: domain.ErrValidation, Message: "valor no permitido", Detail: detail}
	case codeForeignKeyViolation:
		return &domain.Error{Kind: domain.ErrNotFound, Message: "recurso referenciado no existe", Detail: detail}
	}
	return err
}
