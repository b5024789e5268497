package domain

import (
	"errors"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrValidation = errors.New("entrada inválida")
	ErrNotFound   = errors.New("recurso no encontrado")
	ErrConflict   = errors.New("conflicto con el estado actual")
	// ErrInvalidInput cuerpo de la petición ilegible (JSON mal formado, formulario corrupto).
	ErrInvalidInput = errors.New("cuerpo inválido")
)

// Error es un error clasificado. Kind es uno de los sentinels de arriba y
// permite errors.Is(err, domain.ErrConflict); Detail conserva el mensaje del
// motor de base de datos cuando lo hay.
type Error struct {
	Kind    error
	Message string
	Detail  string
	Fields  []string
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Message)
	if len(e.Fields) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(e.Fields, ", "))
		b.WriteString("]")
	}
	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Kind }

// Validation construye un error de validación (400).
func Validation(msg string, fields ...string) *Error {
	return &Error{Kind: ErrValidation, Message: msg, Fields: fields}
}

// NotFound construye un error de recurso inexistente (404).
func NotFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

// Conflict construye un error de conflicto (409) con el diagnóstico del constraint.
func Conflict(msg, detail string) *Error {
	return &Error{Kind: ErrConflict, Message: msg, Detail: detail}
}

// AsError extrae el *Error clasificado, si lo hay.
func AsError(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}
