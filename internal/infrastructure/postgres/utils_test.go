package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customers-api/internal/domain"
)

func TestClassify_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:           codeUniqueViolation,
		Message:        `duplicate key value violates unique constraint "customers_email_key"`,
		Detail:         "Key (email)=(ana@example.com) already exists.",
		ConstraintName: "customers_email_key",
	}
	err := classify(fmt.Errorf("wrapped: %w", pgErr))

	assert.True(t, errors.Is(err, domain.ErrConflict))
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Contains(t, de.Detail, "customers_email_key")
	assert.Contains(t, de.Detail, "ana@example.com")
}

func TestClassify_CheckYForeignKey(t *testing.T) {
	assert.True(t, errors.Is(classify(&pgconn.PgError{Code: codeCheckViolation}), domain.ErrValidation))
	assert.True(t, errors.Is(classify(&pgconn.PgError{Code: codeForeignKeyViolation}), domain.ErrNotFound))
}

func TestClassify_OtrosErroresPasanSinCambios(t *testing.T) {
	boom := errors.New("conexión perdida")
	assert.Same(t, boom, classify(boom))

	syntax := &pgconn.PgError{Code: "42601"}
	assert.Equal(t, error(syntax), classify(syntax))
}
