package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customers-api/internal/domain"
)

func TestError_UnwrapASentinel(t *testing.T) {
	err := fmt.Errorf("crear cliente: %w", domain.Conflict("email duplicado", "UNIQUE constraint failed: customers.email"))

	assert.True(t, errors.Is(err, domain.ErrConflict))
	assert.False(t, errors.Is(err, domain.ErrNotFound))

	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "UNIQUE constraint failed: customers.email", de.Detail)
}

func TestError_Mensaje(t *testing.T) {
	err := domain.Validation("campos obligatorios", "nombre", "email")
	assert.Equal(t, "campos obligatorios [nombre, email]", err.Error())

	assert.Equal(t, "no existe", domain.NotFound("no existe").Error())
	assert.Equal(t, "dup: detalle", domain.Conflict("dup", "detalle").Error())
}

func TestAsError_SinClasificar(t *testing.T) {
	_, ok := domain.AsError(errors.New("boom"))
	assert.False(t, ok)
}
