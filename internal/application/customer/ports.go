package customer

import (
	"context"

	"github.com/jhoicas/customers-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción, pasando repositorios atados a ella.
// Hace Commit si fn devuelve nil y Rollback en cualquier otro caso; la conexión
// se libera siempre al salir.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos repository.Repositories) error) error
}
