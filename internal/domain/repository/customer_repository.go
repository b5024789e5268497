package repository

import (
	"context"
	"time"

	"github.com/jhoicas/customers-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	// List devuelve todos los clientes, el más reciente (id mayor) primero.
	List(ctx context.Context) ([]*entity.Customer, error)
	// Create inserta el cliente y asigna customer.ID. Email duplicado -> domain.ErrConflict.
	Create(ctx context.Context, customer *entity.Customer) error
	// GetByID devuelve nil, nil si no existe.
	GetByID(ctx context.Context, id int64) (*entity.Customer, error)
	Exists(ctx context.Context, id int64) (bool, error)
	// Update escribe solo los campos presentes en patch y refresca updated_at.
	// Devuelve false si el id no existe.
	Update(ctx context.Context, id int64, patch entity.CustomerPatch, updatedAt time.Time) (bool, error)
	// Delete elimina el cliente (y en cascada sus hijos). No falla si no existe.
	Delete(ctx context.Context, id int64) error
}
