package repository

import (
	"context"

	"github.com/jhoicas/customers-api/internal/domain/entity"
)

// AddressRepository define el puerto de persistencia para Address.
type AddressRepository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Address, error)
	Create(ctx context.Context, address *entity.Address) error
	BelongsToCustomer(ctx context.Context, addressID, customerID int64) (bool, error)
	// ClearPrimary quita la marca es_principal a todas las direcciones del cliente.
	ClearPrimary(ctx context.Context, customerID int64) error
	// Delete devuelve false si la dirección no existe para ese cliente.
	Delete(ctx context.Context, customerID, addressID int64) (bool, error)
}
