package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementación de AddressRepository (usable con pool o tx).
type AddressRepo struct {
	q Querier
}

// NewAddressRepository construye el adaptador.
func NewAddressRepository(q Querier) *AddressRepo {
	return &AddressRepo{q: q}
}

// ListByCustomer lista las direcciones del cliente en orden de creación.
func (r *AddressRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Address, error) {
	query := `
		SELECT id, customer_id, linea1, linea2, distrito, provincia, region, pais,
			codigo_postal, tipo, es_principal, created_at
		FROM addresses WHERE customer_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Address
	for rows.Next() {
		var a entity.Address
		var tipo string
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Linea1, &a.Linea2, &a.Distrito, &a.Provincia,
			&a.Region, &a.Pais, &a.CodigoPostal, &tipo, &a.EsPrincipal, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		a.Tipo = entity.AddressType(tipo)
		list = append(list, &a)
	}
	return list, rows.Err()
}

// Create persiste una dirección y asigna su ID.
func (r *AddressRepo) Create(ctx context.Context, a *entity.Address) error {
	query := `
		INSERT INTO addresses (customer_id, linea1, linea2, distrito, provincia, region, pais,
			codigo_postal, tipo, es_principal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		a.CustomerID, a.Linea1, a.Linea2, a.Distrito, a.Provincia, a.Region, a.Pais,
		a.CodigoPostal, string(a.Tipo), a.EsPrincipal, a.CreatedAt,
	).Scan(&a.ID)
	if err != nil {
		return fmt.Errorf("insert address: %w", classify(err))
	}
	return nil
}

// BelongsToCustomer indica si la dirección existe y es del cliente.
func (r *AddressRepo) BelongsToCustomer(ctx context.Context, addressID, customerID int64) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM addresses WHERE id = $1 AND customer_id = $2)`,
		addressID, customerID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("address belongs to customer: %w", err)
	}
	return ok, nil
}

// ClearPrimary desmarca la dirección principal actual del cliente.
func (r *AddressRepo) ClearPrimary(ctx context.Context, customerID int64) error {
	_, err := r.q.Exec(ctx,
		`UPDATE addresses SET es_principal = FALSE WHERE customer_id = $1 AND es_principal`, customerID)
	if err != nil {
		return fmt.Errorf("clear primary address: %w", err)
	}
	return nil
}

// Delete elimina la dirección del cliente; billing_address_id de sus métodos de pago pasa a NULL.
func (r *AddressRepo) Delete(ctx context.Context, customerID, addressID int64) (bool, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM addresses WHERE id = $1 AND customer_id = $2`, addressID, customerID)
	if err != nil {
		return false, fmt.Errorf("delete address: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
