package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

var _ repository.AddressRepository = (*AddressRepo)(nil)

// AddressRepo implementación SQLite de AddressRepository.
type AddressRepo struct {
	q querier
}

func NewAddressRepository(q querier) *AddressRepo {
	return &AddressRepo{q: q}
}

func (r *AddressRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.Address, error) {
	query := `
		SELECT id, customer_id, linea1, linea2, distrito, provincia, region, pais,
			codigo_postal, tipo, es_principal, created_at
		FROM addresses WHERE customer_id = ? ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list addresses: %w", err)
	}
	defer rows.Close()
	var list []*entity.Address
	for rows.Next() {
		var a entity.Address
		var tipo string
		var linea2, distrito, provincia, region, cp sql.NullString
		if err := rows.Scan(&a.ID, &a.CustomerID, &a.Linea1, &linea2, &distrito, &provincia,
			&region, &a.Pais, &cp, &tipo, &a.EsPrincipal, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan address: %w", err)
		}
		a.Tipo = entity.AddressType(tipo)
		a.Linea2, a.Distrito, a.Provincia = optString(linea2), optString(distrito), optString(provincia)
		a.Region, a.CodigoPostal = optString(region), optString(cp)
		list = append(list, &a)
	}
	return list, rows.Err()
}

func (r *AddressRepo) Create(ctx context.Context, a *entity.Address) error {
	query := `
		INSERT INTO addresses (customer_id, linea1, linea2, distrito, provincia, region, pais,
			codigo_postal, tipo, es_principal, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.q.ExecContext(ctx, query,
		a.CustomerID, a.Linea1, nullable(a.Linea2), nullable(a.Distrito), nullable(a.Provincia),
		nullable(a.Region), a.Pais, nullable(a.CodigoPostal), string(a.Tipo), a.EsPrincipal, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert address: %w", classify(err))
	}
	if a.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("address id: %w", err)
	}
	return nil
}

func (r *AddressRepo) BelongsToCustomer(ctx context.Context, addressID, customerID int64) (bool, error) {
	var ok bool
	err := r.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM addresses WHERE id = ? AND customer_id = ?)`,
		addressID, customerID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("address belongs to customer: %w", err)
	}
	return ok, nil
}

func (r *AddressRepo) ClearPrimary(ctx context.Context, customerID int64) error {
	_, err := r.q.ExecContext(ctx,
		`UPDATE addresses SET es_principal = 0 WHERE customer_id = ? AND es_principal = 1`, customerID)
	if err != nil {
		return fmt.Errorf("clear primary address: %w", err)
	}
	return nil
}

func (r *AddressRepo) Delete(ctx context.Context, customerID, addressID int64) (bool, error) {
	res, err := r.q.ExecContext(ctx, `DELETE FROM addresses WHERE id = ? AND customer_id = ?`, addressID, customerID)
	if err != nil {
		return false, fmt.Errorf("delete address: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete address: %w", err)
	}
	return n > 0, nil
}

func optString(s sql.NullString) *string {
	if !s.Valid {
		return nil
	}
	return &s.String
}
