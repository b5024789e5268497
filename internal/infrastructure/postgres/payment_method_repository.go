package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación de PaymentMethodRepository (usable con pool o tx).
type PaymentMethodRepo struct {
	q Querier
}

// NewPaymentMethodRepository construye el adaptador.
func NewPaymentMethodRepository(q Querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

// ListByCustomer lista los métodos de pago del cliente en orden de creación.
func (r *PaymentMethodRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.PaymentMethod, error) {
	query := `
		SELECT id, customer_id, gateway, token, brand, last4, exp_month, exp_year,
			billing_name, billing_address_id, created_at
		FROM payment_methods WHERE customer_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var pm entity.PaymentMethod
		if err := rows.Scan(&pm.ID, &pm.CustomerID, &pm.Gateway, &pm.Token, &pm.Brand, &pm.Last4,
			&pm.ExpMonth, &pm.ExpYear, &pm.BillingName, &pm.BillingAddressID, &pm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		list = append(list, &pm)
	}
	return list, rows.Err()
}

// Create persiste el método de pago (token + metadatos) y asigna su ID.
func (r *PaymentMethodRepo) Create(ctx context.Context, pm *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (customer_id, gateway, token, brand, last4, exp_month, exp_year,
			billing_name, billing_address_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		pm.CustomerID, pm.Gateway, pm.Token, pm.Brand, pm.Last4, pm.ExpMonth, pm.ExpYear,
		pm.BillingName, pm.BillingAddressID, pm.CreatedAt,
	).Scan(&pm.ID)
	if err != nil {
		return fmt.Errorf("insert payment method: %w", classify(err))
	}
	return nil
}
