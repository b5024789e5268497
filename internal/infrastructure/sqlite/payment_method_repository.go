package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

var _ repository.PaymentMethodRepository = (*PaymentMethodRepo)(nil)

// PaymentMethodRepo implementación SQLite de PaymentMethodRepository.
type PaymentMethodRepo struct {
	q querier
}

func NewPaymentMethodRepository(q querier) *PaymentMethodRepo {
	return &PaymentMethodRepo{q: q}
}

func (r *PaymentMethodRepo) ListByCustomer(ctx context.Context, customerID int64) ([]*entity.PaymentMethod, error) {
	query := `
		SELECT id, customer_id, gateway, token, brand, last4, exp_month, exp_year,
			billing_name, billing_address_id, created_at
		FROM payment_methods WHERE customer_id = ? ORDER BY id`
	rows, err := r.q.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list payment methods: %w", err)
	}
	defer rows.Close()
	var list []*entity.PaymentMethod
	for rows.Next() {
		var pm entity.PaymentMethod
		var brand, last4, billingName sql.NullString
		var expMonth, expYear sql.NullInt32
		var billingAddressID sql.NullInt64
		if err := rows.Scan(&pm.ID, &pm.CustomerID, &pm.Gateway, &pm.Token, &brand, &last4,
			&expMonth, &expYear, &billingName, &billingAddressID, &pm.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan payment method: %w", err)
		}
		pm.Brand, pm.Last4, pm.BillingName = optString(brand), optString(last4), optString(billingName)
		pm.ExpMonth, pm.ExpYear = optInt(expMonth), optInt(expYear)
		if billingAddressID.Valid {
			id := billingAddressID.Int64
			pm.BillingAddressID = &id
		}
		list = append(list, &pm)
	}
	return list, rows.Err()
}

func (r *PaymentMethodRepo) Create(ctx context.Context, pm *entity.PaymentMethod) error {
	query := `
		INSERT INTO payment_methods (customer_id, gateway, token, brand, last4, exp_month, exp_year,
			billing_name, billing_address_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.q.ExecContext(ctx, query,
		pm.CustomerID, pm.Gateway, pm.Token, nullable(pm.Brand), nullable(pm.Last4),
		nullable(pm.ExpMonth), nullable(pm.ExpYear), nullable(pm.BillingName),
		nullable(pm.BillingAddressID), pm.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert payment method: %w", classify(err))
	}
	if pm.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("payment method id: %w", err)
	}
	return nil
}

func optInt(n sql.NullInt32) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int32)
	return &v
}
