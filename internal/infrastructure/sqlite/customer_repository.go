package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, nombre, apellido, email, telefono_e164, email_verified_at,
	consent_marketing, consent_terminos, consent_privacidad, created_at, updated_at`

// CustomerRepo implementación SQLite de CustomerRepository.
type CustomerRepo struct {
	q querier
}

// NewCustomerRepository construye el adaptador sobre *sql.DB o *sql.Tx.
func NewCustomerRepository(q querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (nombre, apellido, email, telefono_e164,
			consent_marketing, consent_terminos, consent_privacidad, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.q.ExecContext(ctx, query,
		c.Nombre, c.Apellido, c.Email, nullable(c.TelefonoE164),
		c.ConsentMarketing, c.ConsentTerminos, c.ConsentPrivacidad, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", classify(err))
	}
	if c.ID, err = res.LastInsertId(); err != nil {
		return fmt.Errorf("customer id: %w", err)
	}
	return nil
}

// GetByID nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	row := r.q.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = ?`, id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

func (r *CustomerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = ?)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists customer: %w", err)
	}
	return ok, nil
}

// Update escribe solo los campos presentes del parche (COALESCE con NULL conserva el valor).
func (r *CustomerRepo) Update(ctx context.Context, id int64, p entity.CustomerPatch, updatedAt time.Time) (bool, error) {
	query := `
		UPDATE customers SET
			nombre             = COALESCE(?, nombre),
			apellido           = COALESCE(?, apellido),
			email              = COALESCE(?, email),
			telefono_e164      = COALESCE(?, telefono_e164),
			email_verified_at  = COALESCE(?, email_verified_at),
			consent_marketing  = COALESCE(?, consent_marketing),
			consent_terminos   = COALESCE(?, consent_terminos),
			consent_privacidad = COALESCE(?, consent_privacidad),
			updated_at         = ?
		WHERE id = ?`
	res, err := r.q.ExecContext(ctx, query,
		nullable(p.Nombre), nullable(p.Apellido), nullable(p.Email), nullable(p.TelefonoE164),
		nullable(p.EmailVerifiedAt), nullable(p.ConsentMarketing), nullable(p.ConsentTerminos),
		nullable(p.ConsentPrivacidad), updatedAt, id,
	)
	if err != nil {
		return false, fmt.Errorf("update customer: %w", classify(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("update customer: %w", err)
	}
	return n > 0, nil
}

func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM customers WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func scanCustomer(row rowScanner) (*entity.Customer, error) {
	var c entity.Customer
	var telefono sql.NullString
	var verified sql.NullTime
	err := row.Scan(
		&c.ID, &c.Nombre, &c.Apellido, &c.Email, &telefono, &verified,
		&c.ConsentMarketing, &c.ConsentTerminos, &c.ConsentPrivacidad, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if telefono.Valid {
		c.TelefonoE164 = &telefono.String
	}
	if verified.Valid {
		t := verified.Time
		c.EmailVerifiedAt = &t
	}
	return &c, nil
}
