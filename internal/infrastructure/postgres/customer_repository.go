package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, nombre, apellido, email, telefono_e164, email_verified_at,
	consent_marketing, consent_terminos, consent_privacidad, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// List devuelve todos los clientes ordenados por id descendente.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY id DESC`)
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

// Create persiste un nuevo cliente y asigna su ID.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO customers (nombre, apellido, email, telefono_e164,
			consent_marketing, consent_terminos, consent_privacidad, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`
	err := r.q.QueryRow(ctx, query,
		c.Nombre, c.Apellido, c.Email, c.TelefonoE164,
		c.ConsentMarketing, c.ConsentTerminos, c.ConsentPrivacidad, c.CreatedAt, c.UpdatedAt,
	).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert customer: %w", classify(err))
	}
	return nil
}

// GetByID obtiene un cliente por ID; nil si no existe.
func (r *CustomerRepo) GetByID(ctx context.Context, id int64) (*entity.Customer, error) {
	row := r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	c, err := scanCustomer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return c, nil
}

// Exists indica si el cliente existe.
func (r *CustomerRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("exists customer: %w", err)
	}
	return ok, nil
}

// Update escribe solo los campos no nil del parche. La sentencia es fija:
// cada columna actualizable tiene su parámetro y COALESCE conserva el valor
// actual cuando el parámetro llega NULL.
func (r *CustomerRepo) Update(ctx context.Context, id int64, p entity.CustomerPatch, updatedAt time.Time) (bool, error) {
	query := `
		UPDATE customers SET
			nombre             = COALESCE($2, nombre),
			apellido           = COALESCE($3, apellido),
			email              = COALESCE($4, email),
			telefono_e164      = COALESCE($5, telefono_e164),
			email_verified_at  = COALESCE($6, email_verified_at),
			consent_marketing  = COALESCE($7, consent_marketing),
			consent_terminos   = COALESCE($8, consent_terminos),
			consent_privacidad = COALESCE($9, consent_privacidad),
			updated_at         = $10
		WHERE id = $1`
	tag, err := r.q.Exec(ctx, query, id,
		p.Nombre, p.Apellido, p.Email, p.TelefonoE164, p.EmailVerifiedAt,
		p.ConsentMarketing, p.ConsentTerminos, p.ConsentPrivacidad, updatedAt,
	)
	if err != nil {
		return false, fmt.Errorf("update customer: %w", classify(err))
	}
	return tag.RowsAffected() > 0, nil
}

// Delete elimina un cliente por ID; las FK ON DELETE CASCADE borran sus hijos.
func (r *CustomerRepo) Delete(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	err := row.Scan(
		&c.ID, &c.Nombre, &c.Apellido, &c.Email, &c.TelefonoE164, &c.EmailVerifiedAt,
		&c.ConsentMarketing, &c.ConsentTerminos, &c.ConsentPrivacidad, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
