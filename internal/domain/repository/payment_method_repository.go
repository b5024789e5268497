package repository

import (
	"context"

	"github.com/jhoicas/customers-api/internal/domain/entity"
)

// PaymentMethodRepository define el puerto de persistencia para PaymentMethod.
type PaymentMethodRepository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]*entity.PaymentMethod, error)
	Create(ctx context.Context, pm *entity.PaymentMethod) error
}
