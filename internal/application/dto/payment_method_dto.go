package dto

import (
	"time"

	"github.com/jhoicas/customers-api/internal/domain/entity"
)

// CreatePaymentMethodRequest body para POST /customers/:id/payment-methods.
// El número de tarjeta no forma parte del contrato: claves como "card_number"
// o "pan" se descartan al decodificar.
type CreatePaymentMethodRequest struct {
	Gateway          string  `json:"gateway" validate:"required"`
	Token            string  `json:"token" validate:"required"`
	Brand            *string `json:"brand"`
	Last4            *string `json:"last4" validate:"omitnil,len=4,number"`
	ExpMonth         *int    `json:"exp_month" validate:"omitnil,min=1,max=12"`
	ExpYear          *int    `json:"exp_year" validate:"omitnil,min=0"`
	BillingName      *string `json:"billing_name"`
	BillingAddressID *int64  `json:"billing_address_id" validate:"omitnil,gt=0"`
}

// ToEntity construye la entidad a persistir.
func (r CreatePaymentMethodRequest) ToEntity(customerID int64, now time.Time) *entity.PaymentMethod {
	return &entity.PaymentMethod{
		CustomerID:       customerID,
		Gateway:          r.Gateway,
		Token:            r.Token,
		Brand:            r.Brand,
		Last4:            r.Last4,
		ExpMonth:         r.ExpMonth,
		ExpYear:          r.ExpYear,
		BillingName:      r.BillingName,
		BillingAddressID: r.BillingAddressID,
		CreatedAt:        now,
	}
}

// PaymentMethodResponse método de pago en respuestas (token incluido, nunca PAN).
type PaymentMethodResponse struct {
	ID               int64     `json:"id"`
	CustomerID       int64     `json:"customer_id"`
	Gateway          string    `json:"gateway"`
	Token            string    `json:"token"`
	Brand            *string   `json:"brand"`
	Last4            *string   `json:"last4"`
	ExpMonth         *int      `json:"exp_month"`
	ExpYear          *int      `json:"exp_year"`
	BillingName      *string   `json:"billing_name"`
	BillingAddressID *int64    `json:"billing_address_id"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewPaymentMethodResponses mapea la lista; nunca devuelve nil.
func NewPaymentMethodResponses(list []*entity.PaymentMethod) []PaymentMethodResponse {
	out := make([]PaymentMethodResponse, 0, len(list))
	for _, pm := range list {
		out = append(out, PaymentMethodResponse{
			ID:               pm.ID,
			CustomerID:       pm.CustomerID,
			Gateway:          pm.Gateway,
			Token:            pm.Token,
			Brand:            pm.Brand,
			Last4:            pm.Last4,
			ExpMonth:         pm.ExpMonth,
			ExpYear:          pm.ExpYear,
			BillingName:      pm.BillingName,
			BillingAddressID: pm.BillingAddressID,
			CreatedAt:        pm.CreatedAt,
		})
	}
	return out
}
