package dto

import (
	"time"

	"github.com/jhoicas/customers-api/internal/domain/entity"
)

// CreateCustomerRequest body para POST /customers.
type CreateCustomerRequest struct {
	Nombre            string  `json:"nombre" validate:"required"`
	Apellido          string  `json:"apellido" validate:"required"`
	Email             string  `json:"email" validate:"required"`
	TelefonoE164      *string `json:"telefono_e164"`
	ConsentMarketing  *int    `json:"consent_marketing" validate:"omitnil,oneof=0 1"`
	ConsentTerminos   *int    `json:"consent_terminos" validate:"omitnil,oneof=0 1"`
	ConsentPrivacidad *int    `json:"consent_privacidad" validate:"omitnil,oneof=0 1"`
}

// ToEntity aplica los valores por defecto de consentimiento (0, 0, 1).
func (r CreateCustomerRequest) ToEntity(now time.Time) *entity.Customer {
	return &entity.Customer{
		Nombre:            r.Nombre,
		Apellido:          r.Apellido,
		Email:             r.Email,
		TelefonoE164:      r.TelefonoE164,
		ConsentMarketing:  intOr(r.ConsentMarketing, entity.DefaultConsentMarketing),
		ConsentTerminos:   intOr(r.ConsentTerminos, entity.DefaultConsentTerminos),
		ConsentPrivacidad: intOr(r.ConsentPrivacidad, entity.DefaultConsentPrivacidad),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// UpdateCustomerRequest body para PUT /customer/:id. Solo estos campos son
// actualizables; cualquier otra clave del cuerpo se ignora.
type UpdateCustomerRequest struct {
	Nombre            *string    `json:"nombre" validate:"omitnil,min=1"`
	Apellido          *string    `json:"apellido" validate:"omitnil,min=1"`
	Email             *string    `json:"email" validate:"omitnil,min=1"`
	TelefonoE164      *string    `json:"telefono_e164"`
	EmailVerifiedAt   *time.Time `json:"email_verified_at"`
	ConsentMarketing  *int       `json:"consent_marketing" validate:"omitnil,oneof=0 1"`
	ConsentTerminos   *int       `json:"consent_terminos" validate:"omitnil,oneof=0 1"`
	ConsentPrivacidad *int       `json:"consent_privacidad" validate:"omitnil,oneof=0 1"`
}

// ToPatch convierte la petición en un parche del dominio.
func (r UpdateCustomerRequest) ToPatch() entity.CustomerPatch {
	return entity.CustomerPatch{
		Nombre:            r.Nombre,
		Apellido:          r.Apellido,
		Email:             r.Email,
		TelefonoE164:      r.TelefonoE164,
		EmailVerifiedAt:   r.EmailVerifiedAt,
		ConsentMarketing:  r.ConsentMarketing,
		ConsentTerminos:   r.ConsentTerminos,
		ConsentPrivacidad: r.ConsentPrivacidad,
	}
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	ID                int64      `json:"id"`
	Nombre            string     `json:"nombre"`
	Apellido          string     `json:"apellido"`
	Email             string     `json:"email"`
	TelefonoE164      *string    `json:"telefono_e164"`
	EmailVerifiedAt   *time.Time `json:"email_verified_at"`
	ConsentMarketing  int        `json:"consent_marketing"`
	ConsentTerminos   int        `json:"consent_terminos"`
	ConsentPrivacidad int        `json:"consent_privacidad"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CustomerDetailResponse GET /customer/:id: cliente con sus hijos.
type CustomerDetailResponse struct {
	Customer       CustomerResponse        `json:"customer"`
	Addresses      []AddressResponse       `json:"addresses"`
	PaymentMethods []PaymentMethodResponse `json:"payment_methods"`
}

// NewCustomerResponse mapea la entidad a la respuesta.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:                c.ID,
		Nombre:            c.Nombre,
		Apellido:          c.Apellido,
		Email:             c.Email,
		TelefonoE164:      c.TelefonoE164,
		EmailVerifiedAt:   c.EmailVerifiedAt,
		ConsentMarketing:  c.ConsentMarketing,
		ConsentTerminos:   c.ConsentTerminos,
		ConsentPrivacidad: c.ConsentPrivacidad,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}
