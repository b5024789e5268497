package dto

import (
	"time"

	"github.com/jhoicas/customers-api/internal/domain/entity"
)

// CreateAddressRequest body para POST /customers/:id/addresses.
type CreateAddressRequest struct {
	Linea1       string  `json:"linea1" validate:"required"`
	Linea2       *string `json:"linea2"`
	Distrito     *string `json:"distrito"`
	Provincia    *string `json:"provincia"`
	Region       *string `json:"region"`
	Pais         string  `json:"pais" validate:"required"`
	CodigoPostal *string `json:"codigo_postal"`
	Tipo         *string `json:"tipo" validate:"omitnil,oneof=envio facturacion principal"`
	EsPrincipal  *bool   `json:"es_principal"`
}

// ToEntity aplica los valores por defecto: tipo "principal", es_principal false.
func (r CreateAddressRequest) ToEntity(customerID int64, now time.Time) *entity.Address {
	tipo := entity.AddressTypePrincipal
	if r.Tipo != nil {
		tipo = entity.AddressType(*r.Tipo)
	}
	return &entity.Address{
		CustomerID:   customerID,
		Linea1:       r.Linea1,
		Linea2:       r.Linea2,
		Distrito:     r.Distrito,
		Provincia:    r.Provincia,
		Region:       r.Region,
		Pais:         r.Pais,
		CodigoPostal: r.CodigoPostal,
		Tipo:         tipo,
		EsPrincipal:  r.EsPrincipal != nil && *r.EsPrincipal,
		CreatedAt:    now,
	}
}

// AddressResponse dirección en respuestas.
type AddressResponse struct {
	ID           int64     `json:"id"`
	CustomerID   int64     `json:"customer_id"`
	Linea1       string    `json:"linea1"`
	Linea2       *string   `json:"linea2"`
	Distrito     *string   `json:"distrito"`
	Provincia    *string   `json:"provincia"`
	Region       *string   `json:"region"`
	Pais         string    `json:"pais"`
	CodigoPostal *string   `json:"codigo_postal"`
	Tipo         string    `json:"tipo"`
	EsPrincipal  bool      `json:"es_principal"`
	CreatedAt    time.Time `json:"created_at"`
}

// NewAddressResponses mapea la lista; nunca devuelve nil para que el JSON sea [].
func NewAddressResponses(list []*entity.Address) []AddressResponse {
	out := make([]AddressResponse, 0, len(list))
	for _, a := range list {
		out = append(out, AddressResponse{
			ID:           a.ID,
			CustomerID:   a.CustomerID,
			Linea1:       a.Linea1,
			Linea2:       a.Linea2,
			Distrito:     a.Distrito,
			Provincia:    a.Provincia,
			Region:       a.Region,
			Pais:         a.Pais,
			CodigoPostal: a.CodigoPostal,
			Tipo:         string(a.Tipo),
			EsPrincipal:  a.EsPrincipal,
			CreatedAt:    a.CreatedAt,
		})
	}
	return out
}
