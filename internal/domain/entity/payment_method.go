package entity

import "time"

// PaymentMethod método de pago tokenizado. Nunca contiene el número de tarjeta:
// solo el token emitido por la pasarela y metadatos de presentación.
type PaymentMethod struct {
	ID               int64
	CustomerID       int64
	Gateway          string
	Token            string
	Brand            *string
	Last4            *string
	ExpMonth         *int
	ExpYear          *int
	BillingName      *string
	BillingAddressID *int64 // se anula (no se borra) si la dirección desaparece
	CreatedAt        time.Time
}
