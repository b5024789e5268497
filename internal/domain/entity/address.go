package entity

import "time"

// AddressType clasifica el uso de una dirección.
type AddressType string

const (
	AddressTypeEnvio       AddressType = "envio"       // shipping
	AddressTypeFacturacion AddressType = "facturacion" // billing
	AddressTypePrincipal   AddressType = "principal"   // primary
)

// Valid indica si el tipo es uno de los valores admitidos por el esquema.
func (t AddressType) Valid() bool {
	switch t {
	case AddressTypeEnvio, AddressTypeFacturacion, AddressTypePrincipal:
		return true
	}
	return false
}

// Address dirección de un cliente; se elimina en cascada con su dueño.
type Address struct {
	ID           int64
	CustomerID   int64
	Linea1       string
	Linea2       *string
	Distrito     *string
	Provincia    *string
	Region       *string
	Pais         string
	CodigoPostal *string
	Tipo         AddressType
	EsPrincipal  bool
	CreatedAt    time.Time
}
