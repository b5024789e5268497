package entity

import "time"

// Valores por defecto de los consentimientos cuando no se envían.
const (
	DefaultConsentMarketing  = 0
	DefaultConsentTerminos   = 0
	DefaultConsentPrivacidad = 1
)

// Customer representa un cliente. Email es único; ID no cambia una vez asignado.
type Customer struct {
	ID                int64
	Nombre            string
	Apellido          string
	Email             string
	TelefonoE164      *string
	EmailVerifiedAt   *time.Time
	ConsentMarketing  int
	ConsentTerminos   int
	ConsentPrivacidad int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// CustomerPatch actualización parcial: solo los campos no nil se escriben.
type CustomerPatch struct {
	Nombre            *string
	Apellido          *string
	Email             *string
	TelefonoE164      *string
	EmailVerifiedAt   *time.Time
	ConsentMarketing  *int
	ConsentTerminos   *int
	ConsentPrivacidad *int
}

// IsEmpty indica que no hay nada que actualizar.
func (p CustomerPatch) IsEmpty() bool {
	return p.Nombre == nil && p.Apellido == nil && p.Email == nil && p.TelefonoE164 == nil &&
		p.EmailVerifiedAt == nil && p.ConsentMarketing == nil && p.ConsentTerminos == nil &&
		p.ConsentPrivacidad == nil
}
