package dto_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customers-api/internal/application/dto"
	"github.com/jhoicas/customers-api/internal/domain"
	"github.com/jhoicas/customers-api/internal/domain/entity"
)

func TestDecode_FormularioYJSONEquivalentes(t *testing.T) {
	fromJSON := dto.Fields{
		"nombre": "Ana", "apellido": "Quispe", "email": "ana@example.com",
		"consent_marketing": float64(1), "consent_privacidad": float64(0),
	}
	fromForm := dto.Fields{
		"nombre": "Ana", "apellido": "Quispe", "email": "ana@example.com",
		"consent_marketing": "1", "consent_privacidad": "0",
	}

	var a, b dto.CreateCustomerRequest
	require.NoError(t, dto.DecodeAndValidate(fromJSON, &a, "obligatorios"))
	require.NoError(t, dto.DecodeAndValidate(fromForm, &b, "obligatorios"))
	assert.Equal(t, a, b)
	assert.Equal(t, 1, *a.ConsentMarketing)
}

func TestCreateCustomer_DefaultsDeConsentimiento(t *testing.T) {
	var in dto.CreateCustomerRequest
	require.NoError(t, dto.DecodeAndValidate(dto.Fields{
		"nombre": "Ana", "apellido": "Quispe", "email": "ana@example.com",
	}, &in, "obligatorios"))

	c := in.ToEntity(time.Now())
	assert.Equal(t, 0, c.ConsentMarketing)
	assert.Equal(t, 0, c.ConsentTerminos)
	assert.Equal(t, 1, c.ConsentPrivacidad)
	assert.Nil(t, c.TelefonoE164)
}

func TestCreateCustomer_CamposObligatorios(t *testing.T) {
	var in dto.CreateCustomerRequest
	err := dto.DecodeAndValidate(dto.Fields{"nombre": "Ana", "email": ""}, &in, "nombre, apellido y email son obligatorios")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))

	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "nombre, apellido y email son obligatorios", de.Message)
	assert.ElementsMatch(t, []string{"apellido", "email"}, de.Fields)
}

func TestCreateCustomer_ConsentimientoFueraDeRango(t *testing.T) {
	var in dto.CreateCustomerRequest
	err := dto.DecodeAndValidate(dto.Fields{
		"nombre": "Ana", "apellido": "Quispe", "email": "a@b.c", "consent_terminos": 7,
	}, &in, "obligatorios")
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "valores inválidos", de.Message)
	assert.Equal(t, []string{"consent_terminos"}, de.Fields)
}

func TestDecode_TipoInvalido(t *testing.T) {
	var in dto.CreateCustomerRequest
	err := dto.Fields{"nombre": "Ana", "apellido": "Q", "email": "a@b.c", "consent_marketing": "si"}.Decode(&in)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestDecode_NullYVacioSonAusentes(t *testing.T) {
	var in dto.CreatePaymentMethodRequest
	require.NoError(t, dto.Fields{
		"gateway": "culqi", "token": "tkn_1", "brand": nil, "exp_month": "", "billing_address_id": "",
	}.Decode(&in))

	assert.Nil(t, in.Brand)
	assert.Nil(t, in.ExpMonth)
	assert.Nil(t, in.BillingAddressID)
}

func TestUpdateCustomer_IgnoraCamposFueraDeListaBlanca(t *testing.T) {
	var in dto.UpdateCustomerRequest
	require.NoError(t, dto.DecodeAndValidate(dto.Fields{"id": 99, "created_at": "2020-01-01", "rol": "admin"}, &in, "nada que actualizar"))
	assert.True(t, in.ToPatch().IsEmpty())
}

func TestUpdateCustomer_MarcaDeTiempo(t *testing.T) {
	var in dto.UpdateCustomerRequest
	require.NoError(t, dto.DecodeAndValidate(dto.Fields{"email_verified_at": "2024-05-01T10:30:00Z"}, &in, "nada que actualizar"))
	require.NotNil(t, in.EmailVerifiedAt)
	assert.True(t, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC).Equal(*in.EmailVerifiedAt))

	in = dto.UpdateCustomerRequest{}
	require.NoError(t, dto.Fields{"email_verified_at": "2024-05-01 10:30:00"}.Decode(&in))
	require.NotNil(t, in.EmailVerifiedAt)

	in = dto.UpdateCustomerRequest{}
	err := dto.Fields{"email_verified_at": "ayer"}.Decode(&in)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestUpdateCustomer_EmailVacioEsInvalido(t *testing.T) {
	var in dto.UpdateCustomerRequest
	err := dto.DecodeAndValidate(dto.Fields{"email": ""}, &in, "nada que actualizar")
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"email"}, de.Fields)
}

func TestCreateAddress_DefaultsYTipo(t *testing.T) {
	var in dto.CreateAddressRequest
	require.NoError(t, dto.DecodeAndValidate(dto.Fields{"linea1": "Av. Arequipa 123", "pais": "PE"}, &in, "obligatorios"))
	a := in.ToEntity(7, time.Now())
	assert.Equal(t, entity.AddressTypePrincipal, a.Tipo)
	assert.False(t, a.EsPrincipal)
	assert.Equal(t, int64(7), a.CustomerID)

	in = dto.CreateAddressRequest{}
	require.NoError(t, dto.DecodeAndValidate(dto.Fields{"linea1": "x", "pais": "PE", "tipo": "envio", "es_principal": "1"}, &in, "obligatorios"))
	a = in.ToEntity(7, time.Now())
	assert.Equal(t, entity.AddressTypeEnvio, a.Tipo)
	assert.True(t, a.EsPrincipal)

	in = dto.CreateAddressRequest{}
	err := dto.DecodeAndValidate(dto.Fields{"linea1": "x", "pais": "PE", "tipo": "oficina"}, &in, "obligatorios")
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestCreatePaymentMethod_DescartaNumeroDeTarjeta(t *testing.T) {
	var in dto.CreatePaymentMethodRequest
	require.NoError(t, dto.DecodeAndValidate(dto.Fields{
		"gateway":     "stripe",
		"token":       "tok_visa",
		"card_number": "4111111111111111",
		"pan":         "4111111111111111",
		"last4":       "1111",
		"exp_month":   float64(12),
		"exp_year":    "2030",
	}, &in, "gateway y token son obligatorios"))

	pm := in.ToEntity(1, time.Now())
	assert.Equal(t, "tok_visa", pm.Token)
	assert.Equal(t, "1111", *pm.Last4)
	assert.Equal(t, 12, *pm.ExpMonth)
	assert.Equal(t, 2030, *pm.ExpYear)
}

func TestCreatePaymentMethod_Last4NoAdmitePAN(t *testing.T) {
	var in dto.CreatePaymentMethodRequest
	err := dto.DecodeAndValidate(dto.Fields{
		"gateway": "stripe", "token": "tok", "last4": "4111111111111111",
	}, &in, "gateway y token son obligatorios")
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, []string{"last4"}, de.Fields)
}

func TestCreatePaymentMethod_Obligatorios(t *testing.T) {
	var in dto.CreatePaymentMethodRequest
	err := dto.DecodeAndValidate(dto.Fields{"gateway": "stripe"}, &in, "gateway y token son obligatorios")
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Equal(t, "gateway y token son obligatorios", de.Message)
	assert.Equal(t, []string{"token"}, de.Fields)
}
