package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/customers-api/internal/domain/entity"
)

func TestCustomerPatch_IsEmpty(t *testing.T) {
	assert.True(t, entity.CustomerPatch{}.IsEmpty())

	zero := 0
	assert.False(t, entity.CustomerPatch{ConsentMarketing: &zero}.IsEmpty())

	empty := ""
	assert.False(t, entity.CustomerPatch{TelefonoE164: &empty}.IsEmpty())
}

func TestAddressType_Valid(t *testing.T) {
	for _, tipo := range []entity.AddressType{entity.AddressTypeEnvio, entity.AddressTypeFacturacion, entity.AddressTypePrincipal} {
		assert.True(t, tipo.Valid(), tipo)
	}
	assert.False(t, entity.AddressType("shipping").Valid())
	assert.False(t, entity.AddressType("").Valid())
}
