package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/customers-api/internal/domain"
	"github.com/jhoicas/customers-api/internal/domain/entity"
	"github.com/jhoicas/customers-api/internal/domain/repository"
	"github.com/jhoicas/customers-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/customers-api/pkg/logger"
)

func newStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store, err := sqlite.Open(filepath.Join(t.TempDir(), "customers.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	require.NoError(t, store.Migrate(logger.Nop()))
	return store
}

func strPtr(s string) *string { return &s }

func newCustomer(email string) *entity.Customer {
	now := time.Now().UTC()
	return &entity.Customer{
		Nombre: "Ana", Apellido: "Quispe", Email: email,
		ConsentPrivacidad: entity.DefaultConsentPrivacidad,
		CreatedAt:         now, UpdatedAt: now,
	}
}

func createCustomer(t *testing.T, store *sqlite.Store, email string) int64 {
	t.Helper()
	c := newCustomer(email)
	require.NoError(t, store.Run(context.Background(), func(r repository.Repositories) error {
		return r.Customers.Create(context.Background(), c)
	}))
	require.NotZero(t, c.ID)
	return c.ID
}

func TestOpen_RutaVacia(t *testing.T) {
	_, err := sqlite.Open("  ")
	assert.Error(t, err)
}

func TestMigrate_Idempotente(t *testing.T) {
	store := newStore(t)
	assert.NoError(t, store.Migrate(nil))
	assert.NoError(t, store.Ping(context.Background()))
}

func TestCustomers_ListOrdenDescendente(t *testing.T) {
	store := newStore(t)
	first := createCustomer(t, store, "a@example.com")
	second := createCustomer(t, store, "b@example.com")

	var list []*entity.Customer
	require.NoError(t, store.Run(context.Background(), func(r repository.Repositories) (err error) {
		list, err = r.Customers.List(context.Background())
		return err
	}))
	require.Len(t, list, 2)
	assert.Equal(t, second, list[0].ID)
	assert.Equal(t, first, list[1].ID)
	assert.Equal(t, 1, list[0].ConsentPrivacidad)
	assert.Nil(t, list[0].TelefonoE164)
	assert.Nil(t, list[0].EmailVerifiedAt)
}

func TestCustomers_EmailDuplicadoEsConflicto(t *testing.T) {
	store := newStore(t)
	createCustomer(t, store, "dup@example.com")

	err := store.Run(context.Background(), func(r repository.Repositories) error {
		return r.Customers.Create(context.Background(), newCustomer("dup@example.com"))
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrConflict))
	de, ok := domain.AsError(err)
	require.True(t, ok)
	assert.Contains(t, de.Detail, "UNIQUE")
}

func TestCustomers_UpdateParcial(t *testing.T) {
	store := newStore(t)
	id := createCustomer(t, store, "ana@example.com")
	verified := time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)
	marketing := 1

	var found bool
	require.NoError(t, store.Run(context.Background(), func(r repository.Repositories) (err error) {
		found, err = r.Customers.Update(context.Background(), id, entity.CustomerPatch{
			TelefonoE164:     strPtr("+51999888777"),
			EmailVerifiedAt:  &verified,
			ConsentMarketing: &marketing,
		}, time.Now().UTC())
		return err
	}))
	assert.True(t, found)

	var c *entity.Customer
	require.NoError(t, store.Run(context.Background(), func(r repository.Repositories) (err error) {
		c, err = r.Customers.GetByID(context.Background(), id)
		return err
	}))
	require.NotNil(t, c)
	assert.Equal(t, "Ana", c.Nombre)
	assert.Equal(t, "ana@example.com", c.Email)
	require.NotNil(t, c.TelefonoE164)
	assert.Equal(t, "+51999888777", *c.TelefonoE164)
	require.NotNil(t, c.EmailVerifiedAt)
	assert.True(t, verified.Equal(*c.EmailVerifiedAt))
	assert.Equal(t, 1, c.ConsentMarketing)
	assert.Equal(t, 1, c.ConsentPrivacidad)
}

func TestCustomers_UpdateInexistente(t *testing.T) {
	store := newStore(t)
	var found bool
	require.NoError(t, store.Run(context.Background(), func(r repository.Repositories) (err error) {
		found, err = r.Customers.Update(context.Background(), 404, entity.CustomerPatch{Nombre: strPtr("x")}, time.Now())
		return err
	}))
	assert.False(t, found)
}

func TestCustomers_GetInexistenteEsNil(t *testing.T) {
	store := newStore(t)
	require.NoError(t, store.Run(context.Background(), func(r repository.Repositories) error {
		c, err := r.Customers.GetByID(context.Background(), 1)
		assert.Nil(t, c)
		return err
	}))
}

func TestRun_RollbackAnteError(t *testing.T) {
	store := newStore(t)
	boom := errors.New("boom")
	err := store.Run(context.Background(), func(r repository.Repositories) error {
		require.NoError(t, r.Customers.Create(context.Background(), newCustomer("tx@example.com")))
		return boom
	})
	assert.ErrorIs(t, err, boom)

	require.NoError(t, store.Run(context.Background(), func(r repository.Repositories) error {
		list, err := r.Customers.List(context.Background())
		assert.Empty(t, list)
		return err
	}))
}

func TestDeleteCustomer_Cascada(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	id := createCustomer(t, store, "cascade@example.com")

	require.NoError(t, store.Run(ctx, func(r repository.Repositories) error {
		a := &entity.Address{CustomerID: id, Linea1: "Av. Sol 1", Pais: "PE", Tipo: entity.AddressTypeEnvio, CreatedAt: time.Now().UTC()}
		if err := r.Addresses.Create(ctx, a); err != nil {
			return err
		}
		return r.PaymentMethods.Create(ctx, &entity.PaymentMethod{
			CustomerID: id, Gateway: "culqi", Token: "tkn", BillingAddressID: &a.ID, CreatedAt: time.Now().UTC(),
		})
	}))
	require.NoError(t, store.Run(ctx, func(r repository.Repositories) error {
		return r.Customers.Delete(ctx, id)
	}))

	require.NoError(t, store.Run(ctx, func(r repository.Repositories) error {
		addrs, err := r.Addresses.ListByCustomer(ctx, id)
		require.NoError(t, err)
		pms, err := r.PaymentMethods.ListByCustomer(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, addrs)
		assert.Empty(t, pms)
		return nil
	}))
}

func TestDeleteAddress_AnulaDireccionDeFacturacion(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	id := createCustomer(t, store, "billing@example.com")

	a := &entity.Address{CustomerID: id, Linea1: "Jr. Lima 2", Pais: "PE", Tipo: entity.AddressTypeFacturacion, CreatedAt: time.Now().UTC()}
	require.NoError(t, store.Run(ctx, func(r repository.Repositories) error {
		if err := r.Addresses.Create(ctx, a); err != nil {
			return err
		}
		return r.PaymentMethods.Create(ctx, &entity.PaymentMethod{
			CustomerID: id, Gateway: "stripe", Token: "tok_visa", Last4: strPtr("4242"),
			BillingAddressID: &a.ID, CreatedAt: time.Now().UTC(),
		})
	}))

	require.NoError(t, store.Run(ctx, func(r repository.Repositories) error {
		found, err := r.Addresses.Delete(ctx, id, a.ID)
		assert.True(t, found)
		return err
	}))

	require.NoError(t, store.Run(ctx, func(r repository.Repositories) error {
		pms, err := r.PaymentMethods.ListByCustomer(ctx, id)
		require.NoError(t, err)
		require.Len(t, pms, 1)
		assert.Nil(t, pms[0].BillingAddressID)
		require.NotNil(t, pms[0].Last4)
		assert.Equal(t, "4242", *pms[0].Last4)
		return nil
	}))
}

func TestAddresses_UnaSolaPrincipal(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	id := createCustomer(t, store, "primary@example.com")
	newPrimary := func() *entity.Address {
		return &entity.Address{CustomerID: id, Linea1: "x", Pais: "PE", Tipo: entity.AddressTypePrincipal, EsPrincipal: true, CreatedAt: time.Now().UTC()}
	}

	require.NoError(t, store.Run(ctx, func(r repository.Repositories) error {
		return r.Addresses.Create(ctx, newPrimary())
	}))

	err := store.Run(ctx, func(r repository.Repositories) error {
		return r.Addresses.Create(ctx, newPrimary())
	})
	assert.True(t, errors.Is(err, domain.ErrConflict))

	require.NoError(t, store.Run(ctx, func(r repository.Repositories) error {
		if err := r.Addresses.ClearPrimary(ctx, id); err != nil {
			return err
		}
		return r.Addresses.Create(ctx, newPrimary())
	}))

	require.NoError(t, store.Run(ctx, func(r repository.Repositories) error {
		addrs, err := r.Addresses.ListByCustomer(ctx, id)
		require.NoError(t, err)
		require.Len(t, addrs, 2)
		assert.False(t, addrs[0].EsPrincipal)
		assert.True(t, addrs[1].EsPrincipal)
		return nil
	}))
}

func TestAddresses_TipoFueraDelCheck(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	id := createCustomer(t, store, "check@example.com")

	err := store.Run(ctx, func(r repository.Repositories) error {
		return r.Addresses.Create(ctx, &entity.Address{CustomerID: id, Linea1: "x", Pais: "PE", Tipo: "oficina", CreatedAt: time.Now()})
	})
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestAddresses_ClienteInexistenteViolaFK(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	err := store.Run(ctx, func(r repository.Repositories) error {
		return r.Addresses.Create(ctx, &entity.Address{CustomerID: 99, Linea1: "x", Pais: "PE", Tipo: entity.AddressTypeEnvio, CreatedAt: time.Now()})
	})
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestAddresses_BelongsToCustomer(t *testing.T) {
	store := newStore(t)
	ctx := context.Background()
	owner := createCustomer(t, store, "owner@example.com")
	other := createCustomer(t, store, "other@example.com")

	a := &entity.Address{CustomerID: owner, Linea1: "x", Pais: "PE", Tipo: entity.AddressTypeEnvio, CreatedAt: time.Now()}
	require.NoError(t, store.Run(ctx, func(r repository.Repositories) error { return r.Addresses.Create(ctx, a) }))

	require.NoError(t, store.Run(ctx, func(r repository.Repositories) error {
		ok, err := r.Addresses.BelongsToCustomer(ctx, a.ID, owner)
		require.NoError(t, err)
		assert.True(t, ok)
		ok, err = r.Addresses.BelongsToCustomer(ctx, a.ID, other)
		require.NoError(t, err)
		assert.False(t, ok)
		found, err := r.Addresses.Delete(ctx, other, a.ID)
		assert.False(t, found)
		return err
	}))
}
