package customer

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/customers-api/internal/application/dto"
	"github.com/jhoicas/customers-api/internal/domain"
	"github.com/jhoicas/customers-api/internal/domain/repository"
)

// Mensajes de validación devueltos al cliente.
const (
	msgCustomerRequired = "nombre, apellido y email son obligatorios"
	msgNothingToUpdate  = "nada que actualizar"
	msgAddressRequired  = "linea1 y pais son obligatorios"
	msgPaymentRequired  = "gateway y token son obligatorios"
	msgCustomerNotFound = "cliente no existe"
)

// UseCase casos de uso de clientes, direcciones y métodos de pago.
// Cada operación abre su propia transacción vía TxRunner.
type UseCase struct {
	tx  TxRunner
	now func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(tx TxRunner) *UseCase {
	return &UseCase{tx: tx, now: func() time.Time { return time.Now().UTC() }}
}

// List lista todos los clientes, el más reciente primero.
func (uc *UseCase) List(ctx context.Context) ([]dto.CustomerResponse, error) {
	var out []dto.CustomerResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		list, err := repos.Customers.List(ctx)
		if err != nil {
			return err
		}
		out = make([]dto.CustomerResponse, 0, len(list))
		for _, c := range list {
			out = append(out, dto.NewCustomerResponse(c))
		}
		return nil
	})
	return out, err
}

// Create valida y crea un cliente. Email duplicado -> domain.ErrConflict.
func (uc *UseCase) Create(ctx context.Context, fields dto.Fields) (*dto.CreatedResponse, error) {
	var in dto.CreateCustomerRequest
	if err := dto.DecodeAndValidate(fields, &in, msgCustomerRequired); err != nil {
		return nil, err
	}
	c := in.ToEntity(uc.now())
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Customers.Create(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: c.ID, Message: "Cliente creado"}, nil
}

// Get devuelve el cliente con todas sus direcciones y métodos de pago.
func (uc *UseCase) Get(ctx context.Context, id int64) (*dto.CustomerDetailResponse, error) {
	var out *dto.CustomerDetailResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		c, err := repos.Customers.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if c == nil {
			return domain.NotFound("no existe")
		}
		addrs, err := repos.Addresses.ListByCustomer(ctx, id)
		if err != nil {
			return err
		}
		pms, err := repos.PaymentMethods.ListByCustomer(ctx, id)
		if err != nil {
			return err
		}
		out = &dto.CustomerDetailResponse{
			Customer:       dto.NewCustomerResponse(c),
			Addresses:      dto.NewAddressResponses(addrs),
			PaymentMethods: dto.NewPaymentMethodResponses(pms),
		}
		return nil
	})
	return out, err
}

// Update aplica una actualización parcial. Un cuerpo sin campos actualizables
// falla con validación antes de tocar la base, exista o no el cliente.
func (uc *UseCase) Update(ctx context.Context, id int64, fields dto.Fields) (*dto.CreatedResponse, error) {
	var in dto.UpdateCustomerRequest
	if err := dto.DecodeAndValidate(fields, &in, msgNothingToUpdate); err != nil {
		return nil, err
	}
	patch := in.ToPatch()
	if patch.IsEmpty() {
		return nil, domain.Validation(msgNothingToUpdate)
	}
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		found, err := repos.Customers.Update(ctx, id, patch, uc.now())
		if err != nil {
			return err
		}
		if !found {
			return domain.NotFound(msgCustomerNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id, Message: "Cliente actualizado"}, nil
}

// Delete elimina el cliente y en cascada sus direcciones y métodos de pago.
// Es idempotente: un id inexistente también reporta éxito.
func (uc *UseCase) Delete(ctx context.Context, id int64) (*dto.MessageResponse, error) {
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		return repos.Customers.Delete(ctx, id)
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: fmt.Sprintf("Cliente %d eliminado", id)}, nil
}

// ListAddresses lista las direcciones de un cliente existente.
func (uc *UseCase) ListAddresses(ctx context.Context, customerID int64) ([]dto.AddressResponse, error) {
	var out []dto.AddressResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := requireCustomer(ctx, repos, customerID); err != nil {
			return err
		}
		list, err := repos.Addresses.ListByCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		out = dto.NewAddressResponses(list)
		return nil
	})
	return out, err
}

// CreateAddress crea una dirección. Si llega marcada como principal, la
// principal anterior del cliente deja de serlo en la misma transacción.
func (uc *UseCase) CreateAddress(ctx context.Context, customerID int64, fields dto.Fields) (*dto.CreatedResponse, error) {
	var created *dto.CreatedResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := requireCustomer(ctx, repos, customerID); err != nil {
			return err
		}
		var in dto.CreateAddressRequest
		if err := dto.DecodeAndValidate(fields, &in, msgAddressRequired); err != nil {
			return err
		}
		a := in.ToEntity(customerID, uc.now())
		if a.EsPrincipal {
			if err := repos.Addresses.ClearPrimary(ctx, customerID); err != nil {
				return err
			}
		}
		if err := repos.Addresses.Create(ctx, a); err != nil {
			return err
		}
		created = &dto.CreatedResponse{ID: a.ID, Message: "Dirección creada"}
		return nil
	})
	return created, err
}

// DeleteAddress elimina una dirección del cliente. Los métodos de pago que la
// usaban como dirección de facturación quedan con billing_address_id nulo.
func (uc *UseCase) DeleteAddress(ctx context.Context, customerID, addressID int64) (*dto.MessageResponse, error) {
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := requireCustomer(ctx, repos, customerID); err != nil {
			return err
		}
		found, err := repos.Addresses.Delete(ctx, customerID, addressID)
		if err != nil {
			return err
		}
		if !found {
			return domain.NotFound("dirección no existe")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &dto.MessageResponse{Message: fmt.Sprintf("Dirección %d eliminada", addressID)}, nil
}

// ListPaymentMethods lista los métodos de pago tokenizados de un cliente existente.
func (uc *UseCase) ListPaymentMethods(ctx context.Context, customerID int64) ([]dto.PaymentMethodResponse, error) {
	var out []dto.PaymentMethodResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := requireCustomer(ctx, repos, customerID); err != nil {
			return err
		}
		list, err := repos.PaymentMethods.ListByCustomer(ctx, customerID)
		if err != nil {
			return err
		}
		out = dto.NewPaymentMethodResponses(list)
		return nil
	})
	return out, err
}

// CreatePaymentMethod registra un método de pago. No se contacta a la pasarela:
// el token se guarda tal cual junto con los metadatos de presentación.
func (uc *UseCase) CreatePaymentMethod(ctx context.Context, customerID int64, fields dto.Fields) (*dto.CreatedResponse, error) {
	var created *dto.CreatedResponse
	err := uc.tx.Run(ctx, func(repos repository.Repositories) error {
		if err := requireCustomer(ctx, repos, customerID); err != nil {
			return err
		}
		var in dto.CreatePaymentMethodRequest
		if err := dto.DecodeAndValidate(fields, &in, msgPaymentRequired); err != nil {
			return err
		}
		if in.BillingAddressID != nil {
			ok, err := repos.Addresses.BelongsToCustomer(ctx, *in.BillingAddressID, customerID)
			if err != nil {
				return err
			}
			if !ok {
				return domain.Validation("billing_address_id no pertenece al cliente", "billing_address_id")
			}
		}
		pm := in.ToEntity(customerID, uc.now())
		if err := repos.PaymentMethods.Create(ctx, pm); err != nil {
			return err
		}
		created = &dto.CreatedResponse{ID: pm.ID, Message: "Método de pago registrado"}
		return nil
	})
	return created, err
}

func requireCustomer(ctx context.Context, repos repository.Repositories, id int64) error {
	ok, err := repos.Customers.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return domain.NotFound(msgCustomerNotFound)
	}
	return nil
}
