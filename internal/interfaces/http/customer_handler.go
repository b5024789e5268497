package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/customers-api/internal/application/customer"
	"github.com/jhoicas/customers-api/pkg/logger"
)

const msgCustomerNotFound = "cliente no existe"

// CustomerHandler maneja clientes, sus direcciones y sus métodos de pago.
type CustomerHandler struct {
	uc  *customer.UseCase
	log *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *customer.UseCase, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar clientes
// @Tags         customers
// @Produce      json
// @Success      200  {array}   dto.CustomerResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(list)
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        body  body  dto.CreateCustomerRequest  true  "Datos del cliente"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	fields, err := requestFields(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), fields)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Get godoc
// @Summary      Obtener cliente con direcciones y métodos de pago
// @Tags         customers
// @Produce      json
// @Param        id   path  int  true  "ID del cliente"
// @Success      200  {object}  dto.CustomerDetailResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /customer/{id} [get]
func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c, "no existe")
	}
	out, err := h.uc.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente (parcial)
// @Tags         customers
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id    path  int                        true  "ID del cliente"
// @Param        body  body  dto.UpdateCustomerRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /customer/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	fields, err := requestFields(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c, msgCustomerNotFound)
	}
	out, err := h.uc.Update(c.UserContext(), id, fields)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Delete DELETE /customer/:id. Idempotente.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c, msgCustomerNotFound)
	}
	out, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListAddresses GET /customers/:id/addresses
func (h *CustomerHandler) ListAddresses(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c, msgCustomerNotFound)
	}
	out, err := h.uc.ListAddresses(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreateAddress godoc
// @Summary      Agregar dirección
// @Tags         addresses
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id    path  int                       true  "ID del cliente"
// @Param        body  body  dto.CreateAddressRequest  true  "Dirección"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /customers/{id}/addresses [post]
func (h *CustomerHandler) CreateAddress(c *fiber.Ctx) error {
	fields, err := requestFields(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c, msgCustomerNotFound)
	}
	out, err := h.uc.CreateAddress(c.UserContext(), id, fields)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// DeleteAddress DELETE /customers/:id/addresses/:addressId
func (h *CustomerHandler) DeleteAddress(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c, msgCustomerNotFound)
	}
	addressID, ok := paramID(c, "addressId")
	if !ok {
		return notFound(c, "dirección no existe")
	}
	out, err := h.uc.DeleteAddress(c.UserContext(), id, addressID)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListPaymentMethods GET /customers/:id/payment-methods
func (h *CustomerHandler) ListPaymentMethods(c *fiber.Ctx) error {
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c, msgCustomerNotFound)
	}
	out, err := h.uc.ListPaymentMethods(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// CreatePaymentMethod godoc
// @Summary      Registrar método de pago tokenizado
// @Description  Solo se guardan el token de la pasarela y metadatos; nunca el número de tarjeta.
// @Tags         payment-methods
// @Accept       json,x-www-form-urlencoded
// @Produce      json
// @Param        id    path  int                             true  "ID del cliente"
// @Param        body  body  dto.CreatePaymentMethodRequest  true  "Método de pago"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /customers/{id}/payment-methods [post]
func (h *CustomerHandler) CreatePaymentMethod(c *fiber.Ctx) error {
	fields, err := requestFields(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	id, ok := paramID(c, "id")
	if !ok {
		return notFound(c, msgCustomerNotFound)
	}
	out, err := h.uc.CreatePaymentMethod(c.UserContext(), id, fields)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
