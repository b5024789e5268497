package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/customers-api/internal/application/customer"
	"github.com/jhoicas/customers-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CustomerUC *customer.UseCase
	DB         Pinger
	Logger     *logger.Logger
	AppName    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/health", HealthHandler(deps.AppName, deps.DB))

	h := NewCustomerHandler(deps.CustomerUC, log)

	app.Get("/customers", h.List)
	app.Post("/customers", h.Create)

	// Recurso individual en singular.
	app.Get("/customer/:id", h.Get)
	app.Put("/customer/:id", h.Update)
	app.Delete("/customer/:id", h.Delete)

	customers := app.Group("/customers/:id")
	customers.Get("/addresses", h.ListAddresses)
	customers.Post("/addresses", h.CreateAddress)
	customers.Delete("/addresses/:addressId", h.DeleteAddress)
	customers.Get("/payment-methods", h.ListPaymentMethods)
	customers.Post("/payment-methods", h.CreatePaymentMethod)
}
