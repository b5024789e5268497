package repository

// Repositories agrupa los repositorios atados a una misma transacción.
type Repositories struct {
	Customers      CustomerRepository
	Addresses      AddressRepository
	PaymentMethods PaymentMethodRepository
}
