package repository

import "github.com/jhoicas/pix-checkout-api/internal/domain/entity"

// CustomerPatch campos opcionales a fusionar en un Customer; nil = sin cambio.
type CustomerPatch struct {
	AbacatePayID *string
}

// CustomerRepository define el puerto de persistencia para Customer.
// Create genera el ID y CreatedAt; Get* devuelven domain.ErrNotFound si no existe.
// Update aplica el patch como una única operación atómica de lectura-modificación-escritura.
type CustomerRepository interface {
	Create(c *entity.Customer) (*entity.Customer, error)
	GetByID(id string) (*entity.Customer, error)
	// GetByEmail devuelve la primera coincidencia; el email no es único.
	GetByEmail(email string) (*entity.Customer, error)
	Update(id string, patch CustomerPatch) (*entity.Customer, error)
	Count() int
}
