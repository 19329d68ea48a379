package repository

import "github.com/jhoicas/pix-checkout-api/internal/domain/entity"

// BillingPatch campos opcionales a fusionar en un Billing; nil = sin cambio.
// UpdatedAt se refresca como efecto secundario de todo Update.
type BillingPatch struct {
	Status       *string
	AbacatePayID *string
	PixCode      *string
	QRCodeURL    *string
}

// BillingRepository define el puerto de persistencia para Billing.
// Create genera el ID, CreatedAt y UpdatedAt; Get* devuelven domain.ErrNotFound
// si no existe. Update aplica el patch como una única operación atómica.
type BillingRepository interface {
	Create(b *entity.Billing) (*entity.Billing, error)
	GetByID(id string) (*entity.Billing, error)
	// GetByAbacatePayID búsqueda inversa por la llave de reconciliación de la pasarela.
	GetByAbacatePayID(abacatePayID string) (*entity.Billing, error)
	Update(id string, patch BillingPatch) (*entity.Billing, error)
	ListByCustomer(customerID string) ([]*entity.Billing, error)
}
