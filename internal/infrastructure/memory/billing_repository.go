package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pix-checkout-api/internal/domain"
	"github.com/jhoicas/pix-checkout-api/internal/domain/entity"
	"github.com/jhoicas/pix-checkout-api/internal/domain/repository"
)

var _ repository.BillingRepository = (*BillingRepo)(nil)

// BillingRepo implementación en memoria de BillingRepository.
// Mismas garantías que CustomerRepo: updates atómicos bajo mutex y copias
// en los retornos.
type BillingRepo struct {
	mu       sync.RWMutex
	billings map[string]entity.Billing
}

// NewBillingRepository construye el repositorio vacío.
func NewBillingRepository() *BillingRepo {
	return &BillingRepo{billings: make(map[string]entity.Billing)}
}

// Create persiste un nuevo cobro generando ID, CreatedAt y UpdatedAt.
func (r *BillingRepo) Create(b *entity.Billing) (*entity.Billing, error) {
	now := time.Now()
	stored := *b
	stored.ID = uuid.New().String()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.mu.Lock()
	r.billings[stored.ID] = stored
	r.mu.Unlock()

	return &stored, nil
}

// GetByID obtiene un cobro por ID.
func (r *BillingRepo) GetByID(id string) (*entity.Billing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.billings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

// GetByAbacatePayID búsqueda inversa por la llave de la pasarela (escaneo lineal).
func (r *BillingRepo) GetByAbacatePayID(abacatePayID string) (*entity.Billing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, b := range r.billings {
		if b.AbacatePayID != "" && b.AbacatePayID == abacatePayID {
			found := b
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update fusiona el patch en una sola sección crítica y refresca UpdatedAt.
func (r *BillingRepo) Update(id string, patch repository.BillingPatch) (*entity.Billing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.billings[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.Status != nil {
		b.Status = *patch.Status
	}
	if patch.AbacatePayID != nil {
		b.AbacatePayID = *patch.AbacatePayID
	}
	if patch.PixCode != nil {
		b.PixCode = *patch.PixCode
	}
	if patch.QRCodeURL != nil {
		b.QRCodeURL = *patch.QRCodeURL
	}
	b.UpdatedAt = time.Now()
	r.billings[id] = b
	return &b, nil
}

// ListByCustomer todos los cobros de un cliente (sin garantía de orden).
func (r *BillingRepo) ListByCustomer(customerID string) ([]*entity.Billing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Billing, 0)
	for _, b := range r.billings {
		if b.CustomerID == customerID {
			found := b
			out = append(out, &found)
		}
	}
	return out, nil
}
