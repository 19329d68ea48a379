package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/pix-checkout-api/internal/domain"
	"github.com/jhoicas/pix-checkout-api/internal/domain/entity"
	"github.com/jhoicas/pix-checkout-api/internal/domain/repository"
)

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación en memoria de CustomerRepository.
// Seguro para uso concurrente; devuelve copias para que el caller no pueda
// mutar el estado almacenado. Los clientes viven mientras viva el proceso.
type CustomerRepo struct {
	mu        sync.RWMutex
	customers map[string]entity.Customer
}

// NewCustomerRepository construye el repositorio vacío.
func NewCustomerRepository() *CustomerRepo {
	return &CustomerRepo{customers: make(map[string]entity.Customer)}
}

// Create persiste un nuevo cliente generando ID y CreatedAt.
func (r *CustomerRepo) Create(c *entity.Customer) (*entity.Customer, error) {
	stored := *c
	stored.ID = uuid.New().String()
	stored.CreatedAt = time.Now()

	r.mu.Lock()
	r.customers[stored.ID] = stored
	r.mu.Unlock()

	return &stored, nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(id string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &c, nil
}

// GetByEmail devuelve la primera coincidencia por email (escaneo lineal;
// el email no es único y el volumen esperado es pequeño).
func (r *CustomerRepo) GetByEmail(email string) (*entity.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.customers {
		if c.Email == email {
			found := c
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

// Update fusiona el patch sobre el cliente en una sola sección crítica.
func (r *CustomerRepo) Update(id string, patch repository.CustomerPatch) (*entity.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.customers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if patch.AbacatePayID != nil {
		c.AbacatePayID = *patch.AbacatePayID
	}
	r.customers[id] = c
	return &c, nil
}

// Count número de clientes almacenados.
func (r *CustomerRepo) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.customers)
}
