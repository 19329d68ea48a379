package memory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/pix-checkout-api/internal/domain"
	"github.com/jhoicas/pix-checkout-api/internal/domain/entity"
	"github.com/jhoicas/pix-checkout-api/internal/domain/repository"
	"github.com/jhoicas/pix-checkout-api/internal/infrastructure/memory"
)

func newCustomer(email string) *entity.Customer {
	return &entity.Customer{
		Name:  "Maria Silva",
		Email: email,
		Phone: "11999999999",
		TaxID: "12345678901",
	}
}

func TestCustomerRepo_CreateYGetByID(t *testing.T) {
	repo := memory.NewCustomerRepository()

	created, err := repo.Create(newCustomer("maria@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	found, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", found.Name)

	assert.Equal(t, 1, repo.Count())
}

// El email no es único: la búsqueda devuelve la primera coincidencia.
func TestCustomerRepo_GetByEmailPrimeraCoincidencia(t *testing.T) {
	repo := memory.NewCustomerRepository()
	_, err := repo.Create(newCustomer("maria@example.com"))
	require.NoError(t, err)
	_, err = repo.Create(newCustomer("maria@example.com"))
	require.NoError(t, err)

	found, err := repo.GetByEmail("maria@example.com")
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", found.Email)

	_, err = repo.GetByEmail("nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCustomerRepo_UpdateAbacatePayID(t *testing.T) {
	repo := memory.NewCustomerRepository()
	created, err := repo.Create(newCustomer("maria@example.com"))
	require.NoError(t, err)
	assert.Empty(t, created.AbacatePayID)

	gwID := "cust_gw_1"
	updated, err := repo.Update(created.ID, repository.CustomerPatch{AbacatePayID: &gwID})
	require.NoError(t, err)
	assert.Equal(t, gwID, updated.AbacatePayID)
	// CreatedAt es inmutable
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)

	_, err = repo.Update("no-existe", repository.CustomerPatch{AbacatePayID: &gwID})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
