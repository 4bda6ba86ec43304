package service

import (
	"testing"

	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/internal/app/repository"
	"github.com/lvargas/catalogos-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupClienteServiceTest(t *testing.T) (*gorm.DB, ClienteService) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	clienteRepo := repository.NewClienteRepository(testDB)
	return testDB, NewClienteService(clienteRepo)
}

func testCliente(rfc string) *model.Cliente {
	return &model.Cliente{
		RazonSocial:       "Empresa Test SA de CV",
		NombreComercial:   "Test Company",
		RFC:               rfc,
		CorreoElectronico: "test@empresa.com",
		Telefono:          "5551234567",
	}
}

func TestClienteService_CreateAndGet(t *testing.T) {
	_, svc := setupClienteServiceTest(t)

	cliente := testCliente("TEST123456AB1")
	require.NoError(t, svc.CreateCliente(cliente))
	require.NotZero(t, cliente.ID)

	found, err := svc.GetCliente(cliente.ID)
	require.NoError(t, err)
	assert.Equal(t, "TEST123456AB1", found.RFC)
}

func TestClienteService_GetCliente_NotFound(t *testing.T) {
	_, svc := setupClienteServiceTest(t)

	_, err := svc.GetCliente(999999)
	assert.ErrorIs(t, err, ErrClienteNotFound)
}

func TestClienteService_UpdateCliente_PartialMerge(t *testing.T) {
	_, svc := setupClienteServiceTest(t)

	cliente := testCliente("TEST123456AB1")
	require.NoError(t, svc.CreateCliente(cliente))

	nombre := "Updated Company"
	updated, err := svc.UpdateCliente(cliente.ID, ClienteUpdate{
		NombreComercial: &nombre,
	})
	require.NoError(t, err)

	// Only the provided field changes
	assert.Equal(t, "Updated Company", updated.NombreComercial)
	assert.Equal(t, "Empresa Test SA de CV", updated.RazonSocial)
	assert.Equal(t, "TEST123456AB1", updated.RFC)
	assert.Equal(t, "test@empresa.com", updated.CorreoElectronico)
	assert.Equal(t, "5551234567", updated.Telefono)
}

func TestClienteService_UpdateCliente_NotFound(t *testing.T) {
	_, svc := setupClienteServiceTest(t)

	nombre := "Updated Company"
	_, err := svc.UpdateCliente(999999, ClienteUpdate{NombreComercial: &nombre})
	assert.ErrorIs(t, err, ErrClienteNotFound)
}

func TestClienteService_DeleteCliente(t *testing.T) {
	_, svc := setupClienteServiceTest(t)

	cliente := testCliente("TEST123456AB1")
	require.NoError(t, svc.CreateCliente(cliente))

	require.NoError(t, svc.DeleteCliente(cliente.ID))

	_, err := svc.GetCliente(cliente.ID)
	assert.ErrorIs(t, err, ErrClienteNotFound)
}

func TestClienteService_DeleteCliente_NotFound(t *testing.T) {
	_, svc := setupClienteServiceTest(t)

	err := svc.DeleteCliente(999999)
	assert.ErrorIs(t, err, ErrClienteNotFound)
}
