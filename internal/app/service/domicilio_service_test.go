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

func setupDomicilioServiceTest(t *testing.T) (*gorm.DB, DomicilioService, *model.Cliente) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	clienteRepo := repository.NewClienteRepository(testDB)
	domicilioRepo := repository.NewDomicilioRepository(testDB)
	svc := NewDomicilioService(domicilioRepo, clienteRepo)

	cliente := testCliente("TEST123456AB1")
	require.NoError(t, clienteRepo.Create(cliente))

	return testDB, svc, cliente
}

func testDomicilio() *model.Domicilio {
	return &model.Domicilio{
		Domicilio:     "Calle Test 123",
		Colonia:       "Centro",
		Municipio:     "Guadalajara",
		Estado:        "Jalisco",
		TipoDireccion: model.TipoFacturacion,
	}
}

func TestDomicilioService_CreateDomicilio(t *testing.T) {
	_, svc, cliente := setupDomicilioServiceTest(t)

	domicilio := testDomicilio()
	require.NoError(t, svc.CreateDomicilio(cliente.ID, domicilio))

	assert.NotZero(t, domicilio.ID)
	assert.Equal(t, cliente.ID, domicilio.ClienteID)
}

func TestDomicilioService_CreateDomicilio_ParentMissing(t *testing.T) {
	_, svc, _ := setupDomicilioServiceTest(t)

	err := svc.CreateDomicilio(999999, testDomicilio())
	assert.ErrorIs(t, err, ErrClienteNotFound)
}

func TestDomicilioService_ListDomicilios_ScopedToCliente(t *testing.T) {
	testDB, svc, cliente := setupDomicilioServiceTest(t)

	otro := testCliente("OTRO010101XY2")
	require.NoError(t, testDB.Create(otro).Error)

	require.NoError(t, svc.CreateDomicilio(cliente.ID, testDomicilio()))
	require.NoError(t, svc.CreateDomicilio(cliente.ID, testDomicilio()))
	require.NoError(t, svc.CreateDomicilio(otro.ID, testDomicilio()))

	domicilios, err := svc.ListDomicilios(cliente.ID)
	require.NoError(t, err)
	assert.Len(t, domicilios, 2)
}

func TestDomicilioService_UpdateDomicilio_PartialMerge(t *testing.T) {
	_, svc, cliente := setupDomicilioServiceTest(t)

	domicilio := testDomicilio()
	require.NoError(t, svc.CreateDomicilio(cliente.ID, domicilio))

	tipo := model.TipoEnvio
	updated, err := svc.UpdateDomicilio(domicilio.ID, DomicilioUpdate{
		TipoDireccion: &tipo,
	})
	require.NoError(t, err)

	assert.Equal(t, model.TipoEnvio, updated.TipoDireccion)
	assert.Equal(t, "Calle Test 123", updated.Domicilio)
	assert.Equal(t, "Centro", updated.Colonia)
	assert.Equal(t, cliente.ID, updated.ClienteID)
}

func TestDomicilioService_GetDomicilio_NotFound(t *testing.T) {
	_, svc, _ := setupDomicilioServiceTest(t)

	_, err := svc.GetDomicilio(999999)
	assert.ErrorIs(t, err, ErrDomicilioNotFound)
}

func TestDomicilioService_DeleteDomicilio(t *testing.T) {
	_, svc, cliente := setupDomicilioServiceTest(t)

	domicilio := testDomicilio()
	require.NoError(t, svc.CreateDomicilio(cliente.ID, domicilio))

	require.NoError(t, svc.DeleteDomicilio(domicilio.ID))

	_, err := svc.GetDomicilio(domicilio.ID)
	assert.ErrorIs(t, err, ErrDomicilioNotFound)
}
