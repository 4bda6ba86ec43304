package service

import (
	"testing"

	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/internal/app/repository"
	"github.com/lvargas/catalogos-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductoServiceTest(t *testing.T) ProductoService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	return NewProductoService(repository.NewProductoRepository(testDB))
}

func TestProductoService_CreateAndGet(t *testing.T) {
	svc := setupProductoServiceTest(t)

	producto := &model.Producto{
		Nombre:       "Producto Test",
		UnidadMedida: "PZA",
		PrecioBase:   100.50,
	}
	require.NoError(t, svc.CreateProducto(producto))
	require.NotZero(t, producto.ID)

	found, err := svc.GetProducto(producto.ID)
	require.NoError(t, err)
	assert.Equal(t, "Producto Test", found.Nombre)
	assert.Equal(t, 100.50, found.PrecioBase)
}

func TestProductoService_GetProducto_NotFound(t *testing.T) {
	svc := setupProductoServiceTest(t)

	_, err := svc.GetProducto(999999)
	assert.ErrorIs(t, err, ErrProductoNotFound)
}

func TestProductoService_UpdateProducto_PartialMerge(t *testing.T) {
	svc := setupProductoServiceTest(t)

	producto := &model.Producto{
		Nombre:       "Producto Test",
		UnidadMedida: "PZA",
		PrecioBase:   100.50,
	}
	require.NoError(t, svc.CreateProducto(producto))

	precio := 250.75
	updated, err := svc.UpdateProducto(producto.ID, ProductoUpdate{
		PrecioBase: &precio,
	})
	require.NoError(t, err)

	assert.Equal(t, 250.75, updated.PrecioBase)
	assert.Equal(t, "Producto Test", updated.Nombre)
	assert.Equal(t, "PZA", updated.UnidadMedida)
}

func TestProductoService_DeleteProducto(t *testing.T) {
	svc := setupProductoServiceTest(t)

	producto := &model.Producto{
		Nombre:       "Producto Test",
		UnidadMedida: "PZA",
		PrecioBase:   100.50,
	}
	require.NoError(t, svc.CreateProducto(producto))

	require.NoError(t, svc.DeleteProducto(producto.ID))

	_, err := svc.GetProducto(producto.ID)
	assert.ErrorIs(t, err, ErrProductoNotFound)
}
