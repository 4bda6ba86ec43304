package repository

import (
	"testing"

	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupProductoTest(t *testing.T) (*gorm.DB, ProductoRepository) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)

	repo := NewProductoRepository(testDB)
	return testDB, repo
}

func TestProductoRepository_Create(t *testing.T) {
	testDB, repo := setupProductoTest(t)
	defer db.CleanupTestDB(testDB)

	producto := &model.Producto{
		Nombre:       "Producto Test",
		UnidadMedida: "PZA",
		PrecioBase:   100.50,
	}

	err := repo.Create(producto)
	assert.NoError(t, err)
	assert.NotZero(t, producto.ID)
}

func TestProductoRepository_FindAll_Pagination(t *testing.T) {
	testDB, repo := setupProductoTest(t)
	defer db.CleanupTestDB(testDB)

	productos := []model.Producto{
		{Nombre: "Producto A", UnidadMedida: "PZA", PrecioBase: 10},
		{Nombre: "Producto B", UnidadMedida: "KG", PrecioBase: 20},
		{Nombre: "Producto C", UnidadMedida: "LT", PrecioBase: 30},
	}
	for i := range productos {
		require.NoError(t, repo.Create(&productos[i]))
	}

	all, err := repo.FindAll(0, 100)
	assert.NoError(t, err)
	assert.Len(t, all, 3)

	page, err := repo.FindAll(2, 2)
	assert.NoError(t, err)
	assert.Len(t, page, 1)
}

func TestProductoRepository_Delete(t *testing.T) {
	testDB, repo := setupProductoTest(t)
	defer db.CleanupTestDB(testDB)

	producto := &model.Producto{
		Nombre:       "Producto Test",
		UnidadMedida: "PZA",
		PrecioBase:   100.50,
	}
	require.NoError(t, repo.Create(producto))

	require.NoError(t, repo.Delete(producto.ID))

	_, err := repo.FindByID(producto.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
