package repository

import (
	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/pkg/logger"
	"gorm.io/gorm"
)

type ProductoRepository interface {
	Create(producto *model.Producto) error
	FindAll(offset, limit int) ([]model.Producto, error)
	FindByID(id uint) (*model.Producto, error)
	Update(producto *model.Producto) error
	Delete(id uint) error
}

type productoRepository struct {
	db *gorm.DB
}

func NewProductoRepository(db *gorm.DB) ProductoRepository {
	return &productoRepository{db: db}
}

func (r *productoRepository) Create(producto *model.Producto) error {
	logger.Debug("Creating producto in database", map[string]interface{}{
		"nombre":        producto.Nombre,
		"unidad_medida": producto.UnidadMedida,
		"precio_base":   producto.PrecioBase,
	})

	if err := r.db.Create(producto).Error; err != nil {
		logger.Error("Failed to create producto in database", err, map[string]interface{}{
			"nombre": producto.Nombre,
		})
		return err
	}

	logger.Debug("Producto created in database", map[string]interface{}{
		"producto_id": producto.ID,
		"nombre":      producto.Nombre,
	})
	return nil
}

func (r *productoRepository) FindAll(offset, limit int) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.Offset(offset).Limit(limit).Find(&productos).Error
	if err != nil {
		logger.Error("Failed to list productos in database", err, map[string]interface{}{
			"offset": offset,
			"limit":  limit,
		})
		return nil, err
	}

	logger.Debug("Productos listed from database", map[string]interface{}{
		"offset": offset,
		"limit":  limit,
		"count":  len(productos),
	})
	return productos, nil
}

func (r *productoRepository) FindByID(id uint) (*model.Producto, error) {
	var producto model.Producto
	if err := r.db.First(&producto, id).Error; err != nil {
		return nil, err
	}
	return &producto, nil
}

func (r *productoRepository) Update(producto *model.Producto) error {
	if err := r.db.Save(producto).Error; err != nil {
		logger.Error("Failed to update producto in database", err, map[string]interface{}{
			"producto_id": producto.ID,
		})
		return err
	}

	logger.Debug("Producto updated in database", map[string]interface{}{
		"producto_id": producto.ID,
	})
	return nil
}

func (r *productoRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Producto{}, id).Error; err != nil {
		logger.Error("Failed to delete producto from database", err, map[string]interface{}{
			"producto_id": id,
		})
		return err
	}

	logger.Debug("Producto deleted from database", map[string]interface{}{
		"producto_id": id,
	})
	return nil
}
