package service

import (
	"errors"

	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/internal/app/repository"
	"github.com/lvargas/catalogos-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrProductoNotFound = errors.New("producto not found")

// ProductoUpdate carries the fields of a partial update. Nil fields are
// left untouched on the stored record.
type ProductoUpdate struct {
	Nombre       *string
	UnidadMedida *string
	PrecioBase   *float64
}

type ProductoService interface {
	CreateProducto(producto *model.Producto) error
	ListProductos(offset, limit int) ([]model.Producto, error)
	GetProducto(id uint) (*model.Producto, error)
	UpdateProducto(id uint, update ProductoUpdate) (*model.Producto, error)
	DeleteProducto(id uint) error
}

type productoService struct {
	productoRepo repository.ProductoRepository
}

func NewProductoService(productoRepo repository.ProductoRepository) ProductoService {
	return &productoService{productoRepo: productoRepo}
}

func (s *productoService) CreateProducto(producto *model.Producto) error {
	logger.Info("Creating producto", map[string]interface{}{
		"nombre":      producto.Nombre,
		"precio_base": producto.PrecioBase,
	})

	if err := s.productoRepo.Create(producto); err != nil {
		logger.Error("Failed to create producto", err, map[string]interface{}{
			"nombre": producto.Nombre,
		})
		return err
	}

	logger.Info("Producto created successfully", map[string]interface{}{
		"producto_id": producto.ID,
	})
	return nil
}

func (s *productoService) ListProductos(offset, limit int) ([]model.Producto, error) {
	return s.productoRepo.FindAll(offset, limit)
}

func (s *productoService) GetProducto(id uint) (*model.Producto, error) {
	producto, err := s.productoRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Producto not found", map[string]interface{}{
				"producto_id": id,
			})
			return nil, ErrProductoNotFound
		}
		logger.Error("Failed to fetch producto", err, map[string]interface{}{
			"producto_id": id,
		})
		return nil, err
	}
	return producto, nil
}

func (s *productoService) UpdateProducto(id uint, update ProductoUpdate) (*model.Producto, error) {
	logger.Info("Updating producto", map[string]interface{}{
		"producto_id": id,
	})

	producto, err := s.GetProducto(id)
	if err != nil {
		return nil, err
	}

	if update.Nombre != nil {
		producto.Nombre = *update.Nombre
	}
	if update.UnidadMedida != nil {
		producto.UnidadMedida = *update.UnidadMedida
	}
	if update.PrecioBase != nil {
		producto.PrecioBase = *update.PrecioBase
	}

	if err := s.productoRepo.Update(producto); err != nil {
		logger.Error("Failed to update producto", err, map[string]interface{}{
			"producto_id": id,
		})
		return nil, err
	}

	logger.Info("Producto updated successfully", map[string]interface{}{
		"producto_id": id,
	})
	return producto, nil
}

func (s *productoService) DeleteProducto(id uint) error {
	logger.Info("Deleting producto", map[string]interface{}{
		"producto_id": id,
	})

	if _, err := s.GetProducto(id); err != nil {
		return err
	}

	if err := s.productoRepo.Delete(id); err != nil {
		logger.Error("Failed to delete producto", err, map[string]interface{}{
			"producto_id": id,
		})
		return err
	}

	logger.Info("Producto deleted successfully", map[string]interface{}{
		"producto_id": id,
	})
	return nil
}
