package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/internal/app/service"
	apperrors "github.com/lvargas/catalogos-backend/internal/errors"
	"github.com/lvargas/catalogos-backend/internal/middleware"
	"github.com/lvargas/catalogos-backend/internal/validation"
)

type ProductoController struct {
	productoService service.ProductoService
}

func NewProductoController(productoService service.ProductoService) *ProductoController {
	return &ProductoController{productoService: productoService}
}

type CreateProductoRequest struct {
	Nombre       string  `json:"nombre" binding:"required,min=1,max=255"`
	UnidadMedida string  `json:"unidad_medida" binding:"required,min=1,max=50"`
	PrecioBase   float64 `json:"precio_base" binding:"required,gt=0"`
}

type UpdateProductoRequest struct {
	Nombre       *string  `json:"nombre" binding:"omitnil,min=1,max=255"`
	UnidadMedida *string  `json:"unidad_medida" binding:"omitnil,min=1,max=50"`
	PrecioBase   *float64 `json:"precio_base" binding:"omitnil,gt=0"`
}

// CreateProducto creates a new producto
// POST /productos
func (ctrl *ProductoController) CreateProducto(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create producto request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, validation.Fields(err))
		return
	}

	producto := &model.Producto{
		Nombre:       req.Nombre,
		UnidadMedida: req.UnidadMedida,
		PrecioBase:   req.PrecioBase,
	}

	if err := ctrl.productoService.CreateProducto(producto); err != nil {
		log.Error("Failed to create producto", err, map[string]interface{}{
			"nombre": req.Nombre,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Producto created successfully", map[string]interface{}{
		"producto_id": producto.ID,
	})
	c.JSON(http.StatusCreated, producto)
}

// ListProductos returns productos with skip/limit pagination
// GET /productos
func (ctrl *ProductoController) ListProductos(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	skip, limit := pagination(c)

	productos, err := ctrl.productoService.ListProductos(skip, limit)
	if err != nil {
		log.Error("Failed to list productos", err, map[string]interface{}{
			"skip":  skip,
			"limit": limit,
		})
		apperrors.InternalError(c, "")
		return
	}

	if productos == nil {
		productos = []model.Producto{}
	}
	c.JSON(http.StatusOK, productos)
}

// GetProducto returns a producto by ID
// GET /productos/:id
func (ctrl *ProductoController) GetProducto(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		apperrors.InvalidID(c, "id")
		return
	}

	producto, err := ctrl.productoService.GetProducto(id)
	if err != nil {
		if errors.Is(err, service.ErrProductoNotFound) {
			apperrors.NotFound(c, apperrors.ProductoNotFound, "Producto no encontrado")
			return
		}
		log.Error("Failed to fetch producto", err, map[string]interface{}{
			"producto_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, producto)
}

// UpdateProducto applies a partial update to a producto
// PUT /productos/:id
func (ctrl *ProductoController) UpdateProducto(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		apperrors.InvalidID(c, "id")
		return
	}

	var req UpdateProductoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update producto request", map[string]interface{}{
			"producto_id": id,
			"error":       err.Error(),
		})
		apperrors.RespondWithValidationError(c, validation.Fields(err))
		return
	}

	producto, err := ctrl.productoService.UpdateProducto(id, service.ProductoUpdate{
		Nombre:       req.Nombre,
		UnidadMedida: req.UnidadMedida,
		PrecioBase:   req.PrecioBase,
	})
	if err != nil {
		if errors.Is(err, service.ErrProductoNotFound) {
			apperrors.NotFound(c, apperrors.ProductoNotFound, "Producto no encontrado")
			return
		}
		log.Error("Failed to update producto", err, map[string]interface{}{
			"producto_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Producto updated successfully", map[string]interface{}{
		"producto_id": id,
	})
	c.JSON(http.StatusOK, producto)
}

// DeleteProducto removes a producto
// DELETE /productos/:id
func (ctrl *ProductoController) DeleteProducto(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		apperrors.InvalidID(c, "id")
		return
	}

	if err := ctrl.productoService.DeleteProducto(id); err != nil {
		if errors.Is(err, service.ErrProductoNotFound) {
			apperrors.NotFound(c, apperrors.ProductoNotFound, "Producto no encontrado")
			return
		}
		log.Error("Failed to delete producto", err, map[string]interface{}{
			"producto_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Producto deleted successfully", map[string]interface{}{
		"producto_id": id,
	})
	c.Status(http.StatusNoContent)
}
