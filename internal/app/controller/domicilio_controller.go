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

type DomicilioController struct {
	domicilioService service.DomicilioService
}

func NewDomicilioController(domicilioService service.DomicilioService) *DomicilioController {
	return &DomicilioController{domicilioService: domicilioService}
}

type CreateDomicilioRequest struct {
	Domicilio     string              `json:"domicilio" binding:"required,min=1,max=500"`
	Colonia       string              `json:"colonia" binding:"required,min=1,max=255"`
	Municipio     string              `json:"municipio" binding:"required,min=1,max=255"`
	Estado        string              `json:"estado" binding:"required,min=1,max=255"`
	TipoDireccion model.TipoDireccion `json:"tipo_direccion" binding:"required,oneof=FACTURACION ENVIO"`
}

type UpdateDomicilioRequest struct {
	Domicilio     *string              `json:"domicilio" binding:"omitnil,min=1,max=500"`
	Colonia       *string              `json:"colonia" binding:"omitnil,min=1,max=255"`
	Municipio     *string              `json:"municipio" binding:"omitnil,min=1,max=255"`
	Estado        *string              `json:"estado" binding:"omitnil,min=1,max=255"`
	TipoDireccion *model.TipoDireccion `json:"tipo_direccion" binding:"omitnil,oneof=FACTURACION ENVIO"`
}

// CreateDomicilio creates a domicilio under a cliente
// POST /clientes/:id/domicilios
func (ctrl *DomicilioController) CreateDomicilio(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	clienteID, ok := pathID(c, "id")
	if !ok {
		apperrors.InvalidID(c, "id")
		return
	}

	var req CreateDomicilioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create domicilio request", map[string]interface{}{
			"cliente_id": clienteID,
			"error":      err.Error(),
		})
		apperrors.RespondWithValidationError(c, validation.Fields(err))
		return
	}

	domicilio := &model.Domicilio{
		Domicilio:     req.Domicilio,
		Colonia:       req.Colonia,
		Municipio:     req.Municipio,
		Estado:        req.Estado,
		TipoDireccion: req.TipoDireccion,
	}

	if err := ctrl.domicilioService.CreateDomicilio(clienteID, domicilio); err != nil {
		if errors.Is(err, service.ErrClienteNotFound) {
			apperrors.NotFound(c, apperrors.ClienteNotFound, "Cliente no encontrado")
			return
		}
		log.Error("Failed to create domicilio", err, map[string]interface{}{
			"cliente_id": clienteID,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Domicilio created successfully", map[string]interface{}{
		"domicilio_id": domicilio.ID,
		"cliente_id":   clienteID,
	})
	c.JSON(http.StatusCreated, domicilio)
}

// ListDomicilios returns the domicilios of a cliente
// GET /clientes/:id/domicilios
func (ctrl *DomicilioController) ListDomicilios(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	clienteID, ok := pathID(c, "id")
	if !ok {
		apperrors.InvalidID(c, "id")
		return
	}

	domicilios, err := ctrl.domicilioService.ListDomicilios(clienteID)
	if err != nil {
		log.Error("Failed to list domicilios", err, map[string]interface{}{
			"cliente_id": clienteID,
		})
		apperrors.InternalError(c, "")
		return
	}

	if domicilios == nil {
		domicilios = []model.Domicilio{}
	}
	c.JSON(http.StatusOK, domicilios)
}

// GetDomicilio returns a domicilio by ID
// GET /domicilios/:id
func (ctrl *DomicilioController) GetDomicilio(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		apperrors.InvalidID(c, "id")
		return
	}

	domicilio, err := ctrl.domicilioService.GetDomicilio(id)
	if err != nil {
		if errors.Is(err, service.ErrDomicilioNotFound) {
			apperrors.NotFound(c, apperrors.DomicilioNotFound, "Domicilio no encontrado")
			return
		}
		log.Error("Failed to fetch domicilio", err, map[string]interface{}{
			"domicilio_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, domicilio)
}

// UpdateDomicilio applies a partial update to a domicilio
// PUT /domicilios/:id
func (ctrl *DomicilioController) UpdateDomicilio(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		apperrors.InvalidID(c, "id")
		return
	}

	var req UpdateDomicilioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update domicilio request", map[string]interface{}{
			"domicilio_id": id,
			"error":        err.Error(),
		})
		apperrors.RespondWithValidationError(c, validation.Fields(err))
		return
	}

	domicilio, err := ctrl.domicilioService.UpdateDomicilio(id, service.DomicilioUpdate{
		Domicilio:     req.Domicilio,
		Colonia:       req.Colonia,
		Municipio:     req.Municipio,
		Estado:        req.Estado,
		TipoDireccion: req.TipoDireccion,
	})
	if err != nil {
		if errors.Is(err, service.ErrDomicilioNotFound) {
			apperrors.NotFound(c, apperrors.DomicilioNotFound, "Domicilio no encontrado")
			return
		}
		log.Error("Failed to update domicilio", err, map[string]interface{}{
			"domicilio_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Domicilio updated successfully", map[string]interface{}{
		"domicilio_id": id,
	})
	c.JSON(http.StatusOK, domicilio)
}

// DeleteDomicilio removes a domicilio
// DELETE /domicilios/:id
func (ctrl *DomicilioController) DeleteDomicilio(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		apperrors.InvalidID(c, "id")
		return
	}

	if err := ctrl.domicilioService.DeleteDomicilio(id); err != nil {
		if errors.Is(err, service.ErrDomicilioNotFound) {
			apperrors.NotFound(c, apperrors.DomicilioNotFound, "Domicilio no encontrado")
			return
		}
		log.Error("Failed to delete domicilio", err, map[string]interface{}{
			"domicilio_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Domicilio deleted successfully", map[string]interface{}{
		"domicilio_id": id,
	})
	c.Status(http.StatusNoContent)
}
