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

type ClienteController struct {
	clienteService service.ClienteService
}

func NewClienteController(clienteService service.ClienteService) *ClienteController {
	return &ClienteController{clienteService: clienteService}
}

type CreateClienteRequest struct {
	RazonSocial       string `json:"razon_social" binding:"required,min=1,max=255"`
	NombreComercial   string `json:"nombre_comercial" binding:"required,min=1,max=255"`
	RFC               string `json:"rfc" binding:"required,min=12,max=13,rfc"`
	CorreoElectronico string `json:"correo_electronico" binding:"required,email,max=255"`
	Telefono          string `json:"telefono" binding:"required,min=10,max=20"`
}

type UpdateClienteRequest struct {
	RazonSocial       *string `json:"razon_social" binding:"omitnil,min=1,max=255"`
	NombreComercial   *string `json:"nombre_comercial" binding:"omitnil,min=1,max=255"`
	RFC               *string `json:"rfc" binding:"omitnil,min=12,max=13"`
	CorreoElectronico *string `json:"correo_electronico" binding:"omitnil,email,max=255"`
	Telefono          *string `json:"telefono" binding:"omitnil,min=10,max=20"`
}

// CreateCliente creates a new cliente
// POST /clientes
func (ctrl *ClienteController) CreateCliente(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid create cliente request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.RespondWithValidationError(c, validation.Fields(err))
		return
	}

	cliente := &model.Cliente{
		RazonSocial:       req.RazonSocial,
		NombreComercial:   req.NombreComercial,
		RFC:               req.RFC,
		CorreoElectronico: req.CorreoElectronico,
		Telefono:          req.Telefono,
	}

	if err := ctrl.clienteService.CreateCliente(cliente); err != nil {
		if apperrors.IsDuplicate(err) {
			info := apperrors.ParseError(err, "cliente")
			log.Warn("Duplicate RFC on cliente creation", map[string]interface{}{
				"rfc": req.RFC,
			})
			apperrors.Conflict(c, info.Code, info.Message)
			return
		}
		log.Error("Failed to create cliente", err, map[string]interface{}{
			"rfc": req.RFC,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Cliente created successfully", map[string]interface{}{
		"cliente_id": cliente.ID,
	})
	c.JSON(http.StatusCreated, cliente)
}

// ListClientes returns clientes with skip/limit pagination
// GET /clientes
func (ctrl *ClienteController) ListClientes(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	skip, limit := pagination(c)

	clientes, err := ctrl.clienteService.ListClientes(skip, limit)
	if err != nil {
		log.Error("Failed to list clientes", err, map[string]interface{}{
			"skip":  skip,
			"limit": limit,
		})
		apperrors.InternalError(c, "")
		return
	}

	if clientes == nil {
		clientes = []model.Cliente{}
	}
	c.JSON(http.StatusOK, clientes)
}

// GetCliente returns a cliente by ID
// GET /clientes/:id
func (ctrl *ClienteController) GetCliente(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		apperrors.InvalidID(c, "id")
		return
	}

	cliente, err := ctrl.clienteService.GetCliente(id)
	if err != nil {
		if errors.Is(err, service.ErrClienteNotFound) {
			apperrors.NotFound(c, apperrors.ClienteNotFound, "Cliente no encontrado")
			return
		}
		log.Error("Failed to fetch cliente", err, map[string]interface{}{
			"cliente_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	c.JSON(http.StatusOK, cliente)
}

// UpdateCliente applies a partial update to a cliente
// PUT /clientes/:id
func (ctrl *ClienteController) UpdateCliente(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		apperrors.InvalidID(c, "id")
		return
	}

	var req UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update cliente request", map[string]interface{}{
			"cliente_id": id,
			"error":      err.Error(),
		})
		apperrors.RespondWithValidationError(c, validation.Fields(err))
		return
	}

	cliente, err := ctrl.clienteService.UpdateCliente(id, service.ClienteUpdate{
		RazonSocial:       req.RazonSocial,
		NombreComercial:   req.NombreComercial,
		RFC:               req.RFC,
		CorreoElectronico: req.CorreoElectronico,
		Telefono:          req.Telefono,
	})
	if err != nil {
		if errors.Is(err, service.ErrClienteNotFound) {
			apperrors.NotFound(c, apperrors.ClienteNotFound, "Cliente no encontrado")
			return
		}
		if apperrors.IsDuplicate(err) {
			info := apperrors.ParseError(err, "cliente")
			apperrors.Conflict(c, info.Code, info.Message)
			return
		}
		log.Error("Failed to update cliente", err, map[string]interface{}{
			"cliente_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Cliente updated successfully", map[string]interface{}{
		"cliente_id": id,
	})
	c.JSON(http.StatusOK, cliente)
}

// DeleteCliente removes a cliente and its domicilios
// DELETE /clientes/:id
func (ctrl *ClienteController) DeleteCliente(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := pathID(c, "id")
	if !ok {
		apperrors.InvalidID(c, "id")
		return
	}

	if err := ctrl.clienteService.DeleteCliente(id); err != nil {
		if errors.Is(err, service.ErrClienteNotFound) {
			apperrors.NotFound(c, apperrors.ClienteNotFound, "Cliente no encontrado")
			return
		}
		log.Error("Failed to delete cliente", err, map[string]interface{}{
			"cliente_id": id,
		})
		apperrors.InternalError(c, "")
		return
	}

	log.Info("Cliente deleted successfully", map[string]interface{}{
		"cliente_id": id,
	})
	c.Status(http.StatusNoContent)
}
