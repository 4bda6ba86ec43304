package service

import (
	"errors"

	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/internal/app/repository"
	"github.com/lvargas/catalogos-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrDomicilioNotFound = errors.New("domicilio not found")

// DomicilioUpdate carries the fields of a partial update. Nil fields are
// left untouched on the stored record.
type DomicilioUpdate struct {
	Domicilio     *string
	Colonia       *string
	Municipio     *string
	Estado        *string
	TipoDireccion *model.TipoDireccion
}

type DomicilioService interface {
	CreateDomicilio(clienteID uint, domicilio *model.Domicilio) error
	ListDomicilios(clienteID uint) ([]model.Domicilio, error)
	GetDomicilio(id uint) (*model.Domicilio, error)
	UpdateDomicilio(id uint, update DomicilioUpdate) (*model.Domicilio, error)
	DeleteDomicilio(id uint) error
}

type domicilioService struct {
	domicilioRepo repository.DomicilioRepository
	clienteRepo   repository.ClienteRepository
}

func NewDomicilioService(domicilioRepo repository.DomicilioRepository, clienteRepo repository.ClienteRepository) DomicilioService {
	return &domicilioService{
		domicilioRepo: domicilioRepo,
		clienteRepo:   clienteRepo,
	}
}

// CreateDomicilio inserts a domicilio under the given cliente. The parent
// cliente must exist.
func (s *domicilioService) CreateDomicilio(clienteID uint, domicilio *model.Domicilio) error {
	logger.Info("Creating domicilio", map[string]interface{}{
		"cliente_id":     clienteID,
		"tipo_direccion": domicilio.TipoDireccion,
	})

	if _, err := s.clienteRepo.FindByID(clienteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cliente not found for domicilio creation", map[string]interface{}{
				"cliente_id": clienteID,
			})
			return ErrClienteNotFound
		}
		logger.Error("Failed to fetch cliente for domicilio creation", err, map[string]interface{}{
			"cliente_id": clienteID,
		})
		return err
	}

	domicilio.ClienteID = clienteID
	if err := s.domicilioRepo.Create(domicilio); err != nil {
		logger.Error("Failed to create domicilio", err, map[string]interface{}{
			"cliente_id": clienteID,
		})
		return err
	}

	logger.Info("Domicilio created successfully", map[string]interface{}{
		"domicilio_id": domicilio.ID,
		"cliente_id":   clienteID,
	})
	return nil
}

func (s *domicilioService) ListDomicilios(clienteID uint) ([]model.Domicilio, error) {
	return s.domicilioRepo.FindByClienteID(clienteID)
}

func (s *domicilioService) GetDomicilio(id uint) (*model.Domicilio, error) {
	domicilio, err := s.domicilioRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Domicilio not found", map[string]interface{}{
				"domicilio_id": id,
			})
			return nil, ErrDomicilioNotFound
		}
		logger.Error("Failed to fetch domicilio", err, map[string]interface{}{
			"domicilio_id": id,
		})
		return nil, err
	}
	return domicilio, nil
}

func (s *domicilioService) UpdateDomicilio(id uint, update DomicilioUpdate) (*model.Domicilio, error) {
	logger.Info("Updating domicilio", map[string]interface{}{
		"domicilio_id": id,
	})

	domicilio, err := s.GetDomicilio(id)
	if err != nil {
		return nil, err
	}

	if update.Domicilio != nil {
		domicilio.Domicilio = *update.Domicilio
	}
	if update.Colonia != nil {
		domicilio.Colonia = *update.Colonia
	}
	if update.Municipio != nil {
		domicilio.Municipio = *update.Municipio
	}
	if update.Estado != nil {
		domicilio.Estado = *update.Estado
	}
	if update.TipoDireccion != nil {
		domicilio.TipoDireccion = *update.TipoDireccion
	}

	if err := s.domicilioRepo.Update(domicilio); err != nil {
		logger.Error("Failed to update domicilio", err, map[string]interface{}{
			"domicilio_id": id,
		})
		return nil, err
	}

	logger.Info("Domicilio updated successfully", map[string]interface{}{
		"domicilio_id": id,
	})
	return domicilio, nil
}

func (s *domicilioService) DeleteDomicilio(id uint) error {
	logger.Info("Deleting domicilio", map[string]interface{}{
		"domicilio_id": id,
	})

	if _, err := s.GetDomicilio(id); err != nil {
		return err
	}

	if err := s.domicilioRepo.Delete(id); err != nil {
		logger.Error("Failed to delete domicilio", err, map[string]interface{}{
			"domicilio_id": id,
		})
		return err
	}

	logger.Info("Domicilio deleted successfully", map[string]interface{}{
		"domicilio_id": id,
	})
	return nil
}
