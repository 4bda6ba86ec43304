package repository

import (
	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/pkg/logger"
	"gorm.io/gorm"
)

type DomicilioRepository interface {
	Create(domicilio *model.Domicilio) error
	FindByClienteID(clienteID uint) ([]model.Domicilio, error)
	FindByID(id uint) (*model.Domicilio, error)
	Update(domicilio *model.Domicilio) error
	Delete(id uint) error
}

type domicilioRepository struct {
	db *gorm.DB
}

func NewDomicilioRepository(db *gorm.DB) DomicilioRepository {
	return &domicilioRepository{db: db}
}

func (r *domicilioRepository) Create(domicilio *model.Domicilio) error {
	logger.Debug("Creating domicilio in database", map[string]interface{}{
		"cliente_id":     domicilio.ClienteID,
		"tipo_direccion": domicilio.TipoDireccion,
	})

	if err := r.db.Create(domicilio).Error; err != nil {
		logger.Error("Failed to create domicilio in database", err, map[string]interface{}{
			"cliente_id": domicilio.ClienteID,
		})
		return err
	}

	logger.Debug("Domicilio created in database", map[string]interface{}{
		"domicilio_id": domicilio.ID,
		"cliente_id":   domicilio.ClienteID,
	})
	return nil
}

func (r *domicilioRepository) FindByClienteID(clienteID uint) ([]model.Domicilio, error) {
	var domicilios []model.Domicilio
	err := r.db.Where("cliente_id = ?", clienteID).Find(&domicilios).Error
	if err != nil {
		logger.Error("Failed to find domicilios by cliente ID", err, map[string]interface{}{
			"cliente_id": clienteID,
		})
		return nil, err
	}

	logger.Debug("Domicilios found by cliente ID", map[string]interface{}{
		"cliente_id": clienteID,
		"count":      len(domicilios),
	})
	return domicilios, nil
}

func (r *domicilioRepository) FindByID(id uint) (*model.Domicilio, error) {
	var domicilio model.Domicilio
	if err := r.db.First(&domicilio, id).Error; err != nil {
		return nil, err
	}
	return &domicilio, nil
}

func (r *domicilioRepository) Update(domicilio *model.Domicilio) error {
	if err := r.db.Save(domicilio).Error; err != nil {
		logger.Error("Failed to update domicilio in database", err, map[string]interface{}{
			"domicilio_id": domicilio.ID,
		})
		return err
	}

	logger.Debug("Domicilio updated in database", map[string]interface{}{
		"domicilio_id": domicilio.ID,
	})
	return nil
}

func (r *domicilioRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Domicilio{}, id).Error; err != nil {
		logger.Error("Failed to delete domicilio from database", err, map[string]interface{}{
			"domicilio_id": id,
		})
		return err
	}

	logger.Debug("Domicilio deleted from database", map[string]interface{}{
		"domicilio_id": id,
	})
	return nil
}
