package repository

import (
	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/pkg/logger"
	"gorm.io/gorm"
)

type ClienteRepository interface {
	Create(cliente *model.Cliente) error
	FindAll(offset, limit int) ([]model.Cliente, error)
	FindByID(id uint) (*model.Cliente, error)
	Update(cliente *model.Cliente) error
	Delete(id uint) error
}

type clienteRepository struct {
	db *gorm.DB
}

func NewClienteRepository(db *gorm.DB) ClienteRepository {
	return &clienteRepository{db: db}
}

func (r *clienteRepository) Create(cliente *model.Cliente) error {
	logger.Debug("Creating cliente in database", map[string]interface{}{
		"razon_social": cliente.RazonSocial,
		"rfc":          cliente.RFC,
	})

	if err := r.db.Create(cliente).Error; err != nil {
		logger.Error("Failed to create cliente in database", err, map[string]interface{}{
			"razon_social": cliente.RazonSocial,
			"rfc":          cliente.RFC,
		})
		return err
	}

	logger.Debug("Cliente created in database", map[string]interface{}{
		"cliente_id": cliente.ID,
		"rfc":        cliente.RFC,
	})
	return nil
}

func (r *clienteRepository) FindAll(offset, limit int) ([]model.Cliente, error) {
	var clientes []model.Cliente
	err := r.db.Offset(offset).Limit(limit).Find(&clientes).Error
	if err != nil {
		logger.Error("Failed to list clientes in database", err, map[string]interface{}{
			"offset": offset,
			"limit":  limit,
		})
		return nil, err
	}

	logger.Debug("Clientes listed from database", map[string]interface{}{
		"offset": offset,
		"limit":  limit,
		"count":  len(clientes),
	})
	return clientes, nil
}

func (r *clienteRepository) FindByID(id uint) (*model.Cliente, error) {
	var cliente model.Cliente
	if err := r.db.First(&cliente, id).Error; err != nil {
		return nil, err
	}
	return &cliente, nil
}

func (r *clienteRepository) Update(cliente *model.Cliente) error {
	if err := r.db.Save(cliente).Error; err != nil {
		logger.Error("Failed to update cliente in database", err, map[string]interface{}{
			"cliente_id": cliente.ID,
		})
		return err
	}

	logger.Debug("Cliente updated in database", map[string]interface{}{
		"cliente_id": cliente.ID,
	})
	return nil
}

// Delete removes the cliente and all of its domicilios in one transaction.
func (r *clienteRepository) Delete(id uint) error {
	logger.Debug("Deleting cliente from database", map[string]interface{}{
		"cliente_id": id,
	})

	tx := r.db.Begin()
	if tx.Error != nil {
		logger.Error("Failed to begin transaction for cliente deletion", tx.Error, map[string]interface{}{
			"cliente_id": id,
		})
		return tx.Error
	}

	if err := tx.Where("cliente_id = ?", id).Delete(&model.Domicilio{}).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to delete domicilios for cliente", err, map[string]interface{}{
			"cliente_id": id,
		})
		return err
	}

	if err := tx.Delete(&model.Cliente{}, id).Error; err != nil {
		tx.Rollback()
		logger.Error("Failed to delete cliente from database", err, map[string]interface{}{
			"cliente_id": id,
		})
		return err
	}

	if err := tx.Commit().Error; err != nil {
		logger.Error("Failed to commit cliente deletion", err, map[string]interface{}{
			"cliente_id": id,
		})
		return err
	}

	logger.Debug("Cliente deleted from database", map[string]interface{}{
		"cliente_id": id,
	})
	return nil
}
