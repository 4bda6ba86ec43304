package service

import (
	"errors"

	"github.com/lvargas/catalogos-backend/internal/app/model"
	"github.com/lvargas/catalogos-backend/internal/app/repository"
	"github.com/lvargas/catalogos-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrClienteNotFound = errors.New("cliente not found")

// ClienteUpdate carries the fields of a partial update. Nil fields are
// left untouched on the stored record.
type ClienteUpdate struct {
	RazonSocial       *string
	NombreComercial   *string
	RFC               *string
	CorreoElectronico *string
	Telefono          *string
}

type ClienteService interface {
	CreateCliente(cliente *model.Cliente) error
	ListClientes(offset, limit int) ([]model.Cliente, error)
	GetCliente(id uint) (*model.Cliente, error)
	UpdateCliente(id uint, update ClienteUpdate) (*model.Cliente, error)
	DeleteCliente(id uint) error
}

type clienteService struct {
	clienteRepo repository.ClienteRepository
}

func NewClienteService(clienteRepo repository.ClienteRepository) ClienteService {
	return &clienteService{clienteRepo: clienteRepo}
}

func (s *clienteService) CreateCliente(cliente *model.Cliente) error {
	logger.Info("Creating cliente", map[string]interface{}{
		"razon_social": cliente.RazonSocial,
		"rfc":          cliente.RFC,
	})

	if err := s.clienteRepo.Create(cliente); err != nil {
		logger.Error("Failed to create cliente", err, map[string]interface{}{
			"rfc": cliente.RFC,
		})
		return err
	}

	logger.Info("Cliente created successfully", map[string]interface{}{
		"cliente_id": cliente.ID,
	})
	return nil
}

func (s *clienteService) ListClientes(offset, limit int) ([]model.Cliente, error) {
	return s.clienteRepo.FindAll(offset, limit)
}

func (s *clienteService) GetCliente(id uint) (*model.Cliente, error) {
	cliente, err := s.clienteRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Cliente not found", map[string]interface{}{
				"cliente_id": id,
			})
			return nil, ErrClienteNotFound
		}
		logger.Error("Failed to fetch cliente", err, map[string]interface{}{
			"cliente_id": id,
		})
		return nil, err
	}
	return cliente, nil
}

func (s *clienteService) UpdateCliente(id uint, update ClienteUpdate) (*model.Cliente, error) {
	logger.Info("Updating cliente", map[string]interface{}{
		"cliente_id": id,
	})

	cliente, err := s.GetCliente(id)
	if err != nil {
		return nil, err
	}

	if update.RazonSocial != nil {
		cliente.RazonSocial = *update.RazonSocial
	}
	if update.NombreComercial != nil {
		cliente.NombreComercial = *update.NombreComercial
	}
	if update.RFC != nil {
		cliente.RFC = *update.RFC
	}
	if update.CorreoElectronico != nil {
		cliente.CorreoElectronico = *update.CorreoElectronico
	}
	if update.Telefono != nil {
		cliente.Telefono = *update.Telefono
	}

	if err := s.clienteRepo.Update(cliente); err != nil {
		logger.Error("Failed to update cliente", err, map[string]interface{}{
			"cliente_id": id,
		})
		return nil, err
	}

	logger.Info("Cliente updated successfully", map[string]interface{}{
		"cliente_id": id,
	})
	return cliente, nil
}

func (s *clienteService) DeleteCliente(id uint) error {
	logger.Info("Deleting cliente", map[string]interface{}{
		"cliente_id": id,
	})

	if _, err := s.GetCliente(id); err != nil {
		return err
	}

	if err := s.clienteRepo.Delete(id); err != nil {
		logger.Error("Failed to delete cliente", err, map[string]interface{}{
			"cliente_id": id,
		})
		return err
	}

	logger.Info("Cliente deleted successfully", map[string]interface{}{
		"cliente_id": id,
	})
	return nil
}
