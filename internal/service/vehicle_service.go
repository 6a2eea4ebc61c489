package service

import (
	"context"
	"errors"
	"fmt"

	"oficina_api/internal/model"
	"oficina_api/internal/repository"
)

var ErrVehicleNotFound = errors.New("vehicle not found")

// VehicleService provides vehicle operations
type VehicleService interface {
	Create(ctx context.Context, req model.CreateVeiculoRequest) (*model.Veiculo, error)
	List(ctx context.Context) ([]model.Veiculo, error)
	Update(ctx context.Context, id int, req model.UpdateVeiculoRequest) error
	Delete(ctx context.Context, id int) error
	FirstByClientCPF(ctx context.Context, cpf string) (*model.Veiculo, error)
}

type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	clientRepo  repository.ClientRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo repository.VehicleRepository, clientRepo repository.ClientRepository) VehicleService {
	return &vehicleService{vehicleRepo: vehicleRepo, clientRepo: clientRepo}
}

// Create inserts a new vehicle. A duplicate plate is not pre-checked here;
// it fails on the storage constraint and is reported as an internal error.
func (s *vehicleService) Create(ctx context.Context, req model.CreateVeiculoRequest) (*model.Veiculo, error) {
	veiculo := &model.Veiculo{
		ClienteID:     req.ClienteID,
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Placa:         req.Placa,
		AnoFabricacao: req.AnoFabricacao,
	}
	if err := s.vehicleRepo.Create(ctx, veiculo); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}
	return veiculo, nil
}

// List returns every vehicle.
func (s *vehicleService) List(ctx context.Context) ([]model.Veiculo, error) {
	veiculos, err := s.vehicleRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	return veiculos, nil
}

// Update overwrites a vehicle's editable fields.
func (s *vehicleService) Update(ctx context.Context, id int, req model.UpdateVeiculoRequest) error {
	veiculo := &model.Veiculo{
		ID:            id,
		Marca:         req.Marca,
		Modelo:        req.Modelo,
		Placa:         req.Placa,
		AnoFabricacao: req.AnoFabricacao,
	}
	if err := s.vehicleRepo.Update(ctx, veiculo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	return nil
}

// Delete removes a vehicle.
func (s *vehicleService) Delete(ctx context.Context, id int) error {
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	return nil
}

// FirstByClientCPF resolves the client by cpf and returns their first
// vehicle. Both a missing client and a vehicle-less client are not-found
// conditions, distinguished by the error.
func (s *vehicleService) FirstByClientCPF(ctx context.Context, cpf string) (*model.Veiculo, error) {
	cliente, err := s.clientRepo.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("failed to find client by cpf: %w", err)
	}
	if cliente == nil {
		return nil, ErrClientNotFound
	}

	veiculo, err := s.vehicleRepo.FirstByClient(ctx, cliente.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find client's vehicle: %w", err)
	}
	if veiculo == nil {
		return nil, ErrVehicleNotFound
	}
	return veiculo, nil
}
