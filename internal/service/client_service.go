package service

import (
	"context"
	"errors"
	"fmt"

	"oficina_api/internal/model"
	"oficina_api/internal/repository"
)

var (
	ErrClientNotFound = errors.New("client not found")
	ErrCPFTaken       = errors.New("cpf already registered")
	ErrTelefoneTaken  = errors.New("telefone already registered")
	ErrEmailTaken     = errors.New("email already registered")
)

// isoTimeLayout is the timestamp format of the composite view; the stored
// times are naive so no offset is emitted.
const isoTimeLayout = "2006-01-02T15:04:05"

// ClientService provides client-facing operations, including the composite
// client/vehicle/order view.
type ClientService interface {
	Create(ctx context.Context, req model.CreateClienteRequest) (*model.Cliente, error)
	List(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, id int, req model.UpdateClienteRequest) error
	Hide(ctx context.Context, id int, motivo string) error
	Reactivate(ctx context.Context, id int) error
	ToggleStatus(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) error
	DadosByCPF(ctx context.Context, cpf string) (*model.DadosCliente, error)
}

type clientService struct {
	clientRepo  repository.ClientRepository
	vehicleRepo repository.VehicleRepository
	orderRepo   repository.OrderRepository
}

// NewClientService creates a new ClientService
func NewClientService(clientRepo repository.ClientRepository, vehicleRepo repository.VehicleRepository, orderRepo repository.OrderRepository) ClientService {
	return &clientService{clientRepo: clientRepo, vehicleRepo: vehicleRepo, orderRepo: orderRepo}
}

// Create inserts a new client. The repository reports duplicates in the
// fixed cpf → telefone → email order; only the first conflict surfaces.
func (s *clientService) Create(ctx context.Context, req model.CreateClienteRequest) (*model.Cliente, error) {
	cliente := &model.Cliente{
		Nome:     req.Nome,
		CPF:      req.CPF,
		Telefone: req.Telefone,
		Endereco: req.Endereco,
		Email:    req.Email,
		Ativo:    true,
	}

	err := s.clientRepo.Create(ctx, cliente)
	switch {
	case errors.Is(err, repository.ErrDuplicateCPF):
		return nil, ErrCPFTaken
	case errors.Is(err, repository.ErrDuplicateTelefone):
		return nil, ErrTelefoneTaken
	case errors.Is(err, repository.ErrDuplicateEmail):
		return nil, ErrEmailTaken
	case err != nil:
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return cliente, nil
}

// List returns every client, hidden ones included.
func (s *clientService) List(ctx context.Context) ([]model.Cliente, error) {
	clientes, err := s.clientRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clientes, nil
}

// Update overwrites the addressed fields. An absent email keeps the stored
// value.
func (s *clientService) Update(ctx context.Context, id int, req model.UpdateClienteRequest) error {
	existing, err := s.clientRepo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to find client for update: %w", err)
	}
	if existing == nil {
		return ErrClientNotFound
	}

	existing.Nome = req.Nome
	existing.CPF = req.CPF
	existing.Telefone = req.Telefone
	existing.Endereco = req.Endereco
	if req.Email != nil && *req.Email != "" {
		existing.Email = *req.Email
	}

	if err := s.clientRepo.Update(ctx, existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to update client: %w", err)
	}
	return nil
}

// Hide deactivates a client and records the reason. The handler guarantees
// motivo is non-empty.
func (s *clientService) Hide(ctx context.Context, id int, motivo string) error {
	if err := s.clientRepo.SetVisibility(ctx, id, false, &motivo); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to hide client: %w", err)
	}
	return nil
}

// Reactivate clears the hidden flag and the stored reason unconditionally.
func (s *clientService) Reactivate(ctx context.Context, id int) error {
	if err := s.clientRepo.SetVisibility(ctx, id, true, nil); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to reactivate client: %w", err)
	}
	return nil
}

// ToggleStatus flips the active flag without touching the reason. Kept
// separate from Hide/Reactivate on purpose.
func (s *clientService) ToggleStatus(ctx context.Context, id int) (bool, error) {
	ativo, err := s.clientRepo.ToggleAtivo(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, ErrClientNotFound
		}
		return false, fmt.Errorf("failed to toggle client status: %w", err)
	}
	return ativo, nil
}

// Delete removes a client and, via the storage cascade, its vehicles and
// orders.
func (s *clientService) Delete(ctx context.Context, id int) error {
	if err := s.clientRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrClientNotFound
		}
		return fmt.Errorf("failed to delete client: %w", err)
	}
	return nil
}

// DadosByCPF builds the composite view: the client, their first vehicle and
// that vehicle's first service order. Missing parts come back as empty
// strings, not errors.
func (s *clientService) DadosByCPF(ctx context.Context, cpf string) (*model.DadosCliente, error) {
	cliente, err := s.clientRepo.FindByCPF(ctx, cpf)
	if err != nil {
		return nil, fmt.Errorf("failed to find client by cpf: %w", err)
	}
	if cliente == nil {
		return nil, ErrClientNotFound
	}

	dados := &model.DadosCliente{Nome: cliente.Nome, CPF: cliente.CPF}

	veiculo, err := s.vehicleRepo.FirstByClient(ctx, cliente.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find vehicle for composite view: %w", err)
	}
	if veiculo == nil {
		return dados, nil
	}
	dados.Veiculo = model.DadosVeiculo{Marca: veiculo.Marca, Modelo: veiculo.Modelo}

	ordem, err := s.orderRepo.FirstByVehicle(ctx, veiculo.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to find order for composite view: %w", err)
	}
	// Unlike the list serializer this route reports timestamps in ISO 8601.
	if ordem != nil {
		dados.OrdemServico.Status = ordem.Status
		dados.OrdemServico.DataAbertura = ordem.DataAbertura.Format(isoTimeLayout)
		if ordem.DataFechamento != nil {
			dados.OrdemServico.DataFechamento = ordem.DataFechamento.Format(isoTimeLayout)
		}
	}
	return dados, nil
}
