package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"oficina_api/internal/model"
	"oficina_api/internal/repository"
)

var (
	ErrOrderNotFound = errors.New("service order not found")
	ErrInvalidDate   = errors.New("invalid data_abertura")
)

// Timezone the shop operates in. All order timestamps are wall-clock times
// in this zone, stored without offset.
const shopTimezone = "America/Sao_Paulo"

// OrderService provides service-order operations and owns the closing-
// timestamp rule.
type OrderService interface {
	Create(ctx context.Context, req model.CreateOrdemRequest) (*model.OrdemServico, error)
	List(ctx context.Context) ([]model.OrdemServico, error)
	Update(ctx context.Context, id int, req model.UpdateOrdemRequest) (*model.OrdemServico, error)
	Delete(ctx context.Context, id int) error
	ByVehicle(ctx context.Context, veiculoID int) ([]model.OrdemServico, error)
	ByClient(ctx context.Context, clienteID int) ([]model.OrdemServico, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	loc       *time.Location
	now       func() time.Time
}

// NewOrderService creates a new OrderService. It fails only when the shop
// timezone is missing from the host's zone database.
func NewOrderService(orderRepo repository.OrderRepository) (OrderService, error) {
	loc, err := time.LoadLocation(shopTimezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", shopTimezone, err)
	}
	return &orderService{orderRepo: orderRepo, loc: loc, now: time.Now}, nil
}

// naive strips the offset from t, keeping its wall-clock reading. The
// column is TIMESTAMP WITHOUT TIME ZONE and must receive the São Paulo
// reading unshifted.
func naive(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

func (s *orderService) nowNaive() time.Time {
	return naive(s.now().In(s.loc))
}

// parseAbertura accepts a full RFC3339 timestamp (its offset is converted
// into the shop timezone), a bare timestamp (interpreted as shop local
// time), or a date-only string (local midnight).
func (s *orderService) parseAbertura(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return naive(t.In(s.loc)), nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, s.loc); err == nil {
		return naive(t), nil
	}
	if t, err := time.ParseInLocation("2006-01-02", raw, s.loc); err == nil {
		return naive(t), nil
	}
	return time.Time{}, ErrInvalidDate
}

// deriveClosing applies the closing-timestamp rule: a terminal status
// stamps data_fechamento once and keeps it on re-saves; any other status
// clears it, reopening the order.
func (s *orderService) deriveClosing(status string, current *time.Time) *time.Time {
	if !model.ParseStatus(status).Terminal() {
		return nil
	}
	if current != nil {
		return current
	}
	stamp := s.nowNaive()
	return &stamp
}

// Create opens a service order stamped with the current shop-local time and
// applies the closing rule to the initial status.
func (s *orderService) Create(ctx context.Context, req model.CreateOrdemRequest) (*model.OrdemServico, error) {
	ordem := &model.OrdemServico{
		VeiculoID:        req.VeiculoID,
		DataAbertura:     s.nowNaive(),
		DescricaoServico: req.DescricaoServico,
		Status:           req.Status,
		ValorEstimado:    *req.ValorEstimado,
	}
	ordem.DataFechamento = s.deriveClosing(ordem.Status, nil)

	if err := s.orderRepo.Create(ctx, ordem); err != nil {
		return nil, fmt.Errorf("failed to create service order: %w", err)
	}
	return ordem, nil
}

// List returns every service order.
func (s *orderService) List(ctx context.Context) ([]model.OrdemServico, error) {
	ordens, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list service orders: %w", err)
	}
	return ordens, nil
}

// Update edits a service order and re-applies the closing rule against the
// possibly-changed status.
func (s *orderService) Update(ctx context.Context, id int, req model.UpdateOrdemRequest) (*model.OrdemServico, error) {
	ordem, err := s.orderRepo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find service order for update: %w", err)
	}
	if ordem == nil {
		return nil, ErrOrderNotFound
	}

	if req.DataAbertura != "" {
		abertura, err := s.parseAbertura(req.DataAbertura)
		if err != nil {
			return nil, err
		}
		ordem.DataAbertura = abertura
	}

	ordem.DescricaoServico = req.DescricaoServico
	ordem.Status = req.Status
	ordem.ValorEstimado = *req.ValorEstimado
	ordem.DataFechamento = s.deriveClosing(ordem.Status, ordem.DataFechamento)

	if err := s.orderRepo.Update(ctx, ordem); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to update service order: %w", err)
	}
	return ordem, nil
}

// Delete removes a service order.
func (s *orderService) Delete(ctx context.Context, id int) error {
	if err := s.orderRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrderNotFound
		}
		return fmt.Errorf("failed to delete service order: %w", err)
	}
	return nil
}

// ByVehicle lists the orders of one vehicle.
func (s *orderService) ByVehicle(ctx context.Context, veiculoID int) ([]model.OrdemServico, error) {
	ordens, err := s.orderRepo.FindByVehicle(ctx, veiculoID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders by vehicle: %w", err)
	}
	return ordens, nil
}

// ByClient lists the orders across every vehicle of a client.
func (s *orderService) ByClient(ctx context.Context, clienteID int) ([]model.OrdemServico, error) {
	ordens, err := s.orderRepo.FindByClient(ctx, clienteID)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders by client: %w", err)
	}
	return ordens, nil
}
