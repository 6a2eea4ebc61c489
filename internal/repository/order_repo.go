package repository

import (
	"context"
	"errors"
	"fmt"

	"oficina_api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// OrderRepository defines operations for service-order data
type OrderRepository interface {
	Create(ctx context.Context, ordem *model.OrdemServico) error
	FindByID(ctx context.Context, id int) (*model.OrdemServico, error)
	FindAll(ctx context.Context) ([]model.OrdemServico, error)
	FindByVehicle(ctx context.Context, veiculoID int) ([]model.OrdemServico, error)
	FindByClient(ctx context.Context, clienteID int) ([]model.OrdemServico, error)
	FirstByVehicle(ctx context.Context, veiculoID int) (*model.OrdemServico, error)
	Update(ctx context.Context, ordem *model.OrdemServico) error
	Delete(ctx context.Context, id int) error
}

type orderRepository struct {
	db  DB
	log *logrus.Entry
}

// NewOrderRepository creates a new OrderRepository
func NewOrderRepository(db DB, log *logrus.Logger) OrderRepository {
	return &orderRepository{db: db, log: log.WithField("component", "order_repo")}
}

const orderColumns = `id_servico, veiculo_id, data_abertura, descricao_servico, status, valor_estimado, data_fechamento`

// Create inserts a new service order
func (r *orderRepository) Create(ctx context.Context, o *model.OrdemServico) error {
	sql := `INSERT INTO ordens_servico (veiculo_id, data_abertura, descricao_servico, status, valor_estimado, data_fechamento)
            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id_servico`
	err := r.db.QueryRow(ctx, sql, o.VeiculoID, o.DataAbertura, o.DescricaoServico, o.Status, o.ValorEstimado, o.DataFechamento).Scan(&o.ID)
	if err != nil {
		return fmt.Errorf("failed to create service order: %w", err)
	}
	return nil
}

// FindByID retrieves a service order by id; nil, nil when absent.
func (r *orderRepository) FindByID(ctx context.Context, id int) (*model.OrdemServico, error) {
	o := &model.OrdemServico{}
	sql := `SELECT ` + orderColumns + ` FROM ordens_servico WHERE id_servico = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&o.ID, &o.VeiculoID, &o.DataAbertura, &o.DescricaoServico, &o.Status, &o.ValorEstimado, &o.DataFechamento)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find service order by ID: %w", err)
	}
	return o, nil
}

// FindAll lists every service order. An empty table yields an empty slice.
func (r *orderRepository) FindAll(ctx context.Context) ([]model.OrdemServico, error) {
	return r.queryMany(ctx, `SELECT `+orderColumns+` FROM ordens_servico ORDER BY id_servico`)
}

// FindByVehicle lists the orders of one vehicle.
func (r *orderRepository) FindByVehicle(ctx context.Context, veiculoID int) ([]model.OrdemServico, error) {
	return r.queryMany(ctx, `SELECT `+orderColumns+` FROM ordens_servico WHERE veiculo_id = $1 ORDER BY id_servico`, veiculoID)
}

// FindByClient lists the orders of every vehicle owned by the client.
func (r *orderRepository) FindByClient(ctx context.Context, clienteID int) ([]model.OrdemServico, error) {
	sql := `SELECT o.id_servico, o.veiculo_id, o.data_abertura, o.descricao_servico, o.status, o.valor_estimado, o.data_fechamento
            FROM ordens_servico o
            JOIN veiculos v ON o.veiculo_id = v.id_veiculo
            WHERE v.cliente_id = $1
            ORDER BY o.id_servico`
	return r.queryMany(ctx, sql, clienteID)
}

// FirstByVehicle returns the vehicle's oldest order; nil, nil when there is
// none.
func (r *orderRepository) FirstByVehicle(ctx context.Context, veiculoID int) (*model.OrdemServico, error) {
	o := &model.OrdemServico{}
	sql := `SELECT ` + orderColumns + ` FROM ordens_servico WHERE veiculo_id = $1 ORDER BY id_servico LIMIT 1`
	err := r.db.QueryRow(ctx, sql, veiculoID).Scan(&o.ID, &o.VeiculoID, &o.DataAbertura, &o.DescricaoServico, &o.Status, &o.ValorEstimado, &o.DataFechamento)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find first order by vehicle: %w", err)
	}
	return o, nil
}

func (r *orderRepository) queryMany(ctx context.Context, sql string, args ...any) ([]model.OrdemServico, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query service orders: %w", err)
	}
	defer rows.Close()

	ordens := []model.OrdemServico{}
	for rows.Next() {
		var o model.OrdemServico
		if err := rows.Scan(&o.ID, &o.VeiculoID, &o.DataAbertura, &o.DescricaoServico, &o.Status, &o.ValorEstimado, &o.DataFechamento); err != nil {
			return nil, fmt.Errorf("failed to scan service order row: %w", err)
		}
		ordens = append(ordens, o)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating service order rows: %w", err)
	}
	return ordens, nil
}

// Update overwrites an existing service order, including the derived
// closing timestamp.
func (r *orderRepository) Update(ctx context.Context, o *model.OrdemServico) error {
	sql := `UPDATE ordens_servico
            SET data_abertura = $1, descricao_servico = $2, status = $3, valor_estimado = $4, data_fechamento = $5
            WHERE id_servico = $6`
	cmdTag, err := r.db.Exec(ctx, sql, o.DataAbertura, o.DescricaoServico, o.Status, o.ValorEstimado, o.DataFechamento, o.ID)
	if err != nil {
		return fmt.Errorf("failed to update service order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a service order
func (r *orderRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM ordens_servico WHERE id_servico = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete service order: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
