package repository

import (
	"context"
	"errors"
	"fmt"

	"oficina_api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// VehicleRepository defines operations for vehicle data
type VehicleRepository interface {
	Create(ctx context.Context, veiculo *model.Veiculo) error
	FindByID(ctx context.Context, id int) (*model.Veiculo, error)
	FindAll(ctx context.Context) ([]model.Veiculo, error)
	FirstByClient(ctx context.Context, clienteID int) (*model.Veiculo, error)
	Update(ctx context.Context, veiculo *model.Veiculo) error
	Delete(ctx context.Context, id int) error
}

type vehicleRepository struct {
	db  DB
	log *logrus.Entry
}

// NewVehicleRepository creates a new VehicleRepository
func NewVehicleRepository(db DB, log *logrus.Logger) VehicleRepository {
	return &vehicleRepository{db: db, log: log.WithField("component", "vehicle_repo")}
}

const vehicleColumns = `id_veiculo, cliente_id, marca, modelo, placa, ano_fabricacao`

// Create inserts a new vehicle. There is no plate pre-check: a duplicate
// placa hits the unique constraint and comes back as a plain storage error.
func (r *vehicleRepository) Create(ctx context.Context, v *model.Veiculo) error {
	sql := `INSERT INTO veiculos (cliente_id, marca, modelo, placa, ano_fabricacao)
            VALUES ($1, $2, $3, $4, $5) RETURNING id_veiculo`
	err := r.db.QueryRow(ctx, sql, v.ClienteID, v.Marca, v.Modelo, v.Placa, v.AnoFabricacao).Scan(&v.ID)
	if err != nil {
		return fmt.Errorf("failed to create vehicle: %w", err)
	}
	return nil
}

// FindByID retrieves a vehicle by id; nil, nil when absent.
func (r *vehicleRepository) FindByID(ctx context.Context, id int) (*model.Veiculo, error) {
	v := &model.Veiculo{}
	sql := `SELECT ` + vehicleColumns + ` FROM veiculos WHERE id_veiculo = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&v.ID, &v.ClienteID, &v.Marca, &v.Modelo, &v.Placa, &v.AnoFabricacao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vehicle by ID: %w", err)
	}
	return v, nil
}

// FindAll lists every vehicle. An empty table yields an empty slice.
func (r *vehicleRepository) FindAll(ctx context.Context) ([]model.Veiculo, error) {
	rows, err := r.db.Query(ctx, `SELECT `+vehicleColumns+` FROM veiculos ORDER BY id_veiculo`)
	if err != nil {
		return nil, fmt.Errorf("failed to query vehicles: %w", err)
	}
	defer rows.Close()

	veiculos := []model.Veiculo{}
	for rows.Next() {
		var v model.Veiculo
		if err := rows.Scan(&v.ID, &v.ClienteID, &v.Marca, &v.Modelo, &v.Placa, &v.AnoFabricacao); err != nil {
			return nil, fmt.Errorf("failed to scan vehicle row: %w", err)
		}
		veiculos = append(veiculos, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating vehicle rows: %w", err)
	}
	return veiculos, nil
}

// FirstByClient returns the client's oldest vehicle; nil, nil when the
// client has none.
func (r *vehicleRepository) FirstByClient(ctx context.Context, clienteID int) (*model.Veiculo, error) {
	v := &model.Veiculo{}
	sql := `SELECT ` + vehicleColumns + ` FROM veiculos WHERE cliente_id = $1 ORDER BY id_veiculo LIMIT 1`
	err := r.db.QueryRow(ctx, sql, clienteID).Scan(&v.ID, &v.ClienteID, &v.Marca, &v.Modelo, &v.Placa, &v.AnoFabricacao)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find vehicle by client: %w", err)
	}
	return v, nil
}

// Update overwrites an existing vehicle's editable fields.
func (r *vehicleRepository) Update(ctx context.Context, v *model.Veiculo) error {
	sql := `UPDATE veiculos
            SET marca = $1, modelo = $2, placa = $3, ano_fabricacao = $4
            WHERE id_veiculo = $5`
	cmdTag, err := r.db.Exec(ctx, sql, v.Marca, v.Modelo, v.Placa, v.AnoFabricacao, v.ID)
	if err != nil {
		return fmt.Errorf("failed to update vehicle: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a vehicle; its service orders cascade.
func (r *vehicleRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM veiculos WHERE id_veiculo = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
