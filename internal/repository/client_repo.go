package repository

import (
	"context"
	"errors"
	"fmt"

	"oficina_api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// ClientRepository defines operations for client data
type ClientRepository interface {
	Create(ctx context.Context, cliente *model.Cliente) error
	FindByID(ctx context.Context, id int) (*model.Cliente, error)
	FindByCPF(ctx context.Context, cpf string) (*model.Cliente, error)
	FindAll(ctx context.Context) ([]model.Cliente, error)
	Update(ctx context.Context, cliente *model.Cliente) error
	SetVisibility(ctx context.Context, id int, ativo bool, motivo *string) error
	ToggleAtivo(ctx context.Context, id int) (bool, error)
	Delete(ctx context.Context, id int) error
}

type clientRepository struct {
	db  DB
	log *logrus.Entry
}

// NewClientRepository creates a new ClientRepository
func NewClientRepository(db DB, log *logrus.Logger) ClientRepository {
	return &clientRepository{db: db, log: log.WithField("component", "client_repo")}
}

const clientColumns = `id_cliente, nome, cpf, telefone, endereco, email, ativo, motivo_inativo`

// Create inserts a new client after checking cpf, telefone and email for
// duplicates, in that order; the first hit wins. The checks and the insert
// run on one transaction so they see a consistent snapshot, and the unique
// constraints in the schema back them up against concurrent writers.
func (r *clientRepository) Create(ctx context.Context, c *model.Cliente) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) // no-op once committed

	checks := []struct {
		sql   string
		value string
		err   error
	}{
		{`SELECT EXISTS(SELECT 1 FROM clientes WHERE cpf = $1)`, c.CPF, ErrDuplicateCPF},
		{`SELECT EXISTS(SELECT 1 FROM clientes WHERE telefone = $1)`, c.Telefone, ErrDuplicateTelefone},
		{`SELECT EXISTS(SELECT 1 FROM clientes WHERE email = $1)`, c.Email, ErrDuplicateEmail},
	}
	for _, check := range checks {
		var exists bool
		if err := tx.QueryRow(ctx, check.sql, check.value).Scan(&exists); err != nil {
			return fmt.Errorf("failed to run duplicate pre-check: %w", err)
		}
		if exists {
			return check.err
		}
	}

	sql := `INSERT INTO clientes (nome, cpf, telefone, endereco, email, ativo)
            VALUES ($1, $2, $3, $4, $5, TRUE) RETURNING id_cliente, ativo`
	if err := tx.QueryRow(ctx, sql, c.Nome, c.CPF, c.Telefone, c.Endereco, c.Email).Scan(&c.ID, &c.Ativo); err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit client creation: %w", err)
	}
	return nil
}

// FindByID retrieves a client by id; nil, nil when absent.
func (r *clientRepository) FindByID(ctx context.Context, id int) (*model.Cliente, error) {
	return r.findOne(ctx, `SELECT `+clientColumns+` FROM clientes WHERE id_cliente = $1`, id)
}

// FindByCPF retrieves a client by cpf; nil, nil when absent.
func (r *clientRepository) FindByCPF(ctx context.Context, cpf string) (*model.Cliente, error) {
	return r.findOne(ctx, `SELECT `+clientColumns+` FROM clientes WHERE cpf = $1`, cpf)
}

func (r *clientRepository) findOne(ctx context.Context, sql string, arg any) (*model.Cliente, error) {
	c := &model.Cliente{}
	err := r.db.QueryRow(ctx, sql, arg).Scan(&c.ID, &c.Nome, &c.CPF, &c.Telefone, &c.Endereco, &c.Email, &c.Ativo, &c.MotivoInativo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return c, nil
}

// FindAll lists every client. An empty table yields an empty slice.
func (r *clientRepository) FindAll(ctx context.Context) ([]model.Cliente, error) {
	rows, err := r.db.Query(ctx, `SELECT `+clientColumns+` FROM clientes ORDER BY id_cliente`)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	clientes := []model.Cliente{}
	for rows.Next() {
		var c model.Cliente
		if err := rows.Scan(&c.ID, &c.Nome, &c.CPF, &c.Telefone, &c.Endereco, &c.Email, &c.Ativo, &c.MotivoInativo); err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		clientes = append(clientes, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return clientes, nil
}

// Update overwrites the addressed fields of an existing client.
func (r *clientRepository) Update(ctx context.Context, c *model.Cliente) error {
	sql := `UPDATE clientes
            SET nome = $1, cpf = $2, telefone = $3, endereco = $4, email = $5
            WHERE id_cliente = $6`
	cmdTag, err := r.db.Exec(ctx, sql, c.Nome, c.CPF, c.Telefone, c.Endereco, c.Email, c.ID)
	if err != nil {
		return fmt.Errorf("failed to update client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetVisibility hides or reactivates a client. Hiding records the reason;
// reactivation is called with a nil motivo, which clears it.
func (r *clientRepository) SetVisibility(ctx context.Context, id int, ativo bool, motivo *string) error {
	sql := `UPDATE clientes SET ativo = $1, motivo_inativo = $2 WHERE id_cliente = $3`
	cmdTag, err := r.db.Exec(ctx, sql, ativo, motivo, id)
	if err != nil {
		return fmt.Errorf("failed to set client visibility: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ToggleAtivo flips the active flag and returns the new value. The reason
// field is deliberately left untouched; SetVisibility owns it.
func (r *clientRepository) ToggleAtivo(ctx context.Context, id int) (bool, error) {
	var ativo bool
	sql := `UPDATE clientes SET ativo = NOT ativo WHERE id_cliente = $1 RETURNING ativo`
	err := r.db.QueryRow(ctx, sql, id).Scan(&ativo)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, ErrNotFound
		}
		return false, fmt.Errorf("failed to toggle client status: %w", err)
	}
	return ativo, nil
}

// Delete removes a client; vehicles and their orders go with it via the
// schema's ON DELETE CASCADE.
func (r *clientRepository) Delete(ctx context.Context, id int) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM clientes WHERE id_cliente = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete client: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
