package repository

import (
	"context"
	"errors"
	"fmt"

	"oficina_api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"
)

// UserRepository defines operations for staff account data
type UserRepository interface {
	Create(ctx context.Context, user *model.Usuario) error
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByID(ctx context.Context, id int) (*model.Usuario, error)
	FindAll(ctx context.Context) ([]model.Usuario, error)
}

type userRepository struct {
	db  DB
	log *logrus.Entry
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db DB, log *logrus.Logger) UserRepository {
	return &userRepository{db: db, log: log.WithField("component", "user_repo")}
}

// Create inserts a new user. Duplicate email/cpf surfaces as the storage
// constraint error, not a domain error.
func (r *userRepository) Create(ctx context.Context, user *model.Usuario) error {
	sql := `INSERT INTO usuarios (nome, email, cpf, password_hash, papel)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, user.Nome, user.Email, user.CPF, user.PasswordHash, user.Papel).Scan(&user.ID)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByEmail retrieves a user by email. Not found is nil, nil; the service
// layer decides what that means.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	user := &model.Usuario{}
	sql := `SELECT id, nome, email, cpf, password_hash, papel FROM usuarios WHERE email = $1`
	err := r.db.QueryRow(ctx, sql, email).Scan(&user.ID, &user.Nome, &user.Email, &user.CPF, &user.PasswordHash, &user.Papel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return user, nil
}

// FindByID retrieves a user by their ID
func (r *userRepository) FindByID(ctx context.Context, id int) (*model.Usuario, error) {
	user := &model.Usuario{}
	sql := `SELECT id, nome, email, cpf, password_hash, papel FROM usuarios WHERE id = $1`
	err := r.db.QueryRow(ctx, sql, id).Scan(&user.ID, &user.Nome, &user.Email, &user.CPF, &user.PasswordHash, &user.Papel)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return user, nil
}

// FindAll lists every user. An empty table yields an empty slice.
func (r *userRepository) FindAll(ctx context.Context) ([]model.Usuario, error) {
	sql := `SELECT id, nome, email, cpf, password_hash, papel FROM usuarios ORDER BY id`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := []model.Usuario{}
	for rows.Next() {
		var u model.Usuario
		if err := rows.Scan(&u.ID, &u.Nome, &u.Email, &u.CPF, &u.PasswordHash, &u.Papel); err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating user rows: %w", err)
	}
	return users, nil
}
