package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repositories use. pgxmock satisfies
// it as well, which is what the repository tests run against.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

var (
	// ErrNotFound is returned by updates and deletes that matched no row.
	ErrNotFound = errors.New("row not found")

	// Duplicate errors reported by the client pre-check, in check order.
	ErrDuplicateCPF      = errors.New("cpf already registered")
	ErrDuplicateTelefone = errors.New("telefone already registered")
	ErrDuplicateEmail    = errors.New("email already registered")
)
