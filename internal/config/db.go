package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

// DBConfig holds database connection parameters
type DBConfig struct {
	DSN string
}

// LoadDBConfig loads database configuration from environment variables
func LoadDBConfig() (*DBConfig, error) {
	dbHost := os.Getenv("DB_HOST")
	dbPort := os.Getenv("DB_PORT")
	dbUser := os.Getenv("DB_USER")
	dbPassword := os.Getenv("DB_PASSWORD")
	dbName := os.Getenv("DB_NAME")

	if dbHost == "" || dbPort == "" || dbUser == "" || dbName == "" {
		return nil, fmt.Errorf("database environment variables not set (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		dbHost, dbPort, dbUser, dbPassword, dbName)

	return &DBConfig{DSN: dsn}, nil
}

// ConnectDB establishes a connection to the PostgreSQL database
func ConnectDB(cfg *DBConfig, log *logrus.Logger) (*pgxpool.Pool, error) {
	var pool *pgxpool.Pool
	var err error

	maxRetries := 5
	retryInterval := 5 * time.Second

	for i := 0; i < maxRetries; i++ {
		pool, err = pgxpool.New(context.Background(), cfg.DSN)
		if err == nil {
			err = pool.Ping(context.Background())
			if err == nil {
				log.Info("Successfully connected to PostgreSQL")
				return pool, nil
			}
		}
		log.Warnf("Failed to connect to database (attempt %d/%d): %v. Retrying in %v...", i+1, maxRetries, err, retryInterval)
		time.Sleep(retryInterval)
	}
	return nil, fmt.Errorf("unable to connect to database after %d attempts: %w", maxRetries, err)
}

// AutoMigrate creates the workshop tables if they don't exist. Safe to run
// against an existing database.
//
// Order timestamps are TIMESTAMP WITHOUT TIME ZONE on purpose: the service
// stores naive local times in America/Sao_Paulo.
func AutoMigrate(db *pgxpool.Pool, log *logrus.Logger) error {
	sql := `
	CREATE TABLE IF NOT EXISTS usuarios (
		id SERIAL PRIMARY KEY,
		nome TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		cpf VARCHAR(11) NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		papel TEXT NOT NULL DEFAULT 'user'
	);

	CREATE TABLE IF NOT EXISTS clientes (
		id_cliente SERIAL PRIMARY KEY,
		nome VARCHAR(100) NOT NULL,
		cpf VARCHAR(11) NOT NULL UNIQUE,
		telefone VARCHAR(20) NOT NULL UNIQUE,
		endereco VARCHAR(200) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		ativo BOOLEAN NOT NULL DEFAULT TRUE,
		motivo_inativo TEXT
	);

	CREATE TABLE IF NOT EXISTS veiculos (
		id_veiculo SERIAL PRIMARY KEY,
		cliente_id INT NOT NULL REFERENCES clientes(id_cliente) ON DELETE CASCADE,
		marca VARCHAR(50) NOT NULL,
		modelo VARCHAR(50) NOT NULL,
		placa VARCHAR(10) NOT NULL UNIQUE,
		ano_fabricacao INT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS ordens_servico (
		id_servico SERIAL PRIMARY KEY,
		veiculo_id INT NOT NULL REFERENCES veiculos(id_veiculo) ON DELETE CASCADE,
		data_abertura TIMESTAMP NOT NULL,
		descricao_servico VARCHAR(200) NOT NULL,
		status VARCHAR(50) NOT NULL,
		valor_estimado DOUBLE PRECISION NOT NULL,
		data_fechamento TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_veiculos_cliente_id ON veiculos(cliente_id);
	CREATE INDEX IF NOT EXISTS idx_ordens_servico_veiculo_id ON ordens_servico(veiculo_id);
	`
	_, err := db.Exec(context.Background(), sql)
	if err != nil {
		return fmt.Errorf("unable to apply migrations: %w", err)
	}

	log.Info("AutoMigrate applied successfully")
	return nil
}
