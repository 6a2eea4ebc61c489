package repository

import (
	"context"
	"testing"
	"time"

	"oficina_api/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderRepository_Create(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock, logrus.New())

	abertura := time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)
	o := &model.OrdemServico{
		VeiculoID:        3,
		DataAbertura:     abertura,
		DescricaoServico: "Troca de óleo",
		Status:           "Aberto",
		ValorEstimado:    150,
	}

	mock.ExpectQuery(`INSERT INTO ordens_servico`).
		WithArgs(o.VeiculoID, o.DataAbertura, o.DescricaoServico, o.Status, o.ValorEstimado, o.DataFechamento).
		WillReturnRows(pgxmock.NewRows([]string{"id_servico"}).AddRow(11))

	err := repo.Create(context.Background(), o)
	require.NoError(t, err)
	assert.Equal(t, 11, o.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByID_NotFoundIsNil(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock, logrus.New())

	mock.ExpectQuery(`SELECT .+ FROM ordens_servico WHERE id_servico = \$1`).
		WithArgs(42).
		WillReturnError(pgx.ErrNoRows)

	o, err := repo.FindByID(context.Background(), 42)
	require.NoError(t, err)
	assert.Nil(t, o)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_Update_NotFound(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock, logrus.New())

	o := &model.OrdemServico{
		ID:               42,
		DataAbertura:     time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC),
		DescricaoServico: "x",
		Status:           "Aberto",
	}

	mock.ExpectExec(`UPDATE ordens_servico`).
		WithArgs(o.DataAbertura, o.DescricaoServico, o.Status, o.ValorEstimado, o.DataFechamento, o.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err := repo.Update(context.Background(), o)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderRepository_FindByVehicle_EmptyIsEmptySlice(t *testing.T) {
	mock := newMockPool(t)
	repo := NewOrderRepository(mock, logrus.New())

	mock.ExpectQuery(`SELECT .+ FROM ordens_servico WHERE veiculo_id = \$1`).
		WithArgs(3).
		WillReturnRows(pgxmock.NewRows([]string{"id_servico", "veiculo_id", "data_abertura", "descricao_servico", "status", "valor_estimado", "data_fechamento"}))

	ordens, err := repo.FindByVehicle(context.Background(), 3)
	require.NoError(t, err)
	assert.NotNil(t, ordens)
	assert.Empty(t, ordens)
	assert.NoError(t, mock.ExpectationsWereMet())
}
