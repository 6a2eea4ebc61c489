package service

import (
	"context"
	"testing"

	"oficina_api/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleService_FirstByClientCPF(t *testing.T) {
	clientRepo := newFakeClientRepo()
	vehicleRepo := newFakeVehicleRepo()
	cliente := seedCliente(clientRepo)
	svc := NewVehicleService(vehicleRepo, clientRepo)
	ctx := context.Background()

	// Unknown cpf and vehicle-less client are different not-found cases.
	_, err := svc.FirstByClientCPF(ctx, "00000000000")
	assert.ErrorIs(t, err, ErrClientNotFound)

	_, err = svc.FirstByClientCPF(ctx, cliente.CPF)
	assert.ErrorIs(t, err, ErrVehicleNotFound)

	first := &model.Veiculo{ClienteID: cliente.ID, Marca: "Fiat", Modelo: "Uno", Placa: "ABC1D23", AnoFabricacao: 2012}
	require.NoError(t, vehicleRepo.Create(ctx, first))
	require.NoError(t, vehicleRepo.Create(ctx, &model.Veiculo{
		ClienteID: cliente.ID, Marca: "VW", Modelo: "Gol", Placa: "XYZ9Z99", AnoFabricacao: 2018,
	}))

	got, err := svc.FirstByClientCPF(ctx, cliente.CPF)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)
}

func TestVehicleService_UpdateAndDelete_NotFound(t *testing.T) {
	svc := NewVehicleService(newFakeVehicleRepo(), newFakeClientRepo())
	ctx := context.Background()

	err := svc.Update(ctx, 42, model.UpdateVeiculoRequest{Marca: "Fiat", Modelo: "Uno", Placa: "ABC1D23", AnoFabricacao: 2012})
	assert.ErrorIs(t, err, ErrVehicleNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 42), ErrVehicleNotFound)
}
