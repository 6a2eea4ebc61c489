package service

import (
	"context"
	"testing"
	"time"

	"oficina_api/internal/model"
	"oficina_api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClientRepo struct {
	clients   map[int]*model.Cliente
	nextID    int
	createErr error

	lastVisibilityAtivo  bool
	lastVisibilityMotivo *string
}

func newFakeClientRepo() *fakeClientRepo {
	return &fakeClientRepo{clients: map[int]*model.Cliente{}}
}

func (f *fakeClientRepo) Create(_ context.Context, c *model.Cliente) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	c.ID = f.nextID
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeClientRepo) FindByID(_ context.Context, id int) (*model.Cliente, error) {
	c, ok := f.clients[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (f *fakeClientRepo) FindByCPF(_ context.Context, cpf string) (*model.Cliente, error) {
	for _, c := range f.clients {
		if c.CPF == cpf {
			cp := *c
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeClientRepo) FindAll(_ context.Context) ([]model.Cliente, error) {
	clientes := []model.Cliente{}
	for _, c := range f.clients {
		clientes = append(clientes, *c)
	}
	return clientes, nil
}

func (f *fakeClientRepo) Update(_ context.Context, c *model.Cliente) error {
	if _, ok := f.clients[c.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *c
	f.clients[c.ID] = &cp
	return nil
}

func (f *fakeClientRepo) SetVisibility(_ context.Context, id int, ativo bool, motivo *string) error {
	c, ok := f.clients[id]
	if !ok {
		return repository.ErrNotFound
	}
	f.lastVisibilityAtivo = ativo
	f.lastVisibilityMotivo = motivo
	c.Ativo = ativo
	c.MotivoInativo = motivo
	return nil
}

func (f *fakeClientRepo) ToggleAtivo(_ context.Context, id int) (bool, error) {
	c, ok := f.clients[id]
	if !ok {
		return false, repository.ErrNotFound
	}
	c.Ativo = !c.Ativo
	return c.Ativo, nil
}

func (f *fakeClientRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.clients[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.clients, id)
	return nil
}

type fakeVehicleRepo struct {
	vehicles map[int]*model.Veiculo
	nextID   int
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: map[int]*model.Veiculo{}}
}

func (f *fakeVehicleRepo) Create(_ context.Context, v *model.Veiculo) error {
	f.nextID++
	v.ID = f.nextID
	cp := *v
	f.vehicles[v.ID] = &cp
	return nil
}

func (f *fakeVehicleRepo) FindByID(_ context.Context, id int) (*model.Veiculo, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := *v
	return &cp, nil
}

func (f *fakeVehicleRepo) FindAll(_ context.Context) ([]model.Veiculo, error) {
	veiculos := []model.Veiculo{}
	for _, v := range f.vehicles {
		veiculos = append(veiculos, *v)
	}
	return veiculos, nil
}

func (f *fakeVehicleRepo) FirstByClient(_ context.Context, clienteID int) (*model.Veiculo, error) {
	var first *model.Veiculo
	for _, v := range f.vehicles {
		if v.ClienteID == clienteID && (first == nil || v.ID < first.ID) {
			first = v
		}
	}
	if first == nil {
		return nil, nil
	}
	cp := *first
	return &cp, nil
}

func (f *fakeVehicleRepo) Update(_ context.Context, v *model.Veiculo) error {
	if _, ok := f.vehicles[v.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *v
	f.vehicles[v.ID] = &cp
	return nil
}

func (f *fakeVehicleRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.vehicles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.vehicles, id)
	return nil
}

func seedCliente(repo *fakeClientRepo) *model.Cliente {
	c := &model.Cliente{
		Nome:     "Maria",
		CPF:      "12345678901",
		Telefone: "11999990000",
		Endereco: "Rua A, 10",
		Email:    "maria@cliente.com",
		Ativo:    true,
	}
	_ = repo.Create(context.Background(), c)
	return c
}

func TestClientService_Create_MapsDuplicateErrors(t *testing.T) {
	req := model.CreateClienteRequest{
		Nome: "Maria", CPF: "12345678901", Telefone: "11999990000",
		Endereco: "Rua A, 10", Email: "maria@cliente.com",
	}

	cases := []struct {
		repoErr error
		want    error
	}{
		{repository.ErrDuplicateCPF, ErrCPFTaken},
		{repository.ErrDuplicateTelefone, ErrTelefoneTaken},
		{repository.ErrDuplicateEmail, ErrEmailTaken},
	}
	for _, tc := range cases {
		repo := newFakeClientRepo()
		repo.createErr = tc.repoErr
		svc := NewClientService(repo, newFakeVehicleRepo(), newFakeOrderRepo())

		_, err := svc.Create(context.Background(), req)
		assert.ErrorIs(t, err, tc.want)
		assert.Empty(t, repo.clients, "no row may be inserted on a conflict")
	}
}

func TestClientService_HideRecordsMotivo(t *testing.T) {
	repo := newFakeClientRepo()
	cliente := seedCliente(repo)
	svc := NewClientService(repo, newFakeVehicleRepo(), newFakeOrderRepo())

	err := svc.Hide(context.Background(), cliente.ID, "inadimplente")
	require.NoError(t, err)

	assert.False(t, repo.lastVisibilityAtivo)
	require.NotNil(t, repo.lastVisibilityMotivo)
	assert.Equal(t, "inadimplente", *repo.lastVisibilityMotivo)
}

func TestClientService_ReactivateClearsMotivo(t *testing.T) {
	repo := newFakeClientRepo()
	cliente := seedCliente(repo)
	svc := NewClientService(repo, newFakeVehicleRepo(), newFakeOrderRepo())

	require.NoError(t, svc.Hide(context.Background(), cliente.ID, "inadimplente"))
	require.NoError(t, svc.Reactivate(context.Background(), cliente.ID))

	assert.True(t, repo.lastVisibilityAtivo)
	assert.Nil(t, repo.lastVisibilityMotivo)
}

func TestClientService_ToggleStatusLeavesMotivoAlone(t *testing.T) {
	repo := newFakeClientRepo()
	cliente := seedCliente(repo)
	motivo := "cadastro duplicado"
	repo.clients[cliente.ID].Ativo = false
	repo.clients[cliente.ID].MotivoInativo = &motivo
	svc := NewClientService(repo, newFakeVehicleRepo(), newFakeOrderRepo())

	ativo, err := svc.ToggleStatus(context.Background(), cliente.ID)
	require.NoError(t, err)
	assert.True(t, ativo)
	// The toggle flips the flag only; the reason stays.
	require.NotNil(t, repo.clients[cliente.ID].MotivoInativo)
	assert.Equal(t, motivo, *repo.clients[cliente.ID].MotivoInativo)
}

func TestClientService_Update_KeepsEmailWhenAbsent(t *testing.T) {
	repo := newFakeClientRepo()
	cliente := seedCliente(repo)
	svc := NewClientService(repo, newFakeVehicleRepo(), newFakeOrderRepo())

	err := svc.Update(context.Background(), cliente.ID, model.UpdateClienteRequest{
		Nome: "Maria Silva", CPF: cliente.CPF, Telefone: cliente.Telefone, Endereco: "Rua B, 20",
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria Silva", repo.clients[cliente.ID].Nome)
	assert.Equal(t, "maria@cliente.com", repo.clients[cliente.ID].Email)
}

func TestClientService_NotFoundPaths(t *testing.T) {
	repo := newFakeClientRepo()
	svc := NewClientService(repo, newFakeVehicleRepo(), newFakeOrderRepo())
	ctx := context.Background()

	assert.ErrorIs(t, svc.Hide(ctx, 99, "x"), ErrClientNotFound)
	assert.ErrorIs(t, svc.Reactivate(ctx, 99), ErrClientNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, 99), ErrClientNotFound)
	_, err := svc.ToggleStatus(ctx, 99)
	assert.ErrorIs(t, err, ErrClientNotFound)
	_, err = svc.DadosByCPF(ctx, "00000000000")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestClientService_DadosByCPF_CompositeView(t *testing.T) {
	clientRepo := newFakeClientRepo()
	vehicleRepo := newFakeVehicleRepo()
	orderRepo := newFakeOrderRepo()
	cliente := seedCliente(clientRepo)
	svc := NewClientService(clientRepo, vehicleRepo, orderRepo)
	ctx := context.Background()

	// No vehicle yet: empty parts, no error.
	dados, err := svc.DadosByCPF(ctx, cliente.CPF)
	require.NoError(t, err)
	assert.Equal(t, "Maria", dados.Nome)
	assert.Empty(t, dados.Veiculo.Marca)
	assert.Empty(t, dados.OrdemServico.Status)

	veiculo := &model.Veiculo{ClienteID: cliente.ID, Marca: "Fiat", Modelo: "Uno", Placa: "ABC1D23", AnoFabricacao: 2012}
	require.NoError(t, vehicleRepo.Create(ctx, veiculo))
	fechamento := time.Date(2024, 5, 21, 9, 15, 0, 0, time.UTC)
	require.NoError(t, orderRepo.Create(ctx, &model.OrdemServico{
		VeiculoID:      veiculo.ID,
		DataAbertura:   time.Date(2024, 5, 20, 14, 30, 0, 0, time.UTC),
		Status:         "Finalizado",
		DataFechamento: &fechamento,
	}))

	dados, err = svc.DadosByCPF(ctx, cliente.CPF)
	require.NoError(t, err)
	assert.Equal(t, "Fiat", dados.Veiculo.Marca)
	assert.Equal(t, "Finalizado", dados.OrdemServico.Status)
	// This route reports ISO 8601, not the dd-mm-yyyy list format.
	assert.Equal(t, "2024-05-20T14:30:00", dados.OrdemServico.DataAbertura)
	assert.Equal(t, "2024-05-21T09:15:00", dados.OrdemServico.DataFechamento)
}
