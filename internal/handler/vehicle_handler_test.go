package handler

import (
	"context"
	"net/http"
	"testing"

	"oficina_api/internal/model"
	"oficina_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

type stubVehicleService struct {
	updateErr error
	deleteErr error
	firstErr  error
}

func (s *stubVehicleService) Create(context.Context, model.CreateVeiculoRequest) (*model.Veiculo, error) {
	return &model.Veiculo{ID: 1}, nil
}

func (s *stubVehicleService) List(context.Context) ([]model.Veiculo, error) {
	return []model.Veiculo{}, nil
}

func (s *stubVehicleService) Update(context.Context, int, model.UpdateVeiculoRequest) error {
	return s.updateErr
}

func (s *stubVehicleService) Delete(context.Context, int) error { return s.deleteErr }

func (s *stubVehicleService) FirstByClientCPF(context.Context, string) (*model.Veiculo, error) {
	if s.firstErr != nil {
		return nil, s.firstErr
	}
	return &model.Veiculo{ID: 1, Placa: "ABC1D23"}, nil
}

func newVehicleTestRouter(svc *stubVehicleService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewVehicleHandler(svc, logrus.New())
	h.RegisterVehicleRoutes(router.Group(""))
	return router
}

const validVeiculoBody = `{"cliente_id":1,"marca":"Fiat","modelo":"Uno","ano_fabricacao":2012,"placa":"ABC1D23"}`

func TestVehicleHandler_Create(t *testing.T) {
	router := newVehicleTestRouter(&stubVehicleService{})

	w := doJSON(router, http.MethodPost, "/adicionarVeiculo", validVeiculoBody)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestVehicleHandler_Create_MissingField(t *testing.T) {
	router := newVehicleTestRouter(&stubVehicleService{})

	w := doJSON(router, http.MethodPost, "/adicionarVeiculo", `{"marca":"Fiat"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVehicleHandler_Update_NotFound(t *testing.T) {
	router := newVehicleTestRouter(&stubVehicleService{updateErr: service.ErrVehicleNotFound})

	w := doJSON(router, http.MethodPut, "/editarVeiculos/99", validVeiculoBody)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Veículo não encontrado")
}

func TestVehicleHandler_Delete_NotFound(t *testing.T) {
	router := newVehicleTestRouter(&stubVehicleService{deleteErr: service.ErrVehicleNotFound})

	w := doJSON(router, http.MethodDelete, "/deletarVeiculos/99", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestVehicleHandler_FirstByClientCPF(t *testing.T) {
	router := newVehicleTestRouter(&stubVehicleService{})

	w := doJSON(router, http.MethodGet, "/veiculo_cliente/12345678901", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ABC1D23")
}

func TestVehicleHandler_FirstByClientCPF_UnknownClient(t *testing.T) {
	router := newVehicleTestRouter(&stubVehicleService{firstErr: service.ErrClientNotFound})

	w := doJSON(router, http.MethodGet, "/veiculo_cliente/00000000000", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Cliente não encontrado")
}

func TestVehicleHandler_FirstByClientCPF_NoVehicle(t *testing.T) {
	router := newVehicleTestRouter(&stubVehicleService{firstErr: service.ErrVehicleNotFound})

	w := doJSON(router, http.MethodGet, "/veiculo_cliente/12345678901", "")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Nenhum veículo encontrado")
}
