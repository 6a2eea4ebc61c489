package handler

import (
	"errors"
	"net/http"
	"strconv"

	"oficina_api/internal/model"
	"oficina_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// VehicleHandler handles vehicle requests
type VehicleHandler struct {
	service service.VehicleService
	log     *logrus.Entry
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(s service.VehicleService, log *logrus.Logger) *VehicleHandler {
	return &VehicleHandler{service: s, log: log.WithField("component", "vehicle_handler")}
}

// Create adds a vehicle. A duplicate plate is only caught by the storage
// constraint, so it answers 500 rather than 409.
func (h *VehicleHandler) Create(c *gin.Context) {
	var req model.CreateVeiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "Dados inválidos ou incompletos"})
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		h.log.Errorf("failed to create vehicle: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mensagem": "Veículo cadastrado com sucesso"})
}

// List returns every vehicle.
func (h *VehicleHandler) List(c *gin.Context) {
	veiculos, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Errorf("failed to list vehicles: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro ao obter veículos"})
		return
	}
	c.JSON(http.StatusOK, veiculos)
}

// Update overwrites a vehicle's editable fields.
func (h *VehicleHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "ID inválido"})
		return
	}

	var req model.UpdateVeiculoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "Dados inválidos ou incompletos"})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Veículo não encontrado"})
			return
		}
		h.log.Errorf("failed to update vehicle %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "veiculo editado com sucesso"})
}

// Delete removes a vehicle.
func (h *VehicleHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "ID inválido"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrVehicleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "veiculo não encontrado"})
			return
		}
		h.log.Errorf("failed to delete vehicle %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro ao excluir veiculo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "veiculo excluído com sucesso"})
}

// FirstByClientCPF returns the first vehicle of the client with that cpf.
func (h *VehicleHandler) FirstByClientCPF(c *gin.Context) {
	cpf := c.Param("cpf")

	veiculo, err := h.service.FirstByClientCPF(c.Request.Context(), cpf)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrClientNotFound):
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Cliente não encontrado"})
		case errors.Is(err, service.ErrVehicleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Nenhum veículo encontrado"})
		default:
			h.log.Errorf("failed to find vehicle by cpf %s: %v", cpf, err)
			c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		}
		return
	}
	c.JSON(http.StatusOK, veiculo)
}

// RegisterVehicleRoutes registers vehicle routes on their legacy paths.
func (h *VehicleHandler) RegisterVehicleRoutes(rg *gin.RouterGroup) {
	rg.POST("/adicionarVeiculo", h.Create)
	rg.GET("/listarVeiculos", h.List)
	rg.PUT("/editarVeiculos/:id", h.Update)
	rg.DELETE("/deletarVeiculos/:id", h.Delete)
	rg.GET("/veiculo_cliente/:cpf", h.FirstByClientCPF)
}
