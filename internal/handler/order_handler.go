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

// OrderHandler handles service-order requests
type OrderHandler struct {
	service service.OrderService
	log     *logrus.Entry
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(s service.OrderService, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{service: s, log: log.WithField("component", "order_handler")}
}

// Create opens a service order. A terminal initial status closes it
// immediately.
func (h *OrderHandler) Create(c *gin.Context) {
	var req model.CreateOrdemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "Dados inválidos ou incompletos"})
		return
	}

	if _, err := h.service.Create(c.Request.Context(), req); err != nil {
		h.log.Errorf("failed to create service order: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mensagem": "Ordem de serviço cadastrada com sucesso"})
}

// List returns every service order.
func (h *OrderHandler) List(c *gin.Context) {
	ordens, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Errorf("failed to list service orders: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro ao obter ordens de serviço"})
		return
	}
	c.JSON(http.StatusOK, ordens)
}

// Update edits a service order and re-derives its closing timestamp.
func (h *OrderHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "ID inválido"})
		return
	}

	var req model.UpdateOrdemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "Erro nos dados enviados"})
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Serviço não encontrado"})
		case errors.Is(err, service.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"mensagem": "Erro nos dados enviados"})
		default:
			h.log.Errorf("failed to update service order %d: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Serviço editado com sucesso"})
}

// ByVehicle lists the service orders of one vehicle.
func (h *OrderHandler) ByVehicle(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "ID inválido"})
		return
	}

	ordens, err := h.service.ByVehicle(c.Request.Context(), id)
	if err != nil {
		h.log.Errorf("failed to list orders for vehicle %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno"})
		return
	}
	c.JSON(http.StatusOK, ordens)
}

// Delete removes a service order.
func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "ID inválido"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Serviço não encontrado"})
			return
		}
		h.log.Errorf("failed to delete service order %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro ao excluir serviço"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Serviço excluído com sucesso"})
}

// RegisterOrderRoutes registers service-order routes on their legacy paths.
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup) {
	rg.POST("/adicionarOrdemServico", h.Create)
	rg.GET("/listarOrdemServicos", h.List)
	rg.PUT("/editarServico/:id", h.Update)
	rg.GET("/ordens_por_veiculo/:id", h.ByVehicle)
	rg.DELETE("/deletarServico/:id", h.Delete)
}
