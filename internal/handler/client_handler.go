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

// ClientHandler handles client requests
type ClientHandler struct {
	service      service.ClientService
	orderService service.OrderService
	log          *logrus.Entry
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(s service.ClientService, orderService service.OrderService, log *logrus.Logger) *ClientHandler {
	return &ClientHandler{service: s, orderService: orderService, log: log.WithField("component", "client_handler")}
}

// Create adds a client. Duplicates come back 409, first conflict in
// cpf → telefone → email order wins.
func (h *ClientHandler) Create(c *gin.Context) {
	var req model.CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "Dados inválidos ou incompletos"})
		return
	}

	_, err := h.service.Create(c.Request.Context(), req)
	switch {
	case errors.Is(err, service.ErrCPFTaken):
		c.JSON(http.StatusConflict, gin.H{"mensagem": "CPF já cadastrado"})
	case errors.Is(err, service.ErrTelefoneTaken):
		c.JSON(http.StatusConflict, gin.H{"mensagem": "Telefone já cadastrado"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"mensagem": "E-mail já cadastrado"})
	case err != nil:
		h.log.Errorf("failed to create client: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
	default:
		c.JSON(http.StatusCreated, gin.H{"mensagem": "Cliente cadastrado com sucesso"})
	}
}

// List returns every client.
func (h *ClientHandler) List(c *gin.Context) {
	clientes, err := h.service.List(c.Request.Context())
	if err != nil {
		h.log.Errorf("failed to list clients: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro ao obter clientes"})
		return
	}
	c.JSON(http.StatusOK, clientes)
}

// Update overwrites a client's fields.
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "ID inválido"})
		return
	}

	var req model.UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "Dados inválidos ou incompletos"})
		return
	}

	if err := h.service.Update(c.Request.Context(), id, req); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Cliente não encontrado"})
			return
		}
		h.log.Errorf("failed to update client %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro ao atualizar cliente"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "cliente editado com sucesso"})
}

// Hide deactivates a client; the reason is mandatory.
func (h *ClientHandler) Hide(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "ID inválido"})
		return
	}

	var req model.HideClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "Motivo é obrigatório"})
		return
	}

	if err := h.service.Hide(c.Request.Context(), id, req.Motivo); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Cliente não encontrado"})
			return
		}
		h.log.Errorf("failed to hide client %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Cliente ocultado com sucesso"})
}

// Reactivate clears the hidden flag and the stored reason.
func (h *ClientHandler) Reactivate(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "ID inválido"})
		return
	}

	if err := h.service.Reactivate(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Cliente não encontrado"})
			return
		}
		h.log.Errorf("failed to reactivate client %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Cliente reativado com sucesso"})
}

// ToggleStatus flips the active flag without touching the reason.
func (h *ClientHandler) ToggleStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "ID inválido"})
		return
	}

	ativo, err := h.service.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Cliente não encontrado"})
			return
		}
		h.log.Errorf("failed to toggle client %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Status do cliente alterado com sucesso", "ativo": ativo})
}

// Delete removes a client.
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "ID inválido"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Cliente não encontrado"})
			return
		}
		h.log.Errorf("failed to delete client %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro ao excluir Cliente"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"mensagem": "Cliente excluído com sucesso"})
}

// Dados serves the composite client + first vehicle + first order view.
func (h *ClientHandler) Dados(c *gin.Context) {
	cpf := c.Param("cpf")

	dados, err := h.service.DadosByCPF(c.Request.Context(), cpf)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Cliente não encontrado"})
			return
		}
		h.log.Errorf("failed to build composite view for cpf %s: %v", cpf, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		return
	}
	c.JSON(http.StatusOK, dados)
}

// OrdersByClient lists the service orders across all of a client's vehicles.
func (h *ClientHandler) OrdersByClient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "ID inválido"})
		return
	}

	ordens, err := h.orderService.ByClient(c.Request.Context(), id)
	if err != nil {
		h.log.Errorf("failed to list orders for client %d: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		return
	}
	c.JSON(http.StatusOK, ordens)
}

// RegisterClientRoutes registers client routes on their legacy paths.
func (h *ClientHandler) RegisterClientRoutes(rg *gin.RouterGroup) {
	rg.POST("/adicionarClientes", h.Create)
	rg.GET("/listarClientes", h.List)
	rg.PUT("/editarClients/:id", h.Update)
	rg.PUT("/ocultarClient/:id", h.Hide)
	rg.PUT("/reativarCliente/:id", h.Reactivate)
	rg.PATCH("/alterarStatusCliente/:id", h.ToggleStatus)
	rg.DELETE("/deletarCliente/:id", h.Delete)
	rg.GET("/dados_cliente/:cpf", h.Dados)
	rg.GET("/BuscaClientes/id/:id/servicos", h.OrdersByClient)
}
