package handler

import (
	"errors"
	"net/http"

	"oficina_api/internal/model"
	"oficina_api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// AuthHandler handles login and staff account requests
type AuthHandler struct {
	service service.AuthService
	log     *logrus.Entry
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, log *logrus.Logger) *AuthHandler {
	return &AuthHandler{service: s, log: log.WithField("component", "auth_handler")}
}

// Login authenticates by email and password. Unknown email and wrong
// password answer with the exact same body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados incompletos"})
		return
	}

	user, token, err := h.service.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"msg": "Credenciais inválidas"})
			return
		}
		h.log.Errorf("login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro interno do servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"nome":         user.Nome,
		"email":        user.Email,
		"access_token": token,
	})
}

// Register creates a staff account.
func (h *AuthHandler) Register(c *gin.Context) {
	var req model.CreateUsuarioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "Dados inválidos ou incompletos"})
		return
	}

	if _, err := h.service.Register(c.Request.Context(), req); err != nil {
		h.log.Errorf("user registration failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"mensagem": "Usuário cadastrado com sucesso"})
}

// ListUsers lists every staff account. Admin only.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		h.log.Errorf("failed to list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro ao obter usuários"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// CPFByEmail resolves a user's cpf from the email query parameter.
func (h *AuthHandler) CPFByEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"mensagem": "Email não fornecido"})
		return
	}

	cpf, err := h.service.CPFByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"mensagem": "Usuário não encontrado"})
			return
		}
		h.log.Errorf("cpf lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"mensagem": "Erro interno do servidor"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cpf": cpf})
}

// RegisterAuthRoutes registers the auth and user routes. Listing users is
// behind the JWT + admin chain.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, jwtMW, adminMW gin.HandlerFunc) {
	rg.POST("/login", h.Login)
	rg.POST("/cadastro_usuario", h.Register)
	rg.GET("/listarUsuario", jwtMW, adminMW, h.ListUsers)
	rg.GET("/buscar_cpf_por_email", h.CPFByEmail)
}
