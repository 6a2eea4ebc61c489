package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Usuario is a staff account that can authenticate against the API.
type Usuario struct {
	ID           int    `json:"id"`
	Nome         string `json:"nome"`
	CPF          string `json:"cpf"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // Do not expose password hash in JSON responses
	Papel        string `json:"papel"`
}

// CreateUsuarioRequest is the payload of POST /cadastro_usuario.
// Papel is optional and defaults to "user".
type CreateUsuarioRequest struct {
	Nome     string `json:"nome" binding:"required"`
	CPF      string `json:"cpf" binding:"required,len=11"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Papel    string `json:"papel"`
}

// LoginRequest is the payload of POST /login.
type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}
