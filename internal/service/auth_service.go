package service

import (
	"context"
	"errors"
	"fmt"

	"oficina_api/internal/model"
	"oficina_api/internal/repository"
	"oficina_api/internal/utils"
)

var (
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password; the caller must not be able to tell them apart.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService provides staff account and authentication operations
type AuthService interface {
	Register(ctx context.Context, req model.CreateUsuarioRequest) (*model.Usuario, error)
	Login(ctx context.Context, email, senha string) (*model.Usuario, string, error)
	ListUsers(ctx context.Context) ([]model.Usuario, error)
	CPFByEmail(ctx context.Context, email string) (string, error)
}

type authService struct {
	userRepo repository.UserRepository
	jwtUtil  *utils.JWTUtil
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil) AuthService {
	return &authService{userRepo: userRepo, jwtUtil: jwtUtil}
}

// Register creates a new staff account with a bcrypt-hashed password.
func (s *authService) Register(ctx context.Context, req model.CreateUsuarioRequest) (*model.Usuario, error) {
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	papel := req.Papel
	if papel == "" {
		papel = model.RoleUser
	}

	user := &model.Usuario{
		Nome:         req.Nome,
		CPF:          req.CPF,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Papel:        papel,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	return user, nil
}

// Login authenticates a user and returns a JWT token. A missing user and a
// wrong password take the same exit path.
func (s *authService) Login(ctx context.Context, email, senha string) (*model.Usuario, string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil || !utils.CheckPasswordHash(senha, user.PasswordHash) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwtUtil.GenerateToken(user.ID, user.CPF, user.Papel)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}
	return user, token, nil
}

// ListUsers returns every staff account.
func (s *authService) ListUsers(ctx context.Context) ([]model.Usuario, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// CPFByEmail resolves a user's cpf from their email.
func (s *authService) CPFByEmail(ctx context.Context, email string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("error finding user by email: %w", err)
	}
	if user == nil {
		return "", ErrUserNotFound
	}
	return user.CPF, nil
}
