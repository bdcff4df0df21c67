package domain

import (
	"github.com/golang-jwt/jwt/v5"
)

const (
	RoleAdmin  = 1 // Operador: pode alterar thresholds e disparar jobs
	RoleViewer = 2
)

// Operator é uma conta configurada por ambiente com acesso ao dashboard
type Operator struct {
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	RoleID       int    `json:"role_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Email     string `json:"email"`
	RoleID    int    `json:"role_id"`
	ExpiresAt int64  `json:"expires_at"`
}

type Claims struct {
	UserEmail  string
	UserRoleID int
	jwt.RegisteredClaims
}
