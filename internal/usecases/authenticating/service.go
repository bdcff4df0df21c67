package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"github.com/vfg2006/ad-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = 24 * time.Hour

type Authenticator interface {
	Login(email, password string) (*domain.LoginResponse, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	operators map[string]domain.Operator
	secret    string
	tokenTTL  time.Duration
	now       func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	return newService(cfg, time.Now)
}

func newService(cfg *config.Config, now func() time.Time) *Service {
	operators := make(map[string]domain.Operator, 2)

	add := func(email, hash string, roleID int) {
		email = handleEmail(email)
		if email == "" || hash == "" {
			return
		}
		operators[email] = domain.Operator{Email: email, PasswordHash: hash, RoleID: roleID}
	}
	add(cfg.Auth.OperatorEmail, cfg.Auth.OperatorPasswordHash, domain.RoleAdmin)
	add(cfg.Auth.ViewerEmail, cfg.Auth.ViewerPasswordHash, domain.RoleViewer)

	if len(operators) == 0 {
		log.L.Warn("auth: no operator accounts configured, login is disabled")
	}

	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		operators: operators,
		secret:    cfg.Auth.Secret,
		tokenTTL:  ttl,
		now:       now,
	}
}

func (s *Service) Login(email, password string) (*domain.LoginResponse, error) {
	if email == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	if len(s.operators) == 0 {
		return nil, NewAuthError(ErrNoOperators, apiErrors.ErrNotConfigured, "")
	}

	operator, ok := s.operators[handleEmail(email)]
	if !ok {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Usuário não encontrado")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(password)); err != nil {
		return nil, NewAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Senha incorreta")
	}

	expiresAt := s.now().Add(s.tokenTTL)
	token, err := generateJWT(operator, s.secret, expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &domain.LoginResponse{
		Token:     token,
		Email:     operator.Email,
		RoleID:    operator.RoleID,
		ExpiresAt: expiresAt.Unix(),
	}, nil
}

func generateJWT(operator domain.Operator, secretKey string, expiresAt time.Time) (string, error) {
	claims := domain.Claims{
		UserEmail:  operator.Email,
		UserRoleID: operator.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, errors.Join(ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func handleEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
