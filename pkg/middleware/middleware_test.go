package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
)

type stubValidator struct {
	claims *domain.Claims
	err    error
}

func (s stubValidator) ValidateToken(string) (*domain.Claims, error) {
	return s.claims, s.err
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNoContent)
})

func TestAuthMiddleware(t *testing.T) {
	claims := &domain.Claims{UserEmail: "ops@example.com", UserRoleID: domain.RoleAdmin}

	tests := []struct {
		name       string
		path       string
		header     string
		validator  stubValidator
		wantStatus int
	}{
		{"public proxy path", "/api/notify", "", stubValidator{}, http.StatusNoContent},
		{"healthcheck", "/healthcheck", "", stubValidator{}, http.StatusNoContent},
		{"missing header", "/v1/dashboard", "", stubValidator{}, http.StatusUnauthorized},
		{"not bearer", "/v1/dashboard", "Basic abc", stubValidator{}, http.StatusUnauthorized},
		{"invalid token", "/v1/dashboard", "Bearer abc", stubValidator{err: errors.New("bad")}, http.StatusUnauthorized},
		{"valid token", "/v1/dashboard", "Bearer abc", stubValidator{claims: claims}, http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			AuthMiddleware(tt.validator)(okHandler).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRoleMiddleware(t *testing.T) {
	withClaims := func(roleID int) *http.Request {
		req := httptest.NewRequest(http.MethodPost, "/v1/thresholds", nil)
		ctx := context.WithValue(req.Context(), ContextKeyUser, &domain.Claims{UserRoleID: roleID})
		return req.WithContext(ctx)
	}

	t.Run("admin passes", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AdminOnly()(okHandler).ServeHTTP(rec, withClaims(domain.RoleAdmin))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("viewer is forbidden", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AdminOnly()(okHandler).ServeHTTP(rec, withClaims(domain.RoleViewer))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no claims", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AllRoles()(okHandler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRateLimit(t *testing.T) {
	handler := RateLimit(NewLimiter(1, 1))(okHandler)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "VAL_007")
}

func TestRateLimit_Unlimited(t *testing.T) {
	handler := RateLimit(NewLimiter(0, 0))(okHandler)

	for i := 0; i < 5; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/analyze", nil))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	}
}

func TestCors(t *testing.T) {
	handler := Cors([]string{"http://localhost:5173"})(okHandler)

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/dashboard", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/notify", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestLogPanicMiddleware(t *testing.T) {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})
	rec := httptest.NewRecorder()

	LogPanicMiddleware()(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
