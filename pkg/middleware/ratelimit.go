package middleware

import (
	"net/http"
	"time"

	"github.com/vfg2006/ad-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
	"golang.org/x/time/rate"
)

// NewLimiter cria um limitador de perMinute requisições por minuto com rajada burst
func NewLimiter(perMinute, burst int) *rate.Limiter {
	if perMinute <= 0 {
		return rate.NewLimiter(rate.Inf, 0)
	}
	if burst <= 0 {
		burst = 1
	}
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), burst)
}

// RateLimit rejeita com 429 quando o limitador não tem tokens disponíveis
func RateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.ForContext(r.Context()).WithFields(log.Fields{
					"path":   r.URL.Path,
					"method": r.Method,
				}).Warn("ratelimit: request rejected")

				apiErrors.WriteError(w, apiErrors.ErrTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
