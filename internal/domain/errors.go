package domain

import (
	"errors"
	"fmt"
)

var (
	ErrMethodNotAllowed = errors.New("method not allowed")
	ErrNotConfigured    = errors.New("not configured")
	ErrMissingField     = errors.New("missing field")
)

// UpstreamError indica que o serviço externo respondeu com status diferente de 2xx.
// Body carrega o corpo da resposta sem alterações.
type UpstreamError struct {
	Service    string
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s responded with status %d", e.Service, e.StatusCode)
}
