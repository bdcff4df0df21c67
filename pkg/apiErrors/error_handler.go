package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro expostos pela API
const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Credenciais inválidas
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de requisição
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrMethodNotAllowed    = "VAL_004" // Método HTTP não suportado
	ErrNotFound            = "VAL_005" // Recurso não encontrado
	ErrConflict            = "VAL_006" // Resultado descartado por requisição mais recente
	ErrTooManyRequests     = "VAL_007" // Limite de requisições excedido

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
	ErrExternalService   = "SRV_003" // Serviço externo respondeu com falha
	ErrNotConfigured     = "SRV_005" // Integração sem configuração
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrNotFound:              http.StatusNotFound,
	ErrConflict:              http.StatusConflict,
	ErrTooManyRequests:       http.StatusTooManyRequests,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
	ErrExternalService:       http.StatusBadGateway,
	ErrNotConfigured:         http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Error  string `json:"error"`            // Mensagem descritiva
	Code   string `json:"code,omitempty"`   // Código de erro para o cliente
	Detail any    `json:"detail,omitempty"` // Detalhes adicionais, ex.: corpo da resposta do serviço externo
}

// StatusFor retorna o status HTTP de um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, detail any) {
	apiErr := APIError{
		Error:  message,
		Code:   code,
		Detail: detail,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}

// MethodNotAllowed responde 405 no formato padrão; usado pelo router e pelos proxies
func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, ErrMethodNotAllowed, "Method not allowed", nil)
	})
}

// NotFound responde 404 no formato padrão
func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		WriteError(w, ErrNotFound, "Not found", nil)
	})
}
