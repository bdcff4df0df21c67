package apiErrors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, ErrExternalService, "Webhook failed", "upstream said no")

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Webhook failed","code":"SRV_003","detail":"upstream said no"}`, rec.Body.String())
}

func TestWriteError_UnknownCode(t *testing.T) {
	rec := httptest.NewRecorder()

	WriteError(rec, "XXX", "boom", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"boom","code":"XXX"}`, rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()

	MethodNotAllowed().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/notify", nil))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed","code":"VAL_004"}`, rec.Body.String())
}
