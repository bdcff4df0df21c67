package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
)

type AnalyzeResponse struct {
	OK      bool   `json:"ok"`
	Content string `json:"content"`
}

// Analyze repassa {ad, metrics, thresholds, bucket} ao modelo e devolve o texto sem alterações
func Analyze(service analyzing.Analyzer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Method not allowed", nil)
			return
		}

		var req domain.AnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid JSON body", nil)
			return
		}

		content, err := service.Analyze(r.Context(), req)
		if err != nil {
			handleAnalysisError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, AnalyzeResponse{OK: true, Content: content})
	}
}

func handleAnalysisError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrMissingField):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Missing body fields ad|metrics|thresholds|bucket", nil)

	case errors.As(err, &upstream):
		logger.WithField("status_code", upstream.StatusCode).Warn("analysis: inference rejected request")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Inference API failed", upstream.Body)

	default:
		logger.Error("analysis: unexpected failure")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
