package handler

import (
	"io"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/notifying"
	"github.com/vfg2006/ad-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
)

// Notify encaminha {ad_id, severity, breaches} ao webhook de chat
func Notify(service notifying.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Method not allowed", nil)
			return
		}

		var req domain.AlertNotification
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Invalid JSON body", nil)
			return
		}

		err := service.Notify(r.Context(), req)
		if err != nil {
			handleNotifyError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]bool{"ok": true})
	}
}

func handleNotifyError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrNotConfigured):
		logger.Error("notify: webhook not configured")
		apiErrors.WriteError(w, apiErrors.ErrNotConfigured, "Webhook not configured", nil)

	case errors.As(err, &upstream):
		logger.WithField("status_code", upstream.StatusCode).Warn("notify: webhook rejected message")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Webhook failed", upstream.Body)

	default:
		logger.Error("notify: unexpected failure")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
	}
}
