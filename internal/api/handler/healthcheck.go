package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/ad-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
)

// Pinger é satisfeito pela conexão com o postgres
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthcheckHandler(db Pinger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if db != nil {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()

			if err := db.Ping(ctx); err != nil {
				log.ForContext(r.Context()).WithError(err).Warn("healthcheck: database unreachable")
				apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Database unreachable", nil)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			log.L.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
