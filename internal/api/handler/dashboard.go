package handler

import (
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/dashboard"
	"github.com/vfg2006/ad-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
)

type SelectBucketRequest struct {
	Bucket string `json:"bucket"`
}

type RunAnalysisRequest struct {
	AdID string `json:"ad_id"`
}

type AdListResponse struct {
	AdIDs []string `json:"ad_ids"`
}

type ChartResponse struct {
	AdID   string              `json:"ad_id,omitempty"`
	Points []domain.ChartPoint `json:"points"`
}

type AlertListResponse struct {
	Count  int                   `json:"count"`
	Alerts []domain.AlertMessage `json:"alerts"`
}

func GetDashboard(controller dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, controller.Snapshot())
	}
}

// SelectBucket troca o bucket exibido e devolve o novo estado
func SelectBucket(controller dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SelectBucketRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		bucket, err := domain.ParseTimeBucket(req.Bucket)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Bucket inválido. Valores aceitos: hourly, daily, weekly, monthly", nil)
			return
		}

		if err := controller.SelectBucket(r.Context(), bucket); err != nil {
			handleDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, controller.Snapshot())
	}
}

func RefreshDashboard(controller dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := controller.Refresh(r.Context()); err != nil {
			handleDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, controller.Snapshot())
	}
}

func ListAds(controller dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, AdListResponse{AdIDs: controller.AdIDs()})
	}
}

// GetCards avalia a linha mais recente do anúncio informado em ?ad_id= (ou de todos)
func GetCards(controller dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := controller.Cards(r.Context(), r.URL.Query().Get("ad_id"))
		if err != nil {
			handleDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, cards)
	}
}

func GetChart(controller dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := r.URL.Query().Get("ad_id")
		writeJSON(w, r, http.StatusOK, ChartResponse{
			AdID:   adID,
			Points: controller.ChartSeries(adID),
		})
	}
}

// ListAlerts devolve os alertas do mais recente para o mais antigo; ?limit= restringe a quantidade
func ListAlerts(controller dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		alerts := controller.Alerts()

		if raw := r.URL.Query().Get("limit"); raw != "" {
			limit, err := strconv.Atoi(raw)
			if err != nil || limit < 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "limit inválido", nil)
				return
			}
			if limit < len(alerts) {
				alerts = alerts[:limit]
			}
		}

		writeJSON(w, r, http.StatusOK, AlertListResponse{Count: len(alerts), Alerts: alerts})
	}
}

func RunAnalysis(controller dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RunAnalysisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		result, err := controller.RunAnalysis(r.Context(), req.AdID)
		if err != nil {
			handleDashboardError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func GetLatestAnalysis(controller dashboard.Dashboard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, ok := controller.LatestAnalysis()
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhuma análise disponível", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, result)
	}
}

func handleDashboardError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context()).WithError(err)

	var upstream *domain.UpstreamError
	switch {
	case errors.Is(err, dashboard.ErrInvalidBucket):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Bucket inválido", nil)

	case errors.Is(err, dashboard.ErrStaleLoad):
		apiErrors.WriteError(w, apiErrors.ErrConflict, "Seleção substituída por uma requisição mais recente", nil)

	case errors.Is(err, dashboard.ErrNoAdSelected):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ad_id é obrigatório", nil)

	case errors.Is(err, dashboard.ErrNoRowsForAd):
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhuma métrica carregada para o anúncio", nil)

	case errors.Is(err, domain.ErrMissingField):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)

	case errors.As(err, &upstream):
		logger.WithField("status_code", upstream.StatusCode).Warn("dashboard: upstream failure")
		apiErrors.WriteError(w, apiErrors.ErrExternalService, "Inference API failed", upstream.Body)

	default:
		logger.Error("dashboard: request failed")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao processar a requisição do dashboard", nil)
	}
}
