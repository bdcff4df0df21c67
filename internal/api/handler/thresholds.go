package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/thresholding"
	"github.com/vfg2006/ad-monitor-api/pkg/apiErrors"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
)

func GetThresholds(service thresholding.ThresholdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		adID := httprouter.ParamsFromContext(r.Context()).ByName("ad_id")

		thresholds, err := service.Latest(r.Context(), adID)
		if err != nil {
			handleThresholdError(w, r, err)
			return
		}
		if thresholds == nil {
			apiErrors.WriteError(w, apiErrors.ErrNotFound, "Nenhum threshold configurado para o anúncio", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, thresholds)
	}
}

// CreateThresholds registra um novo conjunto; o anterior deixa de valer
func CreateThresholds(service thresholding.ThresholdService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.ThresholdInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		thresholds, err := service.Register(r.Context(), input)
		if err != nil {
			handleThresholdError(w, r, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, thresholds)
	}
}

func handleThresholdError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingField):
		apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, err.Error(), nil)
	case errors.Is(err, thresholding.ErrInvalidBound):
		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
	default:
		log.ForContext(r.Context()).WithError(err).Error("thresholds: request failed")
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao acessar thresholds", nil)
	}
}
