package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/thresholding"
	thresholdingMocks "github.com/vfg2006/ad-monitor-api/internal/usecases/thresholding/mocks"
	"go.uber.org/mock/gomock"
)

func TestGetThresholds(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := thresholdingMocks.NewMockThresholdService(ctrl)

	minCTR := 0.02
	service.EXPECT().Latest(gomock.Any(), "ad-1").Return(&domain.ThresholdSet{ID: 7, AdID: "ad-1", MinCTR: &minCTR}, nil)
	service.EXPECT().Latest(gomock.Any(), "ad-2").Return(nil, nil)

	rec := httptest.NewRecorder()
	req := withParams(httptest.NewRequest(http.MethodGet, "/v1/thresholds/ad-1", nil), httprouter.Params{{Key: "ad_id", Value: "ad-1"}})
	GetThresholds(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"min_ctr":0.02`)

	rec = httptest.NewRecorder()
	req = withParams(httptest.NewRequest(http.MethodGet, "/v1/thresholds/ad-2", nil), httprouter.Params{{Key: "ad_id", Value: "ad-2"}})
	GetThresholds(service).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateThresholds(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		setupMock  func(m *thresholdingMocks.MockThresholdService)
		wantStatus int
	}{
		{
			name:       "invalid body",
			body:       `[`,
			setupMock:  func(m *thresholdingMocks.MockThresholdService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "negative bound",
			body: `{"ad_id":"ad-1","max_cpm":-1}`,
			setupMock: func(m *thresholdingMocks.MockThresholdService) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, thresholding.ErrInvalidBound)
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "created",
			body: `{"ad_id":"ad-1","max_cpm":12.5}`,
			setupMock: func(m *thresholdingMocks.MockThresholdService) {
				m.EXPECT().Register(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, in domain.ThresholdInput) (*domain.ThresholdSet, error) {
						set := in.ThresholdSet()
						set.ID = 8
						return set, nil
					})
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			service := thresholdingMocks.NewMockThresholdService(ctrl)
			tt.setupMock(service)

			rec := httptest.NewRecorder()
			CreateThresholds(service).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/thresholds", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
