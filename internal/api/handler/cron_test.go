package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

type stubCronJob struct {
	triggered int
}

func (s *stubCronJob) TriggerManualSync() { s.triggered++ }

func (s *stubCronJob) GetStatus() map[string]any {
	return map[string]any{"triggered": s.triggered}
}

func TestRunCronJob(t *testing.T) {
	tests := []struct {
		name          string
		cronType      string
		wantStatus    int
		wantTriggered int
	}{
		{name: "dashboard refresh", cronType: CronJobTypeDashboardRefresh, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "all", cronType: CronJobTypeAll, wantStatus: http.StatusAccepted, wantTriggered: 1},
		{name: "unknown type", cronType: "meta-sync", wantStatus: http.StatusBadRequest},
		{name: "missing type", cronType: "", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			job := &stubCronJob{}
			services := CronJobServices{DashboardRefreshService: job}

			req := withParams(
				httptest.NewRequest(http.MethodPost, "/v1/cron/"+tt.cronType+"/run", nil),
				httprouter.Params{{Key: "type", Value: tt.cronType}},
			)
			rec := httptest.NewRecorder()

			RunCronJob(services).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantTriggered, job.triggered)
		})
	}
}

func TestGetCronStatus(t *testing.T) {
	services := CronJobServices{DashboardRefreshService: &stubCronJob{triggered: 2}}

	rec := httptest.NewRecorder()
	GetCronStatus(services).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/cron/status", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"dashboard-refresh":{"triggered":2}}`, rec.Body.String())
}
