package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	analyzingMocks "github.com/vfg2006/ad-monitor-api/internal/usecases/analyzing/mocks"
	authMocks "github.com/vfg2006/ad-monitor-api/internal/usecases/authenticating/mocks"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/dashboard"
	dashboardMocks "github.com/vfg2006/ad-monitor-api/internal/usecases/dashboard/mocks"
	notifyingMocks "github.com/vfg2006/ad-monitor-api/internal/usecases/notifying/mocks"
	thresholdingMocks "github.com/vfg2006/ad-monitor-api/internal/usecases/thresholding/mocks"
	"go.uber.org/mock/gomock"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(ctx context.Context) error { return p.err }

type testServer struct {
	handler       http.Handler
	authenticator *authMocks.MockAuthenticator
	notifier      *notifyingMocks.MockNotifier
	analyzer      *analyzingMocks.MockAnalyzer
	dashboard     *dashboardMocks.MockDashboard
	thresholds    *thresholdingMocks.MockThresholdService
}

func newTestServer(t *testing.T, db stubPinger) *testServer {
	ctrl := gomock.NewController(t)

	ts := &testServer{
		authenticator: authMocks.NewMockAuthenticator(ctrl),
		notifier:      notifyingMocks.NewMockNotifier(ctrl),
		analyzer:      analyzingMocks.NewMockAnalyzer(ctrl),
		dashboard:     dashboardMocks.NewMockDashboard(ctrl),
		thresholds:    thresholdingMocks.NewMockThresholdService(ctrl),
	}

	cfg := &config.Config{
		Server:    config.Server{Host: "localhost", Port: "0", AllowedOrigins: []string{"http://localhost:5173"}},
		RateLimit: config.RateLimit{AnalysisPerMinute: 1, AnalysisBurst: 1},
	}

	srv, err := New(cfg, Services{
		Database:      db,
		Authenticator: ts.authenticator,
		Notifier:      ts.notifier,
		Analyzer:      ts.analyzer,
		Thresholds:    ts.thresholds,
		Dashboard:     ts.dashboard,
	})
	require.NoError(t, err)

	ts.handler = srv.Handler()
	return ts
}

func (ts *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	ts.handler.ServeHTTP(rec, req)
	return rec
}

func TestServer_Healthcheck(t *testing.T) {
	ts := newTestServer(t, stubPinger{})
	assert.Equal(t, http.StatusOK, ts.do(http.MethodGet, "/healthcheck", "", "").Code)

	ts = newTestServer(t, stubPinger{err: errors.New("down")})
	assert.Equal(t, http.StatusInternalServerError, ts.do(http.MethodGet, "/healthcheck", "", "").Code)
}

func TestServer_ProxiesArePublic(t *testing.T) {
	ts := newTestServer(t, stubPinger{})
	ts.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil)

	rec := ts.do(http.MethodPost, "/api/notify", `{"ad_id":"ad-1"}`, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestServer_ProxyMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, stubPinger{})

	rec := ts.do(http.MethodGet, "/api/notify", "", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"error":"Method not allowed","code":"VAL_004"}`, rec.Body.String())
}

func TestServer_AnalyzeRateLimited(t *testing.T) {
	ts := newTestServer(t, stubPinger{})
	ts.analyzer.EXPECT().Analyze(gomock.Any(), gomock.Any()).Return("ok", nil).Times(1)

	body := `{"ad":{},"metrics":[1],"thresholds":{},"bucket":"daily"}`
	assert.Equal(t, http.StatusOK, ts.do(http.MethodPost, "/api/analyze", body, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, ts.do(http.MethodPost, "/api/analyze", body, "").Code)
}

func TestServer_DashboardRequiresToken(t *testing.T) {
	ts := newTestServer(t, stubPinger{})

	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/v1/dashboard", "", "").Code)

	ts.authenticator.EXPECT().ValidateToken("bad").Return(nil, errors.New("expired"))
	assert.Equal(t, http.StatusUnauthorized, ts.do(http.MethodGet, "/v1/dashboard", "", "bad").Code)

	ts.authenticator.EXPECT().ValidateToken("good").Return(&domain.Claims{UserEmail: "v@example.com", UserRoleID: domain.RoleViewer}, nil)
	ts.dashboard.EXPECT().Snapshot().Return(dashboard.Snapshot{State: dashboard.StateLoaded, Bucket: domain.TimeBucketDaily})

	rec := ts.do(http.MethodGet, "/v1/dashboard", "", "good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"state":"loaded"`)
}

func TestServer_ThresholdWriteIsAdminOnly(t *testing.T) {
	ts := newTestServer(t, stubPinger{})
	ts.authenticator.EXPECT().ValidateToken("viewer").Return(&domain.Claims{UserRoleID: domain.RoleViewer}, nil)

	rec := ts.do(http.MethodPost, "/v1/thresholds", `{"ad_id":"ad-1"}`, "viewer")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	ts := newTestServer(t, stubPinger{})

	rec := ts.do(http.MethodGet, "/metrics", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
