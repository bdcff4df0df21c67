package analyzing

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-monitor-api/infrastructure/integrator/inference/inferenceclient"
	"github.com/vfg2006/ad-monitor-api/infrastructure/integrator/inference/mocks"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func validRequest() domain.AnalysisRequest {
	return domain.AnalysisRequest{
		Ad:         json.RawMessage(`{"id":"ad-1"}`),
		Metrics:    json.RawMessage(`[ {"ctr": 0.004, "cpm": 9.1} ]`),
		Thresholds: json.RawMessage(`{ "min_ctr": 0.005 }`),
		Bucket:     json.RawMessage(`"daily"`),
	}
}

func TestBuildUserPrompt(t *testing.T) {
	prompt := BuildUserPrompt(validRequest())

	assert.Contains(t, prompt, "- Time bucket: daily\n")
	assert.Contains(t, prompt, `- Thresholds: {"min_ctr":0.005}`)
	assert.Contains(t, prompt, `- Recent metrics (newest first, up to 30): [{"ctr":0.004,"cpm":9.1}]`)
	assert.Contains(t, prompt, `{ "summary": string, "bullets": string[], "chartNotes": string[], "breaches": string[], "nextActions": string[] }`)
	assert.True(t, strings.HasSuffix(prompt, "Return plain text THEN a JSON block.\n"))
}

func TestService_Analyze(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)

	client.EXPECT().
		CreateChatCompletion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req inferenceclient.ChatRequest) (string, error) {
			assert.Equal(t, "gpt-4o-mini", req.Model)
			assert.Equal(t, systemPrompt, req.System)
			assert.InDelta(t, 0.3, req.Temperature, 0.0001)
			assert.Equal(t, 700, req.MaxTokens)
			assert.Contains(t, req.User, "Time bucket: daily")
			return "CTR below threshold since Monday.", nil
		}).
		Times(1)

	s := NewService(&config.Config{Inference: config.Inference{Model: "gpt-4o-mini"}}, client)

	content, err := s.Analyze(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "CTR below threshold since Monday.", content)
}

func TestService_AnalyzeMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *domain.AnalysisRequest)
	}{
		{"missing bucket", func(r *domain.AnalysisRequest) { r.Bucket = nil }},
		{"null ad", func(r *domain.AnalysisRequest) { r.Ad = json.RawMessage("null") }},
		{"empty thresholds string", func(r *domain.AnalysisRequest) { r.Thresholds = json.RawMessage(`""`) }},
		{"zero metrics", func(r *domain.AnalysisRequest) { r.Metrics = json.RawMessage("0") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			client := mocks.NewMockClient(ctrl)

			req := validRequest()
			tt.mutate(&req)

			s := NewService(&config.Config{}, client)
			_, err := s.Analyze(context.Background(), req)

			assert.True(t, errors.Is(err, domain.ErrMissingField))
		})
	}
}

func TestService_AnalyzeUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	upstream := &domain.UpstreamError{Service: "inference", StatusCode: 429, Body: "rate limited"}
	client.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).Return("", upstream).Times(1)

	s := NewService(&config.Config{}, client)
	_, err := s.Analyze(context.Background(), validRequest())

	var got *domain.UpstreamError
	require.True(t, errors.As(err, &got))
	assert.Equal(t, "rate limited", got.Body)
}

func TestService_AnalyzeAcceptsMoreThanWindow(t *testing.T) {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockClient(ctrl)
	client.EXPECT().CreateChatCompletion(gomock.Any(), gomock.Any()).Return("ok", nil).Times(1)

	rows := make([]map[string]float64, MaxMetricRows+5)
	for i := range rows {
		rows[i] = map[string]float64{"ctr": 0.01}
	}
	metricsJSON, err := json.Marshal(rows)
	require.NoError(t, err)

	req := validRequest()
	req.Metrics = metricsJSON

	s := NewService(&config.Config{}, client)
	content, err := s.Analyze(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "ok", content)
}
