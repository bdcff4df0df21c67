package analyzing

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-monitor-api/infrastructure/integrator/inference/inferenceclient"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
	"github.com/vfg2006/ad-monitor-api/pkg/metrics"
)

const (
	// MaxMetricRows é quantas linhas o chamador deve enviar; o proxy apenas avisa quando excede
	MaxMetricRows = 30

	temperature = 0.3
	maxTokens   = 700
)

type Analyzer interface {
	Analyze(ctx context.Context, req domain.AnalysisRequest) (string, error)
}

type Service struct {
	model  string
	client inferenceclient.Client
}

func NewService(cfg *config.Config, client inferenceclient.Client) Analyzer {
	return &Service{
		model:  cfg.Inference.Model,
		client: client,
	}
}

// Analyze devolve o texto do modelo sem interpretar; uma chamada, sem retry
func (s *Service) Analyze(ctx context.Context, req domain.AnalysisRequest) (string, error) {
	if missing := req.MissingFields(); len(missing) > 0 {
		metrics.AnalysisTotal.WithLabelValues(metrics.OutcomeRejected).Inc()
		return "", fmt.Errorf("%w: %s", domain.ErrMissingField, strings.Join(missing, "|"))
	}

	logger := log.ForContext(ctx).WithField("bucket", req.BucketLabel())

	if count := req.MetricsCount(); count > MaxMetricRows {
		logger.Warnf("analysis: received %d metric rows, expected at most %d", count, MaxMetricRows)
	}

	start := time.Now()
	content, err := s.client.CreateChatCompletion(ctx, inferenceclient.ChatRequest{
		Model:       s.model,
		System:      systemPrompt,
		User:        BuildUserPrompt(req),
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	metrics.AnalysisDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			metrics.AnalysisTotal.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
		} else {
			metrics.AnalysisTotal.WithLabelValues(metrics.OutcomeError).Inc()
		}
		logger.WithError(err).Error("analysis: inference call failed")
		return "", err
	}

	metrics.AnalysisTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	logger.Debugf("analysis: completed in %s", time.Since(start))

	return content, nil
}
