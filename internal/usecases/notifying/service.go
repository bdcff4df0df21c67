package notifying

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/ad-monitor-api/infrastructure/integrator/webhook/webhookclient"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
	"github.com/vfg2006/ad-monitor-api/pkg/metrics"
)

const defaultSeverity = "ALERT"

type Notifier interface {
	Notify(ctx context.Context, notification domain.AlertNotification) error
	NotifyBestEffort(ctx context.Context, notification domain.AlertNotification)
}

type Service struct {
	webhookURL string
	client     webhookclient.Client
}

func NewService(cfg *config.Config, client webhookclient.Client) Notifier {
	return &Service{
		webhookURL: cfg.Notify.WebhookURL,
		client:     client,
	}
}

// FormatMessage monta o texto enviado ao chat
func FormatMessage(n domain.AlertNotification) string {
	severity := strings.ToUpper(n.Severity)
	if severity == "" {
		severity = defaultSeverity
	}

	breaches := "null"
	if len(n.Breaches) > 0 {
		var compact bytes.Buffer
		if err := json.Compact(&compact, n.Breaches); err == nil {
			breaches = compact.String()
		} else {
			breaches = string(n.Breaches)
		}
	}

	return fmt.Sprintf("⚠️ *%s* for ad `%s`\nBreaches: `%s`", severity, n.AdID, breaches)
}

// Notify faz uma única chamada ao webhook, sem retry
func (s *Service) Notify(ctx context.Context, notification domain.AlertNotification) error {
	if s.webhookURL == "" {
		metrics.NotifyTotal.WithLabelValues(metrics.OutcomeNotConfigured).Inc()
		return domain.ErrNotConfigured
	}

	err := s.client.PostText(ctx, s.webhookURL, FormatMessage(notification))
	if err != nil {
		var upstream *domain.UpstreamError
		if errors.As(err, &upstream) {
			metrics.NotifyTotal.WithLabelValues(metrics.OutcomeUpstreamError).Inc()
		} else {
			metrics.NotifyTotal.WithLabelValues(metrics.OutcomeError).Inc()
		}
		return err
	}

	metrics.NotifyTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return nil
}

// NotifyBestEffort registra a falha e segue; usado pelo fluxo de alertas do dashboard
func (s *Service) NotifyBestEffort(ctx context.Context, notification domain.AlertNotification) {
	if err := s.Notify(ctx, notification); err != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"ad_id": notification.AdID,
			"error": err.Error(),
		}).Warn("notify: best-effort notification failed")
	}
}
