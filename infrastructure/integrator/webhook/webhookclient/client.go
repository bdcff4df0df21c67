package webhookclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	serviceName    = "webhook"
	defaultTimeout = 10 * time.Second
)

// Client envia mensagens de texto para um incoming webhook de chat
type Client interface {
	PostText(ctx context.Context, webhookURL, text string) error
}

type WebhookClient struct {
	HTTPClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Notify.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &WebhookClient{
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type message struct {
	Text string `json:"text"`
}

// PostText faz exatamente uma chamada; status fora de 2xx vira *domain.UpstreamError com o corpo recebido
func (c *WebhookClient) PostText(ctx context.Context, webhookURL, text string) error {
	body, err := json.Marshal(message{Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: building request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("webhook: reading response: %w", err)
		}
		return &domain.UpstreamError{
			Service:    serviceName,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
