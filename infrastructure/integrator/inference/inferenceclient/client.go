package inferenceclient

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
)

const (
	serviceName    = "inference"
	defaultTimeout = 60 * time.Second
)

// ChatRequest é uma conversa de duas mensagens (system + user)
type ChatRequest struct {
	Model       string
	System      string
	User        string
	Temperature float32
	MaxTokens   int
}

// Client chama um endpoint compatível com chat-completions
type Client interface {
	CreateChatCompletion(ctx context.Context, req ChatRequest) (string, error)
}

type InferenceClient struct {
	client *openai.Client
}

func NewClient(cfg *config.Config) Client {
	timeout := cfg.Inference.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	clientConfig := openai.DefaultConfig(cfg.Inference.Token)
	clientConfig.BaseURL = cfg.Inference.BaseURL
	clientConfig.HTTPClient = &http.Client{
		Transport: &capturingTransport{base: http.DefaultTransport},
		Timeout:   timeout,
	}

	return &InferenceClient{
		client: openai.NewClientWithConfig(clientConfig),
	}
}

// CreateChatCompletion retorna o conteúdo da primeira escolha, ou "" quando não há escolhas.
// Status fora de 2xx vira *domain.UpstreamError com o corpo recebido.
func (c *InferenceClient) CreateChatCompletion(ctx context.Context, req ChatRequest) (string, error) {
	capture := &responseCapture{}
	ctx = context.WithValue(ctx, captureKey{}, capture)

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: req.Model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: req.System,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: req.User,
			},
		},
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	})
	if err != nil {
		if capture.statusCode != 0 {
			return "", &domain.UpstreamError{
				Service:    serviceName,
				StatusCode: capture.statusCode,
				Body:       string(capture.body),
			}
		}
		return "", fmt.Errorf("inference: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
