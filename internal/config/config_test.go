package config

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderClient_ListSecrets(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/services/srv-1/secret-files", r.URL.Path)
		assert.Equal(t, "Bearer render-key", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"secretFile": {"name": "slack_webhook_url", "content": "https://hooks.example/abc"}, "cursor": "1"},
			{"secretFile": {"name": "github_models_token", "content": "tok"}, "cursor": "2"}
		]`))
	}))
	defer server.Close()

	client := &RenderClient{APIKey: "render-key", BaseURL: server.URL, HTTPClient: server.Client()}

	secrets, err := client.ListSecrets("srv-1")
	require.NoError(t, err)
	assert.Equal(t, "https://hooks.example/abc", secrets["slack_webhook_url"])
	assert.Equal(t, "tok", secrets["github_models_token"])
}

func TestRenderClient_ListSecretsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("bad key"))
	}))
	defer server.Close()

	client := &RenderClient{APIKey: "x", BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := client.ListSecrets("srv-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestConfig_applySecrets(t *testing.T) {
	t.Run("fills empty values", func(t *testing.T) {
		cfg := &Config{}
		cfg.applySecrets(map[string]string{
			secretWebhookURL:     "https://hooks.example/abc",
			secretInferenceToken: "tok",
		})

		assert.Equal(t, "https://hooks.example/abc", cfg.Notify.WebhookURL)
		assert.Equal(t, "tok", cfg.Inference.Token)
	})

	t.Run("keeps values from environment", func(t *testing.T) {
		cfg := &Config{
			Notify:    Notify{WebhookURL: "https://env.example"},
			Inference: Inference{Token: "env-token"},
		}
		cfg.applySecrets(map[string]string{
			secretWebhookURL:     "https://hooks.example/abc",
			secretInferenceToken: "tok",
		})

		assert.Equal(t, "https://env.example", cfg.Notify.WebhookURL)
		assert.Equal(t, "env-token", cfg.Inference.Token)
	})
}
