package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App              App              `mapstructure:",squash"`
	Server           Server           `mapstructure:",squash"`
	Database         Database         `mapstructure:",squash"`
	Notify           Notify           `mapstructure:",squash"`
	Inference        Inference        `mapstructure:",squash"`
	Render           Render           `mapstructure:",squash"`
	Auth             Auth             `mapstructure:",squash"`
	Dashboard        Dashboard        `mapstructure:",squash"`
	DashboardRefresh DashboardRefresh `mapstructure:",squash"`
	RateLimit        RateLimit        `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
	Env      string `mapstructure:"app_env"`
}

type Server struct {
	Host           string   `mapstructure:"host"`
	Port           string   `mapstructure:"port"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Database struct {
	DSN                  string        `mapstructure:"-"`
	Driver               string        `mapstructure:"database_driver"`
	Password             string        `mapstructure:"database_password"`
	URL                  string        `mapstructure:"database_url"`
	User                 string        `mapstructure:"database_user"`
	AlertChannel         string        `mapstructure:"database_alert_channel"`
	ListenerMinReconnect time.Duration `mapstructure:"database_listener_min_reconnect"`
	ListenerMaxReconnect time.Duration `mapstructure:"database_listener_max_reconnect"`
}

// Notify configura o webhook de chat usado pelo proxy de notificação
type Notify struct {
	WebhookURL string        `mapstructure:"slack_webhook_url"`
	Timeout    time.Duration `mapstructure:"notify_timeout"`
}

// Inference configura o endpoint de chat-completion usado pela análise
type Inference struct {
	Model   string        `mapstructure:"model_id"`
	BaseURL string        `mapstructure:"github_models_base"`
	Token   string        `mapstructure:"github_models_token"`
	Timeout time.Duration `mapstructure:"inference_timeout"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type Auth struct {
	Secret               string        `mapstructure:"auth_secret"`
	TokenTTL             time.Duration `mapstructure:"auth_token_ttl"`
	OperatorEmail        string        `mapstructure:"auth_operator_email"`
	OperatorPasswordHash string        `mapstructure:"auth_operator_password_hash"`
	ViewerEmail          string        `mapstructure:"auth_viewer_email"`
	ViewerPasswordHash   string        `mapstructure:"auth_viewer_password_hash"`
}

type Dashboard struct {
	DefaultBucket  string `mapstructure:"dashboard_default_bucket"`
	RowLimit       uint64 `mapstructure:"dashboard_row_limit"`
	AnalysisWindow int    `mapstructure:"dashboard_analysis_window"`
	MaxAlerts      int    `mapstructure:"dashboard_max_alerts"`
}

type DashboardRefresh struct {
	CronSchedule string `mapstructure:"dashboard_refresh_cron"`
	Enabled      bool   `mapstructure:"dashboard_refresh_enabled"`
}

type RateLimit struct {
	AnalysisPerMinute int `mapstructure:"analysis_rate_per_minute"`
	AnalysisBurst     int `mapstructure:"analysis_rate_burst"`
}

// Nomes dos secret files no Render que podem substituir variáveis vazias
const (
	secretWebhookURL     = "slack_webhook_url"
	secretInferenceToken = "github_models_token"
)

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)
	viper.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173")

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/ads?sslmode=disable")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")
	viper.SetDefault("DATABASE_ALERT_CHANNEL", "alerts_insert")
	viper.SetDefault("DATABASE_LISTENER_MIN_RECONNECT", "10s")
	viper.SetDefault("DATABASE_LISTENER_MAX_RECONNECT", "1m")

	viper.SetDefault("SLACK_WEBHOOK_URL", "")
	viper.SetDefault("NOTIFY_TIMEOUT", "10s")

	viper.SetDefault("MODEL_ID", "gpt-4o-mini")
	viper.SetDefault("GITHUB_MODELS_BASE", "https://models.github.ai/inference")
	viper.SetDefault("GITHUB_MODELS_TOKEN", "")
	viper.SetDefault("INFERENCE_TIMEOUT", "60s")

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_TOKEN_TTL", "24h")
	viper.SetDefault("AUTH_OPERATOR_EMAIL", "")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")
	viper.SetDefault("AUTH_VIEWER_EMAIL", "")
	viper.SetDefault("AUTH_VIEWER_PASSWORD_HASH", "")

	viper.SetDefault("DASHBOARD_DEFAULT_BUCKET", "daily")
	viper.SetDefault("DASHBOARD_ROW_LIMIT", 500)
	viper.SetDefault("DASHBOARD_ANALYSIS_WINDOW", 30)
	viper.SetDefault("DASHBOARD_MAX_ALERTS", 200)

	viper.SetDefault("DASHBOARD_REFRESH_CRON", "*/5 * * * *") // A cada 5 minutos
	viper.SetDefault("DASHBOARD_REFRESH_ENABLED", false)

	viper.SetDefault("ANALYSIS_RATE_PER_MINUTE", 10)
	viper.SetDefault("ANALYSIS_RATE_BURST", 2)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("APP_ENV", "development")
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	if config.Render.ServiceID != "" {
		renderClient := NewRenderClient(config)
		secretsByCode, err := renderClient.ListSecrets(config.Render.ServiceID)
		if err != nil {
			logrus.Error("Erro ao obter secrets do Render:", err)
			return nil, err
		}
		config.applySecrets(secretsByCode)
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// applySecrets preenche apenas os valores que o ambiente deixou vazios
func (c *Config) applySecrets(secretsByCode map[string]string) {
	if webhookURL, ok := secretsByCode[secretWebhookURL]; ok && c.Notify.WebhookURL == "" {
		c.Notify.WebhookURL = webhookURL
	}

	if token, ok := secretsByCode[secretInferenceToken]; ok && c.Inference.Token == "" {
		c.Inference.Token = token
	}
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		logrus.Debug("Tentando carregar .env de:", location)
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
