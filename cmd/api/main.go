package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-monitor-api/infrastructure/integrator/inference/inferenceclient"
	"github.com/vfg2006/ad-monitor-api/infrastructure/integrator/webhook/webhookclient"
	"github.com/vfg2006/ad-monitor-api/infrastructure/realtime"
	"github.com/vfg2006/ad-monitor-api/infrastructure/repository"
	"github.com/vfg2006/ad-monitor-api/internal/api"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/scheduler"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/dashboard"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/notifying"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/thresholding"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("invalid log level %q, using info", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	log.Configure(cfg.App.Env)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	metricRowRepo := repository.NewMetricRowRepository(pgConn)
	thresholdRepo := repository.NewThresholdRepository(pgConn)
	alertRepo := repository.NewAlertRepository(pgConn)

	notifier := notifying.NewService(cfg, webhookclient.NewClient(cfg))
	analyzer := analyzing.NewService(cfg, inferenceclient.NewClient(cfg))
	thresholdService := thresholding.NewService(thresholdRepo)
	authenticator := authenticating.NewService(cfg)

	controller := dashboard.NewController(
		metricRowRepo,
		thresholdRepo,
		analyzer,
		notifier,
		dashboard.OptionsFromConfig(cfg),
	)
	defer controller.Wait()

	// Carga inicial; uma falha aqui deixa o dashboard em estado failed, sem derrubar a API
	if err := controller.Refresh(ctx); err != nil {
		logrus.WithError(err).Warn("dashboard: initial load failed")
	}

	subscription := realtime.NewAlertSubscription(postgres.NewListener(cfg.Database), alertRepo)
	events, err := subscription.Subscribe(ctx)
	if err != nil {
		logrus.WithError(err).Error("realtime: alert subscription unavailable")
	} else {
		go controller.Run(ctx, events)
	}

	refreshService := scheduler.NewDashboardRefreshService(controller, cfg)
	if err := refreshService.Start(ctx); err != nil {
		logrus.WithError(err).Error("scheduler: dashboard refresh not started")
	}

	server, err := api.New(cfg, api.Services{
		Database:         pgConn,
		Authenticator:    authenticator,
		Notifier:         notifier,
		Analyzer:         analyzer,
		Thresholds:       thresholdService,
		Dashboard:        controller,
		DashboardRefresh: refreshService,
	})
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}

	cancel()
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("postgres: connection failed")
	}

	logrus.Info("postgres: connection established")
	return conn
}
