package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-monitor-api/internal/api/handler"
	"github.com/vfg2006/ad-monitor-api/internal/api/handler/router"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/scheduler"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/dashboard"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/notifying"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/thresholding"
	"github.com/vfg2006/ad-monitor-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

// Services agrupa as dependências expostas pela API
type Services struct {
	Database         handler.Pinger
	Authenticator    authenticating.Authenticator
	Notifier         notifying.Notifier
	Analyzer         analyzing.Analyzer
	Thresholds       thresholding.ThresholdService
	Dashboard        dashboard.Dashboard
	DashboardRefresh *scheduler.DashboardRefreshService
}

func New(config *config.Config, services Services) (*Server, error) {
	cronServices := handler.CronJobServices{}
	if services.DashboardRefresh != nil {
		cronServices.DashboardRefreshService = services.DashboardRefresh
	}

	analysisLimiter := middleware.NewLimiter(config.RateLimit.AnalysisPerMinute, config.RateLimit.AnalysisBurst)

	rt := router.New(
		router.WithRoutes(handler.Healthcheck(services.Database)...),
		router.WithHandler(http.MethodGet, "/metrics", promhttp.Handler()),
		router.WithRoutes(handler.Proxies(services.Notifier, services.Analyzer, analysisLimiter)...),
		router.WithRoutes(handler.Authentication(services.Authenticator)...),
		router.WithRoutes(handler.Dashboard(services.Dashboard, analysisLimiter)...),
		router.WithRoutes(handler.Thresholds(services.Thresholds)...),
		router.WithRoutes(handler.CronJobs(cronServices)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(config.Server.AllowedOrigins),
		middleware.AuthMiddleware(services.Authenticator),
	}

	handler := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           handler,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

// Handler expõe a cadeia completa, usado nos testes
func (s Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("server: starting")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("server: listen failed")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("server: interrupt signal received")
	case <-ctx.Done():
		logrus.Info("server: application context cancelled")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("server: graceful shutdown")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server: shutdown failed")
		return err
	}

	logrus.Info("server: stopped")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
