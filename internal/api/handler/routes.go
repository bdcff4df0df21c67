package handler

import (
	"net/http"

	"github.com/vfg2006/ad-monitor-api/internal/api/handler/router"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/authenticating"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/dashboard"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/notifying"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/thresholding"
	"github.com/vfg2006/ad-monitor-api/pkg/middleware"
	"golang.org/x/time/rate"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

// Proxies expõe os dois endpoints serverless; são públicos, a análise tem limite de taxa
func Proxies(notifier notifying.Notifier, analyzer analyzing.Analyzer, analysisLimiter *rate.Limiter) []router.Route {
	return []router.Route{
		{
			Path:    "/api/notify",
			Method:  http.MethodPost,
			Handler: Notify(notifier),
		},
		{
			Path:        "/api/analyze",
			Method:      http.MethodPost,
			Handler:     Analyze(analyzer),
			Middlewares: []func(http.Handler) http.Handler{middleware.RateLimit(analysisLimiter)},
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Dashboard(controller dashboard.Dashboard, analysisLimiter *rate.Limiter) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard",
			Method:      http.MethodGet,
			Handler:     GetDashboard(controller),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/bucket",
			Method:      http.MethodPut,
			Handler:     SelectBucket(controller),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/refresh",
			Method:      http.MethodPost,
			Handler:     RefreshDashboard(controller),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/ads",
			Method:      http.MethodGet,
			Handler:     ListAds(controller),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/cards",
			Method:      http.MethodGet,
			Handler:     GetCards(controller),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/dashboard/chart",
			Method:      http.MethodGet,
			Handler:     GetChart(controller),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:    "/v1/dashboard/analysis",
			Method:  http.MethodPost,
			Handler: RunAnalysis(controller),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.AllRoles(),
				middleware.RateLimit(analysisLimiter),
			},
		},
		{
			Path:        "/v1/dashboard/analysis",
			Method:      http.MethodGet,
			Handler:     GetLatestAnalysis(controller),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/alerts",
			Method:      http.MethodGet,
			Handler:     ListAlerts(controller),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Thresholds(service thresholding.ThresholdService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/thresholds/:ad_id",
			Method:      http.MethodGet,
			Handler:     GetThresholds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/thresholds",
			Method:      http.MethodPost,
			Handler:     CreateThresholds(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
