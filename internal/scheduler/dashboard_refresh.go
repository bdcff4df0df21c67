package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/dashboard"
)

const refreshTimeout = 2 * time.Minute

// Refresher recarrega o bucket atual do dashboard
type Refresher interface {
	Refresh(ctx context.Context) error
}

// DashboardRefreshConfig representa a configuração do agendador de atualização
type DashboardRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// DashboardRefreshService recarrega periodicamente as linhas do bucket selecionado
type DashboardRefreshService struct {
	scheduler *gocron.Scheduler
	config    DashboardRefreshConfig
	refresher Refresher
	baseCtx   context.Context

	mu                     sync.Mutex
	running                bool
	lastRefreshStartedAt   time.Time
	lastRefreshCompletedAt time.Time
	lastError              string
}

func NewDashboardRefreshService(refresher Refresher, appConfig *config.Config) *DashboardRefreshService {
	refreshConfig := DashboardRefreshConfig{
		CronSchedule: appConfig.DashboardRefresh.CronSchedule,
		Enabled:      appConfig.DashboardRefresh.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   refreshConfig.CronSchedule,
		"refresh_enabled": refreshConfig.Enabled,
	}).Info("Configuração do agendador de atualização do dashboard carregada")

	return &DashboardRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		refresher: refresher,
		baseCtx:   context.Background(),
	}
}

// Start inicia o agendador; não faz nada quando desabilitado por configuração
func (s *DashboardRefreshService) Start(ctx context.Context) error {
	s.baseCtx = ctx

	if !s.config.Enabled {
		logrus.Info("Atualização periódica do dashboard desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de atualização do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.refresh()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar atualização do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de atualização do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *DashboardRefreshService) refresh() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Atualização do dashboard já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastRefreshStartedAt = time.Now()
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(s.baseCtx, refreshTimeout)
	defer cancel()

	err := s.refresher.Refresh(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.running = false
	s.lastRefreshCompletedAt = time.Now()

	switch {
	case err == nil:
		s.lastError = ""
		logrus.WithField("duration", s.lastRefreshCompletedAt.Sub(s.lastRefreshStartedAt)).Info("Atualização do dashboard concluída")
	case errors.Is(err, dashboard.ErrStaleLoad):
		s.lastError = ""
		logrus.Debug("Atualização do dashboard substituída por uma seleção mais recente")
	default:
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro ao atualizar o dashboard")
	}
}

// TriggerManualSync dispara uma atualização fora do agendamento
func (s *DashboardRefreshService) TriggerManualSync() {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		logrus.Info("Atualização do dashboard já em andamento, ignorando solicitação manual")
		return
	}
	s.mu.Unlock()

	logrus.Info("Iniciando atualização manual do dashboard")
	go s.refresh()
}

// GetStatus retorna o status atual do agendador
func (s *DashboardRefreshService) GetStatus() map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]any{
		"refresh_enabled":           s.config.Enabled,
		"refresh_cron":              s.config.CronSchedule,
		"running":                   s.running,
		"last_refresh_started_at":   s.lastRefreshStartedAt,
		"last_refresh_completed_at": s.lastRefreshCompletedAt,
		"last_error":                s.lastError,
	}
}
