package scheduler

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/dashboard"
)

type stubRefresher struct {
	calls atomic.Int32
	err   error
	block chan struct{}
}

func (r *stubRefresher) Refresh(ctx context.Context) error {
	r.calls.Add(1)
	if r.block != nil {
		<-r.block
	}
	return r.err
}

func newTestService(refresher Refresher, enabled bool) *DashboardRefreshService {
	return NewDashboardRefreshService(refresher, &config.Config{
		DashboardRefresh: config.DashboardRefresh{CronSchedule: "*/5 * * * *", Enabled: enabled},
	})
}

func TestDashboardRefreshService_refresh(t *testing.T) {
	t.Run("success clears error", func(t *testing.T) {
		refresher := &stubRefresher{}
		s := newTestService(refresher, true)
		s.lastError = "old"

		s.refresh()

		status := s.GetStatus()
		assert.Equal(t, int32(1), refresher.calls.Load())
		assert.Equal(t, "", status["last_error"])
		assert.Equal(t, false, status["running"])
		assert.False(t, status["last_refresh_completed_at"].(time.Time).IsZero())
	})

	t.Run("failure is recorded", func(t *testing.T) {
		s := newTestService(&stubRefresher{err: errors.New("db down")}, true)

		s.refresh()

		assert.Equal(t, "db down", s.GetStatus()["last_error"])
	})

	t.Run("stale load is not an error", func(t *testing.T) {
		s := newTestService(&stubRefresher{err: dashboard.ErrStaleLoad}, true)

		s.refresh()

		assert.Equal(t, "", s.GetStatus()["last_error"])
	})
}

func TestDashboardRefreshService_SkipsWhileRunning(t *testing.T) {
	refresher := &stubRefresher{block: make(chan struct{})}
	s := newTestService(refresher, true)

	done := make(chan struct{})
	go func() {
		s.refresh()
		close(done)
	}()

	require.Eventually(t, func() bool { return refresher.calls.Load() == 1 }, time.Second, 5*time.Millisecond)

	s.refresh()
	s.TriggerManualSync()
	assert.Equal(t, true, s.GetStatus()["running"])

	close(refresher.block)
	<-done
	assert.Equal(t, int32(1), refresher.calls.Load())
}

func TestDashboardRefreshService_StartDisabled(t *testing.T) {
	refresher := &stubRefresher{}
	s := newTestService(refresher, false)

	require.NoError(t, s.Start(context.Background()))
	assert.Equal(t, false, s.GetStatus()["refresh_enabled"])
}

func TestDashboardRefreshService_StartInvalidCron(t *testing.T) {
	s := NewDashboardRefreshService(&stubRefresher{}, &config.Config{
		DashboardRefresh: config.DashboardRefresh{CronSchedule: "not a cron", Enabled: true},
	})

	assert.Error(t, s.Start(context.Background()))
}
