package dashboard

import (
	"context"

	"github.com/vfg2006/ad-monitor-api/internal/domain"
)

// Dashboard é a superfície do controller usada pela API HTTP
type Dashboard interface {
	Snapshot() Snapshot
	SelectBucket(ctx context.Context, bucket domain.TimeBucket) error
	Refresh(ctx context.Context) error
	AdIDs() []string
	Cards(ctx context.Context, adID string) (*Cards, error)
	ChartSeries(adID string) []domain.ChartPoint
	Alerts() []domain.AlertMessage
	RunAnalysis(ctx context.Context, adID string) (*domain.AnalysisResult, error)
	LatestAnalysis() (*domain.AnalysisResult, bool)
}

var _ Dashboard = (*Controller)(nil)
