package dashboard

import (
	"time"

	"github.com/vfg2006/ad-monitor-api/internal/domain"
)

type State string

const (
	StateIdle    State = "idle"
	StateLoading State = "loading"
	StateLoaded  State = "loaded"
	StateFailed  State = "failed"
)

// Snapshot é a visão consistente do estado do controller num instante.
// Bucket é o selecionado; RowsBucket é o das linhas em Rows e só muda quando uma carga é aplicada.
type Snapshot struct {
	State       State                  `json:"state"`
	Bucket      domain.TimeBucket      `json:"bucket"`
	RowsBucket  domain.TimeBucket      `json:"rows_bucket,omitempty"`
	Generation  uint64                 `json:"generation"`
	RowCount    int                    `json:"row_count"`
	Rows        []*domain.MetricRow    `json:"rows"`
	LoadedAt    *time.Time             `json:"loaded_at,omitempty"`
	Error       string                 `json:"error,omitempty"`
	AlertCount  int                    `json:"alert_count"`
	LatestAlert *domain.AlertMessage   `json:"latest_alert,omitempty"`
	Analysis    *domain.AnalysisResult `json:"analysis,omitempty"`
}

type MetricCard struct {
	Name     domain.MetricName `json:"name"`
	Value    *float64          `json:"value"`
	Breached bool              `json:"breached"`
}

// Cards são os indicadores da linha mais recente comparados aos limites do anúncio
type Cards struct {
	AdID       string               `json:"ad_id"`
	Row        *domain.MetricRow    `json:"row"`
	Thresholds *domain.ThresholdSet `json:"thresholds"`
	Breaches   domain.Breaches      `json:"breaches"`
	Metrics    []MetricCard         `json:"metrics"`
}
