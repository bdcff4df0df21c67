package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-monitor-api/infrastructure/repository"
	"github.com/vfg2006/ad-monitor-api/internal/config"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/analyzing"
	"github.com/vfg2006/ad-monitor-api/internal/usecases/notifying"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
	"github.com/vfg2006/ad-monitor-api/pkg/metrics"
	"github.com/vfg2006/ad-monitor-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	defaultRowLimit       = 500
	defaultAnalysisWindow = 30
	defaultMaxAlerts      = 200
)

type Options struct {
	DefaultBucket  domain.TimeBucket
	RowLimit       uint64
	AnalysisWindow int
	MaxAlerts      int
}

func OptionsFromConfig(cfg *config.Config) Options {
	return Options{
		DefaultBucket:  domain.TimeBucket(cfg.Dashboard.DefaultBucket),
		RowLimit:       cfg.Dashboard.RowLimit,
		AnalysisWindow: cfg.Dashboard.AnalysisWindow,
		MaxAlerts:      cfg.Dashboard.MaxAlerts,
	}
}

func (o Options) withDefaults() Options {
	if !o.DefaultBucket.Valid() {
		o.DefaultBucket = domain.TimeBucketDaily
	}
	if o.RowLimit == 0 {
		o.RowLimit = defaultRowLimit
	}
	if o.AnalysisWindow <= 0 {
		o.AnalysisWindow = defaultAnalysisWindow
	}
	if o.MaxAlerts <= 0 {
		o.MaxAlerts = defaultMaxAlerts
	}
	return o
}

// Controller mantém o conjunto de linhas do bucket selecionado, a lista de
// alertas recebidos e a última análise. Leituras ao banco acontecem fora do lock;
// a geração decide qual carga prevalece.
type Controller struct {
	rows       repository.MetricRowRepository
	thresholds repository.ThresholdRepository
	analyzer   analyzing.Analyzer
	notifier   notifying.Notifier
	opts       Options
	now        func() time.Time

	mu         sync.RWMutex
	state      State
	bucket     domain.TimeBucket
	rowSet     []*domain.MetricRow
	rowsBucket domain.TimeBucket
	loadedAt   time.Time
	loadErr    string
	generation uint64
	cancelLoad context.CancelFunc
	alerts     []domain.AlertMessage
	seq        uint64
	analysis   *domain.AnalysisResult

	notifications sync.WaitGroup
}

func NewController(
	rows repository.MetricRowRepository,
	thresholds repository.ThresholdRepository,
	analyzer analyzing.Analyzer,
	notifier notifying.Notifier,
	opts Options,
) *Controller {
	return &Controller{
		rows:       rows,
		thresholds: thresholds,
		analyzer:   analyzer,
		notifier:   notifier,
		opts:       opts.withDefaults(),
		now:        time.Now,
		state:      StateIdle,
	}
}

// SelectBucket troca o bucket e recarrega as linhas. Se outra seleção começar
// antes desta terminar, esta é cancelada e retorna ErrStaleLoad sem alterar o estado.
func (c *Controller) SelectBucket(ctx context.Context, bucket domain.TimeBucket) error {
	if !bucket.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidBucket, bucket)
	}

	c.mu.Lock()
	c.generation++
	generation := c.generation
	if c.cancelLoad != nil {
		c.cancelLoad()
	}
	loadCtx, cancel := context.WithCancel(ctx)
	c.cancelLoad = cancel
	c.bucket = bucket
	c.state = StateLoading
	c.mu.Unlock()
	defer cancel()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"bucket":     bucket,
		"generation": generation,
	})

	rows, err := c.rows.ListByBucket(loadCtx, bucket, c.opts.RowLimit)

	c.mu.Lock()
	defer c.mu.Unlock()

	if generation != c.generation {
		metrics.DashboardLoadsTotal.WithLabelValues(string(bucket), metrics.OutcomeStale).Inc()
		logger.Debug("dashboard: discarding stale load")
		return ErrStaleLoad
	}
	c.cancelLoad = nil

	if err != nil {
		c.state = StateFailed
		c.rowSet = nil
		c.rowsBucket = ""
		c.loadErr = err.Error()
		metrics.DashboardLoadsTotal.WithLabelValues(string(bucket), metrics.OutcomeFailed).Inc()
		metrics.DashboardRows.Set(0)
		logger.WithError(err).Error("dashboard: failed to load rows")
		return err
	}

	c.state = StateLoaded
	c.rowSet = rows
	c.rowsBucket = bucket
	c.loadErr = ""
	c.loadedAt = c.now()
	metrics.DashboardLoadsTotal.WithLabelValues(string(bucket), metrics.OutcomeApplied).Inc()
	metrics.DashboardRows.Set(float64(len(rows)))
	logger.Infof("dashboard: loaded %d rows", len(rows))

	return nil
}

// Refresh recarrega o bucket atual, ou o padrão quando nada foi selecionado
func (c *Controller) Refresh(ctx context.Context) error {
	c.mu.RLock()
	bucket := c.bucket
	c.mu.RUnlock()

	if bucket == "" {
		bucket = c.opts.DefaultBucket
	}

	return c.SelectBucket(ctx, bucket)
}

// Run consome os eventos da assinatura até ctx terminar ou o canal fechar
func (c *Controller) Run(ctx context.Context, events <-chan domain.AlertEvent) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				log.L.Warn("dashboard: alert subscription closed")
				return
			}
			c.ReceiveAlert(ctx, event)
		}
	}
}

// ReceiveAlert numera o evento, coloca-o no topo da lista e dispara a notificação em segundo plano
func (c *Controller) ReceiveAlert(ctx context.Context, event domain.AlertEvent) domain.AlertMessage {
	c.mu.Lock()
	c.seq++
	message := domain.AlertMessage{
		Seq:        c.seq,
		ReceivedAt: c.now(),
		Event:      event,
	}

	alerts := make([]domain.AlertMessage, 0, min(len(c.alerts)+1, c.opts.MaxAlerts))
	alerts = append(alerts, message)
	alerts = append(alerts, c.alerts...)
	if len(alerts) > c.opts.MaxAlerts {
		alerts = alerts[:c.opts.MaxAlerts]
	}
	c.alerts = alerts
	c.mu.Unlock()

	severity := event.Severity
	if severity == "" {
		severity = "unknown"
	}
	metrics.AlertsReceivedTotal.WithLabelValues(severity).Inc()

	log.L.WithFields(log.Fields{
		"ad_id": event.AdID,
		"seq":   message.Seq,
	}).Info("dashboard: alert received")

	notifyCtx := context.WithoutCancel(ctx)
	notification := event.Notification()

	c.notifications.Add(1)
	go func() {
		defer c.notifications.Done()
		c.notifier.NotifyBestEffort(notifyCtx, notification)
	}()

	return message
}

// Wait bloqueia até todas as notificações disparadas terminarem
func (c *Controller) Wait() {
	c.notifications.Wait()
}

// Alerts retorna os alertas do mais recente para o mais antigo
func (c *Controller) Alerts() []domain.AlertMessage {
	c.mu.RLock()
	defer c.mu.RUnlock()

	alerts := make([]domain.AlertMessage, len(c.alerts))
	copy(alerts, c.alerts)
	return alerts
}

func (c *Controller) LatestAlert() (domain.AlertMessage, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if len(c.alerts) == 0 {
		return domain.AlertMessage{}, false
	}
	return c.alerts[0], true
}

func (c *Controller) Snapshot() Snapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	snapshot := Snapshot{
		State:      c.state,
		Bucket:     c.bucket,
		RowsBucket: c.rowsBucket,
		Generation: c.generation,
		RowCount:   len(c.rowSet),
		Rows:       append([]*domain.MetricRow(nil), c.rowSet...),
		Error:      c.loadErr,
		AlertCount: len(c.alerts),
		Analysis:   c.analysis,
	}
	if !c.loadedAt.IsZero() {
		loadedAt := c.loadedAt
		snapshot.LoadedAt = &loadedAt
	}
	if len(c.alerts) > 0 {
		latest := c.alerts[0]
		snapshot.LatestAlert = &latest
	}

	return snapshot
}

// AdIDs lista os anúncios distintos na ordem em que aparecem nas linhas
func (c *Controller) AdIDs() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	ids := make([]string, 0)
	for _, row := range c.rowSet {
		if seen[row.AdID] {
			continue
		}
		seen[row.AdID] = true
		ids = append(ids, row.AdID)
	}
	return ids
}

// rowsFor retorna as linhas do anúncio (todas quando adID é vazio), até limit; exige o lock
func (c *Controller) rowsFor(adID string, limit int) []*domain.MetricRow {
	rows := make([]*domain.MetricRow, 0)
	for _, row := range c.rowSet {
		if limit > 0 && len(rows) >= limit {
			break
		}
		if adID == "" || row.AdID == adID {
			rows = append(rows, row)
		}
	}
	return rows
}

// Cards avalia a linha mais recente do anúncio (ou a mais recente de todas) contra os limites atuais
func (c *Controller) Cards(ctx context.Context, adID string) (*Cards, error) {
	c.mu.RLock()
	rows := c.rowsFor(adID, 1)
	c.mu.RUnlock()

	if len(rows) == 0 {
		return nil, ErrNoRowsForAd
	}
	latest := rows[0]

	thresholds, err := c.thresholds.GetLatestByAdID(ctx, latest.AdID)
	if err != nil {
		return nil, err
	}

	breaches := domain.Evaluate(latest, thresholds)

	cards := make([]MetricCard, 0, len(domain.MetricNames))
	for _, name := range domain.MetricNames {
		card := MetricCard{Name: name, Breached: breaches[name]}
		if value, ok := latest.Value(name); ok {
			card.Value = &value
		}
		cards = append(cards, card)
	}

	return &Cards{
		AdID:       latest.AdID,
		Row:        latest,
		Thresholds: thresholds,
		Breaches:   breaches,
		Metrics:    cards,
	}, nil
}

// ChartSeries devolve os pontos do anúncio (ou de todas as linhas) em ordem cronológica
func (c *Controller) ChartSeries(adID string) []domain.ChartPoint {
	c.mu.RLock()
	rows := c.rowsFor(adID, 0)
	c.mu.RUnlock()

	return domain.BuildChartSeries(rows)
}

// RunAnalysis envia as linhas mais recentes do anúncio e seus limites ao analisador.
// O bucket enviado é o das linhas aplicadas, mesmo com uma nova carga em andamento.
// Falhas são devolvidas ao chamador sem retry.
func (c *Controller) RunAnalysis(ctx context.Context, adID string) (*domain.AnalysisResult, error) {
	if adID == "" {
		return nil, ErrNoAdSelected
	}

	c.mu.RLock()
	rows := c.rowsFor(adID, c.opts.AnalysisWindow)
	bucket := c.rowsBucket
	c.mu.RUnlock()

	if len(rows) == 0 {
		return nil, ErrNoRowsForAd
	}

	thresholds, err := c.thresholds.GetLatestByAdID(ctx, adID)
	if err != nil {
		return nil, err
	}

	req, err := buildAnalysisRequest(adID, rows, thresholds, bucket)
	if err != nil {
		return nil, err
	}

	content, err := c.analyzer.Analyze(ctx, req)
	if err != nil {
		return nil, err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return nil, err
	}

	result := &domain.AnalysisResult{
		ID:        id,
		AdID:      adID,
		Bucket:    bucket,
		Content:   content,
		Report:    domain.ParseAnalysisReport(content),
		CreatedAt: c.now(),
	}

	c.mu.Lock()
	c.analysis = result
	c.mu.Unlock()

	return result, nil
}

func (c *Controller) LatestAnalysis() (*domain.AnalysisResult, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.analysis, c.analysis != nil
}

func buildAnalysisRequest(
	adID string,
	rows []*domain.MetricRow,
	thresholds *domain.ThresholdSet,
	bucket domain.TimeBucket,
) (domain.AnalysisRequest, error) {
	ad, err := json.Marshal(map[string]string{"id": adID})
	if err != nil {
		return domain.AnalysisRequest{}, err
	}

	metricsJSON, err := json.Marshal(rows)
	if err != nil {
		return domain.AnalysisRequest{}, err
	}

	thresholdsJSON := []byte("{}")
	if thresholds != nil {
		if thresholdsJSON, err = json.Marshal(thresholds); err != nil {
			return domain.AnalysisRequest{}, err
		}
	}

	bucketJSON, err := json.Marshal(bucket)
	if err != nil {
		return domain.AnalysisRequest{}, err
	}

	return domain.AnalysisRequest{
		Ad:         ad,
		Metrics:    metricsJSON,
		Thresholds: thresholdsJSON,
		Bucket:     bucketJSON,
	}, nil
}
