package domain

import (
	"fmt"
	"time"
)

// TimeBucket é a granularidade de agregação de uma linha de métricas
type TimeBucket string

const (
	TimeBucketHourly  TimeBucket = "hourly"
	TimeBucketDaily   TimeBucket = "daily"
	TimeBucketWeekly  TimeBucket = "weekly"
	TimeBucketMonthly TimeBucket = "monthly"
)

func (b TimeBucket) Valid() bool {
	switch b {
	case TimeBucketHourly, TimeBucketDaily, TimeBucketWeekly, TimeBucketMonthly:
		return true
	}
	return false
}

func ParseTimeBucket(s string) (TimeBucket, error) {
	bucket := TimeBucket(s)
	if !bucket.Valid() {
		return "", fmt.Errorf("invalid time bucket: %q", s)
	}
	return bucket, nil
}

// MetricName identifica uma métrica avaliada contra os thresholds
type MetricName string

const (
	MetricUniqueReach MetricName = "unique_reach"
	MetricImpressions MetricName = "impressions"
	MetricCTR         MetricName = "ctr"
	MetricVCR         MetricName = "vcr"
	MetricCPM         MetricName = "cpm"
)

// MetricNames na ordem de exibição dos cards
var MetricNames = []MetricName{
	MetricUniqueReach,
	MetricImpressions,
	MetricCTR,
	MetricVCR,
	MetricCPM,
}

// MetricRow é uma linha imutável da tabela ad_metrics
type MetricRow struct {
	ID          int64      `json:"id"`
	AdID        string     `json:"ad_id"`
	Timestamp   time.Time  `json:"ts"`
	TimeBucket  TimeBucket `json:"time_bucket"`
	UniqueReach *float64   `json:"unique_reach"`
	Impressions *float64   `json:"impressions"`
	CTR         *float64   `json:"ctr"`
	VCR         *float64   `json:"vcr"`
	CPM         *float64   `json:"cpm"`
}

// Value retorna o valor da métrica e se ele está presente na linha
func (r *MetricRow) Value(name MetricName) (float64, bool) {
	if r == nil {
		return 0, false
	}

	var v *float64
	switch name {
	case MetricUniqueReach:
		v = r.UniqueReach
	case MetricImpressions:
		v = r.Impressions
	case MetricCTR:
		v = r.CTR
	case MetricVCR:
		v = r.VCR
	case MetricCPM:
		v = r.CPM
	}

	if v == nil {
		return 0, false
	}
	return *v, true
}
