package domain

import (
	"time"

	"github.com/vfg2006/ad-monitor-api/pkg/utils"
)

// ChartPoint é um ponto da série temporal; CTR e VCR em porcentagem
type ChartPoint struct {
	Timestamp time.Time `json:"ts"`
	CTR       *float64  `json:"CTR"`
	VCR       *float64  `json:"VCR"`
	CPM       *float64  `json:"CPM"`
}

// BuildChartSeries recebe linhas da mais recente para a mais antiga e
// devolve os pontos em ordem cronológica
func BuildChartSeries(rows []*MetricRow) []ChartPoint {
	points := make([]ChartPoint, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		row := rows[i]
		points = append(points, ChartPoint{
			Timestamp: row.Timestamp,
			CTR:       percent(row.CTR),
			VCR:       percent(row.VCR),
			CPM:       row.CPM,
		})
	}
	return points
}

func percent(v *float64) *float64 {
	if v == nil {
		return nil
	}
	p := utils.Percentage(*v)
	return &p
}
