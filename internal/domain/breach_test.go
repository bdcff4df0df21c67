package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v float64) *float64 {
	return &v
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name       string
		row        *MetricRow
		thresholds *ThresholdSet
		expected   Breaches
	}{
		{
			name:       "ctr abaixo do mínimo",
			row:        &MetricRow{CTR: ptr(0.01)},
			thresholds: &ThresholdSet{MinCTR: ptr(0.02)},
			expected: Breaches{
				MetricUniqueReach: false,
				MetricImpressions: false,
				MetricCTR:         true,
				MetricVCR:         false,
				MetricCPM:         false,
			},
		},
		{
			name:       "cpm acima do máximo",
			row:        &MetricRow{CPM: ptr(15)},
			thresholds: &ThresholdSet{MaxCPM: ptr(10)},
			expected: Breaches{
				MetricUniqueReach: false,
				MetricImpressions: false,
				MetricCTR:         false,
				MetricVCR:         false,
				MetricCPM:         true,
			},
		},
		{
			name:       "cpm dentro do máximo",
			row:        &MetricRow{CPM: ptr(15)},
			thresholds: &ThresholdSet{MaxCPM: ptr(20)},
			expected: Breaches{
				MetricUniqueReach: false,
				MetricImpressions: false,
				MetricCTR:         false,
				MetricVCR:         false,
				MetricCPM:         false,
			},
		},
		{
			name: "valores iguais aos limites não violam",
			row: &MetricRow{
				UniqueReach: ptr(100),
				Impressions: ptr(1000),
				CTR:         ptr(0.02),
				VCR:         ptr(0.5),
				CPM:         ptr(10),
			},
			thresholds: &ThresholdSet{
				MinUniqueReach: ptr(100),
				MinImpressions: ptr(1000),
				MinCTR:         ptr(0.02),
				MinVCR:         ptr(0.5),
				MaxCPM:         ptr(10),
			},
			expected: Breaches{
				MetricUniqueReach: false,
				MetricImpressions: false,
				MetricCTR:         false,
				MetricVCR:         false,
				MetricCPM:         false,
			},
		},
		{
			name: "todas as métricas violadas",
			row: &MetricRow{
				UniqueReach: ptr(10),
				Impressions: ptr(20),
				CTR:         ptr(0.001),
				VCR:         ptr(0.1),
				CPM:         ptr(99),
			},
			thresholds: &ThresholdSet{
				MinUniqueReach: ptr(100),
				MinImpressions: ptr(1000),
				MinCTR:         ptr(0.02),
				MinVCR:         ptr(0.5),
				MaxCPM:         ptr(10),
			},
			expected: Breaches{
				MetricUniqueReach: true,
				MetricImpressions: true,
				MetricCTR:         true,
				MetricVCR:         true,
				MetricCPM:         true,
			},
		},
		{
			name:       "limite ausente nunca viola, mesmo com zero",
			row:        &MetricRow{UniqueReach: ptr(0), CTR: ptr(0), CPM: ptr(1e12)},
			thresholds: &ThresholdSet{},
			expected: Breaches{
				MetricUniqueReach: false,
				MetricImpressions: false,
				MetricCTR:         false,
				MetricVCR:         false,
				MetricCPM:         false,
			},
		},
		{
			name:       "métrica ausente na linha não viola",
			row:        &MetricRow{},
			thresholds: &ThresholdSet{MinCTR: ptr(0.02), MaxCPM: ptr(10)},
			expected: Breaches{
				MetricUniqueReach: false,
				MetricImpressions: false,
				MetricCTR:         false,
				MetricVCR:         false,
				MetricCPM:         false,
			},
		},
		{
			name: "sem thresholds",
			row:  &MetricRow{CTR: ptr(0.01)},
			expected: Breaches{
				MetricUniqueReach: false,
				MetricImpressions: false,
				MetricCTR:         false,
				MetricVCR:         false,
				MetricCPM:         false,
			},
		},
		{
			name:       "sem linha",
			thresholds: &ThresholdSet{MinCTR: ptr(0.02)},
			expected:   Breaches{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Evaluate(tt.row, tt.thresholds))
		})
	}
}

func TestBreaches_Names(t *testing.T) {
	breaches := Breaches{
		MetricCPM:         true,
		MetricCTR:         true,
		MetricImpressions: false,
	}

	assert.True(t, breaches.Any())
	assert.Equal(t, []string{"ctr", "cpm"}, breaches.Names())
	assert.False(t, Breaches{MetricCTR: false}.Any())
}
