package domain

// Breaches mapeia cada métrica para a indicação de violação do seu limite
type Breaches map[MetricName]bool

// Any indica se pelo menos uma métrica violou o limite
func (b Breaches) Any() bool {
	for _, breached := range b {
		if breached {
			return true
		}
	}
	return false
}

// Names lista as métricas violadas na ordem de MetricNames
func (b Breaches) Names() []string {
	names := make([]string, 0, len(b))
	for _, name := range MetricNames {
		if b[name] {
			names = append(names, string(name))
		}
	}
	return names
}

// Evaluate compara uma linha de métricas com o conjunto de limites do anúncio.
//
// Limite ausente significa "sem restrição" e nunca gera violação, assim como
// métrica ausente na linha. Os limites mínimos e o máximo de CPM usam
// desigualdade estrita: um valor igual ao limite não é violação.
func Evaluate(row *MetricRow, thresholds *ThresholdSet) Breaches {
	breaches := make(Breaches, len(MetricNames))
	if row == nil {
		return breaches
	}

	for _, name := range MetricNames {
		breaches[name] = false
	}
	if thresholds == nil {
		return breaches
	}

	breaches[MetricUniqueReach] = below(row.UniqueReach, thresholds.MinUniqueReach)
	breaches[MetricImpressions] = below(row.Impressions, thresholds.MinImpressions)
	breaches[MetricCTR] = below(row.CTR, thresholds.MinCTR)
	breaches[MetricVCR] = below(row.VCR, thresholds.MinVCR)
	breaches[MetricCPM] = above(row.CPM, thresholds.MaxCPM)

	return breaches
}

func below(value, min *float64) bool {
	return value != nil && min != nil && *value < *min
}

func above(value, max *float64) bool {
	return value != nil && max != nil && *value > *max
}
