package domain

import "time"

// ThresholdSet guarda os limites configurados para um anúncio.
// A linha mais recente (maior id) é a que vale; alterações inserem uma nova linha.
type ThresholdSet struct {
	ID             int64      `json:"id"`
	AdID           string     `json:"ad_id"`
	MinUniqueReach *float64   `json:"min_unique_reach"`
	MinImpressions *float64   `json:"min_impressions"`
	MinCTR         *float64   `json:"min_ctr"`
	MinVCR         *float64   `json:"min_vcr"`
	MaxCPM         *float64   `json:"max_cpm"`
	CreatedAt      *time.Time `json:"created_at,omitempty"`
}

// ThresholdInput é o corpo aceito para registrar um novo conjunto de limites
type ThresholdInput struct {
	AdID           string   `json:"ad_id"`
	MinUniqueReach *float64 `json:"min_unique_reach"`
	MinImpressions *float64 `json:"min_impressions"`
	MinCTR         *float64 `json:"min_ctr"`
	MinVCR         *float64 `json:"min_vcr"`
	MaxCPM         *float64 `json:"max_cpm"`
}

func (in ThresholdInput) ThresholdSet() *ThresholdSet {
	return &ThresholdSet{
		AdID:           in.AdID,
		MinUniqueReach: in.MinUniqueReach,
		MinImpressions: in.MinImpressions,
		MinCTR:         in.MinCTR,
		MinVCR:         in.MinVCR,
		MaxCPM:         in.MaxCPM,
	}
}
