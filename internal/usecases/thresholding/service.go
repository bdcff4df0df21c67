package thresholding

import (
	"context"
	"fmt"
	"strings"

	"github.com/vfg2006/ad-monitor-api/infrastructure/repository"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
	"github.com/vfg2006/ad-monitor-api/pkg/log"
)

type ThresholdService interface {
	Latest(ctx context.Context, adID string) (*domain.ThresholdSet, error)
	Register(ctx context.Context, input domain.ThresholdInput) (*domain.ThresholdSet, error)
}

type Service struct {
	repo repository.ThresholdRepository
}

func NewService(repo repository.ThresholdRepository) ThresholdService {
	return &Service{repo: repo}
}

// Latest retorna o conjunto vigente do anúncio, ou nil quando não há nenhum
func (s *Service) Latest(ctx context.Context, adID string) (*domain.ThresholdSet, error) {
	if strings.TrimSpace(adID) == "" {
		return nil, fmt.Errorf("%w: ad_id", domain.ErrMissingField)
	}
	return s.repo.GetLatestByAdID(ctx, adID)
}

// Register insere um novo conjunto que passa a valer no lugar do anterior
func (s *Service) Register(ctx context.Context, input domain.ThresholdInput) (*domain.ThresholdSet, error) {
	input.AdID = strings.TrimSpace(input.AdID)
	if input.AdID == "" {
		return nil, fmt.Errorf("%w: ad_id", domain.ErrMissingField)
	}

	for name, bound := range map[string]*float64{
		"min_unique_reach": input.MinUniqueReach,
		"min_impressions":  input.MinImpressions,
		"min_ctr":          input.MinCTR,
		"min_vcr":          input.MinVCR,
		"max_cpm":          input.MaxCPM,
	} {
		if bound != nil && *bound < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", ErrInvalidBound, name)
		}
	}

	thresholds := input.ThresholdSet()
	if err := s.repo.Insert(ctx, thresholds); err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"ad_id":        thresholds.AdID,
		"threshold_id": thresholds.ID,
	}).Info("thresholds: new threshold set registered")

	return thresholds, nil
}
