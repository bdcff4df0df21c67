package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
)

const (
	thresholdsTable = "thresholds"
)

type ThresholdRepository interface {
	GetLatestByAdID(ctx context.Context, adID string) (*domain.ThresholdSet, error)
	Insert(ctx context.Context, thresholds *domain.ThresholdSet) error
}

type thresholdRepository struct {
	conn postgres.Queryer
}

func NewThresholdRepository(conn postgres.Queryer) ThresholdRepository {
	return &thresholdRepository{
		conn: conn,
	}
}

func latestThresholdQuery(adID string) (string, []interface{}, error) {
	return squirrel.
		Select("id", "ad_id", "min_unique_reach", "min_impressions", "min_ctr", "min_vcr", "max_cpm", "created_at").
		From(thresholdsTable).
		Where(squirrel.Eq{"ad_id": adID}).
		OrderBy("id DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func insertThresholdQuery(t *domain.ThresholdSet) (string, []interface{}, error) {
	return squirrel.
		Insert(thresholdsTable).
		Columns("ad_id", "min_unique_reach", "min_impressions", "min_ctr", "min_vcr", "max_cpm").
		Values(
			t.AdID,
			nullableFloat(t.MinUniqueReach),
			nullableFloat(t.MinImpressions),
			nullableFloat(t.MinCTR),
			nullableFloat(t.MinVCR),
			nullableFloat(t.MaxCPM),
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// GetLatestByAdID retorna o conjunto de maior id do anúncio, ou nil quando não existe
func (r *thresholdRepository) GetLatestByAdID(ctx context.Context, adID string) (*domain.ThresholdSet, error) {
	query, args, err := latestThresholdQuery(adID)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		t         domain.ThresholdSet
		reach     sql.NullFloat64
		impr      sql.NullFloat64
		ctr       sql.NullFloat64
		vcr       sql.NullFloat64
		cpm       sql.NullFloat64
		createdAt sql.NullTime
	)

	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&t.ID, &t.AdID, &reach, &impr, &ctr, &vcr, &cpm, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear thresholds: %w", err)
	}

	t.MinUniqueReach = nullFloat(reach)
	t.MinImpressions = nullFloat(impr)
	t.MinCTR = nullFloat(ctr)
	t.MinVCR = nullFloat(vcr)
	t.MaxCPM = nullFloat(cpm)
	if createdAt.Valid {
		t.CreatedAt = &createdAt.Time
	}

	return &t, nil
}

// Insert grava um novo conjunto; o anterior continua na tabela mas deixa de valer
func (r *thresholdRepository) Insert(ctx context.Context, thresholds *domain.ThresholdSet) error {
	query, args, err := insertThresholdQuery(thresholds)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	var createdAt time.Time
	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&thresholds.ID, &createdAt); err != nil {
		return fmt.Errorf("erro ao inserir thresholds: %w", err)
	}
	thresholds.CreatedAt = &createdAt

	return nil
}
