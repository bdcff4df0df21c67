package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
)

const (
	metricRowsTable = "ad_metrics"
)

var metricRowColumns = []string{
	"id", "ad_id", "ts", "time_bucket",
	"unique_reach", "impressions", "ctr", "vcr", "cpm",
}

type MetricRowRepository interface {
	ListByBucket(ctx context.Context, bucket domain.TimeBucket, limit uint64) ([]*domain.MetricRow, error)
}

type metricRowRepository struct {
	conn postgres.Queryer
}

func NewMetricRowRepository(conn postgres.Queryer) MetricRowRepository {
	return &metricRowRepository{
		conn: conn,
	}
}

func listByBucketQuery(bucket domain.TimeBucket, limit uint64) (string, []interface{}, error) {
	return squirrel.
		Select(metricRowColumns...).
		From(metricRowsTable).
		Where(squirrel.Eq{"time_bucket": string(bucket)}).
		OrderBy("ts DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// ListByBucket retorna as linhas mais recentes do bucket, da mais nova para a mais antiga
func (r *metricRowRepository) ListByBucket(ctx context.Context, bucket domain.TimeBucket, limit uint64) ([]*domain.MetricRow, error) {
	query, args, err := listByBucketQuery(bucket, limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar métricas: %w", err)
	}
	defer rows.Close()

	result := make([]*domain.MetricRow, 0, limit)
	for rows.Next() {
		row, err := scanMetricRow(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear métrica: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar métricas: %w", err)
	}

	return result, nil
}

func scanMetricRow(rows *sql.Rows) (*domain.MetricRow, error) {
	var (
		row    domain.MetricRow
		bucket string
		reach  sql.NullFloat64
		impr   sql.NullFloat64
		ctr    sql.NullFloat64
		vcr    sql.NullFloat64
		cpm    sql.NullFloat64
	)

	if err := rows.Scan(&row.ID, &row.AdID, &row.Timestamp, &bucket, &reach, &impr, &ctr, &vcr, &cpm); err != nil {
		return nil, err
	}

	row.TimeBucket = domain.TimeBucket(bucket)
	row.UniqueReach = nullFloat(reach)
	row.Impressions = nullFloat(impr)
	row.CTR = nullFloat(ctr)
	row.VCR = nullFloat(vcr)
	row.CPM = nullFloat(cpm)

	return &row, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

func nullableFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}
