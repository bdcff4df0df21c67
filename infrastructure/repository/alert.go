package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-monitor-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-monitor-api/internal/domain"
)

const (
	alertsTable = "alerts"
)

type AlertRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.AlertEvent, error)
}

type alertRepository struct {
	conn postgres.Queryer
}

func NewAlertRepository(conn postgres.Queryer) AlertRepository {
	return &alertRepository{
		conn: conn,
	}
}

// to_json devolve JSON tanto para text[] quanto para jsonb; ::text puro daria o literal {ctr,cpm}
func alertByIDQuery(id int64) (string, []interface{}, error) {
	return squirrel.
		Select("id", "ad_id", "severity", "to_json(breaches)::text", "created_at").
		From(alertsTable).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// GetByID busca o alerta quando a notificação traz apenas o id; nil quando não existe
func (r *alertRepository) GetByID(ctx context.Context, id int64) (*domain.AlertEvent, error) {
	query, args, err := alertByIDQuery(id)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var (
		alert     domain.AlertEvent
		severity  sql.NullString
		breaches  sql.NullString
		createdAt sql.NullTime
	)

	err = r.conn.QueryRowContext(ctx, query, args...).
		Scan(&alert.ID, &alert.AdID, &severity, &breaches, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear alerta: %w", err)
	}

	alert.Severity = severity.String
	if createdAt.Valid {
		alert.CreatedAt = &createdAt.Time
	}

	if breaches.Valid {
		names, err := domain.BreachNames(breaches.String)
		if err != nil {
			return nil, fmt.Errorf("erro ao decodificar breaches do alerta %d: %w", id, err)
		}
		alert.Breaches = names
	}

	return &alert, nil
}
