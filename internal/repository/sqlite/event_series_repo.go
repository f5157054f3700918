package sqlite

import (
	"context"
	"database/sql"
	"time"

	"wellnesscalendar/internal/domain"
)

type eventSeriesRepository struct {
	DB *sql.DB
}

func NewEventSeriesRepository(db *sql.DB) domain.EventSeriesRepository {
	return &eventSeriesRepository{DB: db}
}

func (r *eventSeriesRepository) List(ctx context.Context, activeOnly bool) ([]*domain.EventSeries, error) {
	query := `
		SELECT id, name, description, is_active, created_at, updated_at
		FROM event_series
	`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY name`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []*domain.EventSeries
	for rows.Next() {
		s := &domain.EventSeries{}
		var description sql.NullString
		var isActive int
		var createdAt, updatedAt int64
		if err := rows.Scan(&s.ID, &s.Name, &description, &isActive, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		s.Description = description.String
		s.IsActive = isActive != 0
		s.CreatedAt = time.Unix(createdAt, 0).UTC()
		s.UpdatedAt = time.Unix(updatedAt, 0).UTC()
		series = append(series, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if series == nil {
		series = []*domain.EventSeries{}
	}
	return series, nil
}
