package sqlite

import (
	"context"
	"database/sql"
	"time"

	"wellnesscalendar/internal/domain"
)

type wellnessDimensionRepository struct {
	DB *sql.DB
}

func NewWellnessDimensionRepository(db *sql.DB) domain.WellnessDimensionRepository {
	return &wellnessDimensionRepository{DB: db}
}

func (r *wellnessDimensionRepository) List(ctx context.Context, activeOnly bool) ([]*domain.WellnessDimension, error) {
	query := `
		SELECT id, name, description, color, is_active, created_at
		FROM wellness_dimensions
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

	var dims []*domain.WellnessDimension
	for rows.Next() {
		d := &domain.WellnessDimension{}
		var description, color sql.NullString
		var isActive int
		var createdAt int64
		if err := rows.Scan(&d.ID, &d.Name, &description, &color, &isActive, &createdAt); err != nil {
			return nil, err
		}
		d.Description = description.String
		d.Color = color.String
		d.IsActive = isActive != 0
		d.CreatedAt = time.Unix(createdAt, 0).UTC()
		dims = append(dims, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if dims == nil {
		dims = []*domain.WellnessDimension{}
	}
	return dims, nil
}
