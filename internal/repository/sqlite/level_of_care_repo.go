package sqlite

import (
	"context"
	"database/sql"
	"time"

	"wellnesscalendar/internal/domain"
)

type levelOfCareRepository struct {
	DB *sql.DB
}

func NewLevelOfCareRepository(db *sql.DB) domain.LevelOfCareRepository {
	return &levelOfCareRepository{DB: db}
}

func (r *levelOfCareRepository) List(ctx context.Context, activeOnly bool) ([]*domain.LevelOfCare, error) {
	query := `
		SELECT id, name, description, level, requirements, is_active, created_at
		FROM levels_of_care
	`
	if activeOnly {
		query += ` WHERE is_active = 1`
	}
	query += ` ORDER BY level`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var levels []*domain.LevelOfCare
	for rows.Next() {
		l := &domain.LevelOfCare{}
		var description, requirements sql.NullString
		var isActive int
		var createdAt int64
		if err := rows.Scan(&l.ID, &l.Name, &description, &l.Level, &requirements, &isActive, &createdAt); err != nil {
			return nil, err
		}
		l.Description = description.String
		l.Requirements = decodeStringList(requirements)
		l.IsActive = isActive != 0
		l.CreatedAt = time.Unix(createdAt, 0).UTC()
		levels = append(levels, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if levels == nil {
		levels = []*domain.LevelOfCare{}
	}
	return levels, nil
}
