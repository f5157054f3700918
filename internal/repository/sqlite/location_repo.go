package sqlite

import (
	"context"
	"database/sql"
	"time"

	"wellnesscalendar/internal/domain"
)

type locationRepository struct {
	DB *sql.DB
}

func NewLocationRepository(db *sql.DB) domain.LocationRepository {
	return &locationRepository{DB: db}
}

func (r *locationRepository) List(ctx context.Context, activeOnly bool, locationType string) ([]*domain.Location, error) {
	query := `
		SELECT id, name, description, type, capacity, equipment, accessibility,
			is_active, created_at, updated_at
		FROM locations
		WHERE 1=1
	`
	var args []any
	if activeOnly {
		query += ` AND is_active = 1`
	}
	if locationType != "" {
		query += ` AND type = ?`
		args = append(args, locationType)
	}
	query += ` ORDER BY name`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locations []*domain.Location
	for rows.Next() {
		l := &domain.Location{}
		var (
			description, typ         sql.NullString
			capacity                 sql.NullInt64
			equipment, accessibility sql.NullString
			isActive                 int
			createdAt, updatedAt     int64
		)
		err := rows.Scan(&l.ID, &l.Name, &description, &typ, &capacity, &equipment, &accessibility,
			&isActive, &createdAt, &updatedAt)
		if err != nil {
			return nil, err
		}
		l.Description = description.String
		l.Type = typ.String
		if capacity.Valid {
			c := int(capacity.Int64)
			l.Capacity = &c
		}
		l.Equipment = decodeStringList(equipment)
		l.Accessibility = decodeStringList(accessibility)
		l.IsActive = isActive != 0
		l.CreatedAt = time.Unix(createdAt, 0).UTC()
		l.UpdatedAt = time.Unix(updatedAt, 0).UTC()
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if locations == nil {
		locations = []*domain.Location{}
	}
	return locations, nil
}
