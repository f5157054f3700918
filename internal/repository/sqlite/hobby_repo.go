package sqlite

import (
	"context"
	"database/sql"
	"time"

	"wellnesscalendar/internal/domain"
)

type hobbyRepository struct {
	DB *sql.DB
}

func NewHobbyRepository(db *sql.DB) domain.HobbyRepository {
	return &hobbyRepository{DB: db}
}

func (r *hobbyRepository) List(ctx context.Context, activeOnly bool, category string) ([]*domain.Hobby, error) {
	query := `
		SELECT id, name, description, category, is_active, created_at
		FROM hobbies
		WHERE 1=1
	`
	var args []any
	if activeOnly {
		query += ` AND is_active = 1`
	}
	if category != "" {
		query += ` AND category = ?`
		args = append(args, category)
	}
	query += ` ORDER BY name`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hobbies []*domain.Hobby
	for rows.Next() {
		h := &domain.Hobby{}
		var description, cat sql.NullString
		var isActive int
		var createdAt int64
		if err := rows.Scan(&h.ID, &h.Name, &description, &cat, &isActive, &createdAt); err != nil {
			return nil, err
		}
		h.Description = description.String
		h.Category = cat.String
		h.IsActive = isActive != 0
		h.CreatedAt = time.Unix(createdAt, 0).UTC()
		hobbies = append(hobbies, h)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if hobbies == nil {
		hobbies = []*domain.Hobby{}
	}
	return hobbies, nil
}
