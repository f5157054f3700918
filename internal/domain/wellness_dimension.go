package domain

import (
	"context"
	"time"
)

// WellnessDimension is one of the community's wellness categories
// (physical, social, intellectual, ...). Events may belong to one dimension.
type WellnessDimension struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Color       string    `json:"color,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// WellnessDimensionRepository defines storage for wellness dimensions.
type WellnessDimensionRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*WellnessDimension, error)
}
