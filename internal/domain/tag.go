package domain

import (
	"context"
	"time"
)

// Tag is a free-form label attached to events.
type Tag struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TagRepository defines storage for tags.
type TagRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*Tag, error)
}
