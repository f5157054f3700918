package domain

import (
	"context"
	"time"
)

// Hobby is a resident interest that events can be matched against.
type Hobby struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// HobbyRepository defines storage for hobbies.
type HobbyRepository interface {
	// List returns hobbies ordered by name, optionally restricted to active
	// ones and/or a category.
	List(ctx context.Context, activeOnly bool, category string) ([]*Hobby, error)
}
