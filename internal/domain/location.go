package domain

import (
	"context"
	"time"
)

// Location is a place events are held in.
type Location struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	Type          string    `json:"type,omitempty"`
	Capacity      *int      `json:"capacity,omitempty"`
	Equipment     []string  `json:"equipment"`
	Accessibility []string  `json:"accessibility"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// LocationRepository defines storage for locations.
type LocationRepository interface {
	// List returns locations ordered by name, optionally restricted to active
	// ones and/or a type (room, outdoor, hall, gym).
	List(ctx context.Context, activeOnly bool, locationType string) ([]*Location, error)
}
