package domain

import (
	"context"
	"time"
)

// LevelOfCare describes a care level residents may be assigned
// (independent living, assisted living, memory care, ...).
type LevelOfCare struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Level        int       `json:"level"`
	Requirements []string  `json:"requirements"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

// LevelOfCareRepository defines storage for levels of care.
type LevelOfCareRepository interface {
	// List returns levels ordered by their numeric level.
	List(ctx context.Context, activeOnly bool) ([]*LevelOfCare, error)
}
