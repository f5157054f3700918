package domain

import (
	"context"
	"time"
)

// EventSeries groups recurring events under one name.
type EventSeries struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EventSeriesRepository defines storage for event series.
type EventSeriesRepository interface {
	List(ctx context.Context, activeOnly bool) ([]*EventSeries, error)
}
