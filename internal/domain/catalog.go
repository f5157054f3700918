package domain

import "context"

// CatalogService exposes the supporting-entity list queries consumed by the
// GraphQL layer. These are read-only lookups over reference data.
type CatalogService interface {
	WellnessDimensions(ctx context.Context, activeOnly bool) ([]*WellnessDimension, error)
	Hobbies(ctx context.Context, activeOnly bool, category string) ([]*Hobby, error)
	Tags(ctx context.Context, activeOnly bool) ([]*Tag, error)
	LevelsOfCare(ctx context.Context, activeOnly bool) ([]*LevelOfCare, error)
	Facilitators(ctx context.Context, activeOnly bool, department string) ([]*Facilitator, error)
	Locations(ctx context.Context, activeOnly bool, locationType string) ([]*Location, error)
	EventSeries(ctx context.Context, activeOnly bool) ([]*EventSeries, error)
}
