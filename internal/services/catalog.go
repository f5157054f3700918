package services

import (
	"context"
	"fmt"

	"wellnesscalendar/internal/domain"
)

type catalogService struct {
	dimensionRepo   domain.WellnessDimensionRepository
	hobbyRepo       domain.HobbyRepository
	tagRepo         domain.TagRepository
	levelOfCareRepo domain.LevelOfCareRepository
	facilitatorRepo domain.FacilitatorRepository
	locationRepo    domain.LocationRepository
	seriesRepo      domain.EventSeriesRepository
}

// NewCatalogService creates the read-only catalog lookups with the given repositories.
func NewCatalogService(
	dimensionRepo domain.WellnessDimensionRepository,
	hobbyRepo domain.HobbyRepository,
	tagRepo domain.TagRepository,
	levelOfCareRepo domain.LevelOfCareRepository,
	facilitatorRepo domain.FacilitatorRepository,
	locationRepo domain.LocationRepository,
	seriesRepo domain.EventSeriesRepository,
) domain.CatalogService {
	return &catalogService{
		dimensionRepo:   dimensionRepo,
		hobbyRepo:       hobbyRepo,
		tagRepo:         tagRepo,
		levelOfCareRepo: levelOfCareRepo,
		facilitatorRepo: facilitatorRepo,
		locationRepo:    locationRepo,
		seriesRepo:      seriesRepo,
	}
}

func (s *catalogService) WellnessDimensions(ctx context.Context, activeOnly bool) ([]*domain.WellnessDimension, error) {
	dims, err := s.dimensionRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list wellness dimensions: %w", err)
	}
	return dims, nil
}

func (s *catalogService) Hobbies(ctx context.Context, activeOnly bool, category string) ([]*domain.Hobby, error) {
	hobbies, err := s.hobbyRepo.List(ctx, activeOnly, category)
	if err != nil {
		return nil, fmt.Errorf("list hobbies: %w", err)
	}
	return hobbies, nil
}

func (s *catalogService) Tags(ctx context.Context, activeOnly bool) ([]*domain.Tag, error) {
	tags, err := s.tagRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (s *catalogService) LevelsOfCare(ctx context.Context, activeOnly bool) ([]*domain.LevelOfCare, error) {
	levels, err := s.levelOfCareRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list levels of care: %w", err)
	}
	return levels, nil
}

func (s *catalogService) Facilitators(ctx context.Context, activeOnly bool, department string) ([]*domain.Facilitator, error) {
	facilitators, err := s.facilitatorRepo.List(ctx, activeOnly, department)
	if err != nil {
		return nil, fmt.Errorf("list facilitators: %w", err)
	}
	return facilitators, nil
}

func (s *catalogService) Locations(ctx context.Context, activeOnly bool, locationType string) ([]*domain.Location, error) {
	locations, err := s.locationRepo.List(ctx, activeOnly, locationType)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

func (s *catalogService) EventSeries(ctx context.Context, activeOnly bool) ([]*domain.EventSeries, error) {
	series, err := s.seriesRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list event series: %w", err)
	}
	return series, nil
}
