package services

import (
	"context"
	"errors"
	"testing"

	"wellnesscalendar/internal/domain"
)

type listRecordingEventRepo struct {
	lastLimit  int
	lastOffset int
}

func (m *listRecordingEventRepo) GetByID(_ context.Context, id int64) (*domain.Event, error) {
	return nil, domain.ErrNotFound
}

func (m *listRecordingEventRepo) List(_ context.Context, limit, offset int) ([]*domain.Event, error) {
	m.lastLimit = limit
	m.lastOffset = offset
	return []*domain.Event{}, nil
}

func (m *listRecordingEventRepo) IncrementParticipants(_ context.Context, _ int64) error { return nil }

func (m *listRecordingEventRepo) IncrementParticipantsBelowCapacity(_ context.Context, _ int64) (bool, error) {
	return false, nil
}

func (m *listRecordingEventRepo) DecrementParticipantsFloored(_ context.Context, _ int64) error {
	return nil
}

func TestEventService_List_clampsArguments(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{"defaults applied", 0, 0, 50, 0},
		{"negative limit", -5, 0, 50, 0},
		{"limit capped", 1000, 0, 200, 0},
		{"negative offset", 20, -1, 20, 0},
		{"passthrough", 20, 40, 20, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &listRecordingEventRepo{}
			svc := NewEventService(repo)

			if _, err := svc.List(context.Background(), tt.limit, tt.offset); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if repo.lastLimit != tt.wantLimit || repo.lastOffset != tt.wantOffset {
				t.Errorf("repo called with (%d, %d), want (%d, %d)",
					repo.lastLimit, repo.lastOffset, tt.wantLimit, tt.wantOffset)
			}
		})
	}
}

func TestEventService_GetByID_notFound(t *testing.T) {
	svc := NewEventService(&listRecordingEventRepo{})

	_, err := svc.GetByID(context.Background(), 99)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
