package domain

import (
	"context"
	"time"
)

// EventStatus is the lifecycle status of an event.
type EventStatus string

const (
	EventStatusScheduled EventStatus = "scheduled"
	EventStatusCancelled EventStatus = "cancelled"
	EventStatusCompleted EventStatus = "completed"
)

// Event represents a wellness activity on the community calendar.
// CurrentParticipants is a denormalized count of participants in an active
// status; it is only ever mutated through the guarded repository updates.
type Event struct {
	ID                   int64       `json:"id"`
	Title                string      `json:"title"`
	Description          string      `json:"description,omitempty"`
	StartTime            time.Time   `json:"start_time"`
	EndTime              time.Time   `json:"end_time"`
	DurationMinutes      *int        `json:"duration,omitempty"`
	AllDay               bool        `json:"all_day"`
	WellnessDimensionID  *int64      `json:"wellness_dimension_id,omitempty"`
	LocationID           *int64      `json:"location_id,omitempty"`
	SeriesID             *int64      `json:"series_id,omitempty"`
	MaxParticipants      *int        `json:"max_participants,omitempty"`
	CurrentParticipants  int         `json:"current_participants"`
	RegistrationRequired bool        `json:"registration_required"`
	RegistrationDeadline *time.Time  `json:"registration_deadline,omitempty"`
	Status               EventStatus `json:"status"`
	Notes                string      `json:"notes,omitempty"`
	CreatedAt            time.Time   `json:"created_at"`
	UpdatedAt            time.Time   `json:"updated_at"`
}

// Unlimited reports whether the event has no capacity ceiling.
func (e *Event) Unlimited() bool {
	return e.MaxParticipants == nil
}

// AvailableSpots returns nil for unlimited events, otherwise the remaining
// capacity computed from the denormalized counter, floored at zero.
func (e *Event) AvailableSpots() *int {
	if e.MaxParticipants == nil {
		return nil
	}
	spots := *e.MaxParticipants - e.CurrentParticipants
	if spots < 0 {
		spots = 0
	}
	return &spots
}

// EventRepository defines the interface for event storage.
//
// IncrementParticipantsBelowCapacity and DecrementParticipantsFloored must be
// implemented as single atomic conditional updates against the store, never as
// a read-then-write pair: they are the serialization point for concurrent
// registrations on the same event.
type EventRepository interface {
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context, limit, offset int) ([]*Event, error)

	// IncrementParticipants increments the participant counter with no upper
	// bound. Used for events without a capacity ceiling.
	IncrementParticipants(ctx context.Context, id int64) error

	// IncrementParticipantsBelowCapacity increments the participant counter
	// only while it is below max_participants. Returns false when the guard
	// did not pass, i.e. the event was already full.
	IncrementParticipantsBelowCapacity(ctx context.Context, id int64) (bool, error)

	// DecrementParticipantsFloored decrements the participant counter,
	// flooring at zero.
	DecrementParticipantsFloored(ctx context.Context, id int64) error
}

// EventService defines read operations over the event calendar.
type EventService interface {
	List(ctx context.Context, limit, offset int) ([]*Event, error)
	GetByID(ctx context.Context, id int64) (*Event, error)
}
