package domain

import (
	"context"
	"time"
)

// ParticipantStatus is the status of an event registration record.
type ParticipantStatus string

const (
	ParticipantStatusRegistered ParticipantStatus = "registered"
	ParticipantStatusAttended   ParticipantStatus = "attended"
	ParticipantStatusNoShow     ParticipantStatus = "no_show"
	ParticipantStatusCancelled  ParticipantStatus = "cancelled"
)

// IsActive reports whether the status counts toward event capacity and toward
// "is this user registered". Every read and counting path must use this
// predicate so the active-set definition cannot drift between code paths.
func (s ParticipantStatus) IsActive() bool {
	return s == ParticipantStatusRegistered || s == ParticipantStatusAttended
}

// Participant is a registration record tying a user to an event.
// Cancellation is a status transition, not a delete; the only hard delete is
// the compensating rollback of a row the same operation just inserted.
type Participant struct {
	ID           int64             `json:"id"`
	EventID      int64             `json:"event_id"`
	UserID       int64             `json:"user_id"`
	Status       ParticipantStatus `json:"status"`
	RegisteredAt time.Time         `json:"registered_at"`
	Notes        string            `json:"notes,omitempty"`
}

// NewParticipant returns a new Participant. ID is set by the repository on create.
func NewParticipant(eventID, userID int64, status ParticipantStatus, registeredAt time.Time) *Participant {
	return &Participant{
		EventID:      eventID,
		UserID:       userID,
		Status:       status,
		RegisteredAt: registeredAt,
	}
}

// ParticipantRepository defines storage operations for registration records.
type ParticipantRepository interface {
	// FindActive returns the participant row for (eventID, userID) whose
	// status is active, or ErrNotFound.
	FindActive(ctx context.Context, eventID, userID int64) (*Participant, error)
	Create(ctx context.Context, p *Participant) error
	UpdateStatus(ctx context.Context, id int64, status ParticipantStatus) error

	// DeleteByEventUserStatus removes the row matching (eventID, userID,
	// status). It exists only for the compensating rollback of a failed
	// reservation and must not be used to cancel registrations.
	DeleteByEventUserStatus(ctx context.Context, eventID, userID int64, status ParticipantStatus) error

	// CountActive returns the number of active participant rows for the event.
	CountActive(ctx context.Context, eventID int64) (int, error)
}

// RegistrationResult is the outcome of a register or cancel attempt. It is
// always returned to the caller, including for business-rule failures; the
// transport layer never sees an error from a correctly functioning attempt.
type RegistrationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Event   *Event `json:"event,omitempty"`
}

// RegistrationService is the event-registration capacity control.
type RegistrationService interface {
	// Register registers user for the event. eventID is the raw identifier
	// from the transport layer; parsing it is part of the guard sequence.
	Register(ctx context.Context, eventID string, user *User) *RegistrationResult

	// Cancel soft-cancels the user's active registration for the event.
	Cancel(ctx context.Context, eventID string, user *User) *RegistrationResult

	// IsRegistered reports whether an active registration exists for the pair.
	IsRegistered(ctx context.Context, eventID, userID int64) (bool, error)
}
