package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"wellnesscalendar/internal/domain"
)

// User-facing messages returned in RegistrationResult. Business failures are
// results, not errors; the GraphQL layer never turns these into field errors.
const (
	MsgMustBeLoggedIn     = "You must be logged in to register for events"
	MsgInvalidEventID     = "Invalid event ID"
	MsgEventNotFound      = "Event not found"
	MsgEventCancelled     = "Cannot register for a cancelled event"
	MsgEventCompleted     = "Cannot register for a completed event"
	MsgDeadlinePassed     = "Registration deadline has passed"
	MsgAlreadyRegistered  = "You are already registered for this event"
	MsgEventFull          = "Event is at full capacity"
	MsgNotRegistered      = "You are not registered for this event"
	MsgRegistered         = "Successfully registered for the event"
	MsgCancelled          = "Successfully cancelled your registration"
	MsgInternalError      = "An error occurred while processing your request"
)

type registrationService struct {
	eventRepo       domain.EventRepository
	participantRepo domain.ParticipantRepository
	emailService    domain.EmailService
	logger          *slog.Logger
	now             func() time.Time
}

// NewRegistrationService creates the registration capacity control.
// emailService may be nil; confirmation emails are then skipped.
func NewRegistrationService(
	eventRepo domain.EventRepository,
	participantRepo domain.ParticipantRepository,
	emailService domain.EmailService,
	logger *slog.Logger,
) domain.RegistrationService {
	return &registrationService{
		eventRepo:       eventRepo,
		participantRepo: participantRepo,
		emailService:    emailService,
		logger:          logger,
		now:             time.Now,
	}
}

// Register runs the guard sequence and, if every guard passes, inserts the
// participant row and claims a capacity slot via the store's guarded
// increment. Losing the last-slot race rolls the inserted row back.
//
// The duplicate-registration guard is a check-then-insert without a backing
// unique constraint; two concurrent requests by the same user can both pass
// it. Known limitation, kept to match the system of record.
func (s *registrationService) Register(ctx context.Context, eventID string, user *domain.User) *domain.RegistrationResult {
	if user == nil {
		return failure(MsgMustBeLoggedIn, nil)
	}

	id, err := parseEventID(eventID)
	if err != nil {
		return failure(MsgInvalidEventID, nil)
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return failure(MsgEventNotFound, nil)
		}
		return s.internalError(ctx, "register", id, user.ID, fmt.Errorf("get event: %w", err), nil)
	}

	switch event.Status {
	case domain.EventStatusCancelled:
		return failure(MsgEventCancelled, event)
	case domain.EventStatusCompleted:
		return failure(MsgEventCompleted, event)
	}

	if event.RegistrationDeadline != nil && s.now().After(*event.RegistrationDeadline) {
		return failure(MsgDeadlinePassed, event)
	}

	if _, err := s.participantRepo.FindActive(ctx, id, user.ID); err == nil {
		return failure(MsgAlreadyRegistered, event)
	} else if !errors.Is(err, domain.ErrNotFound) {
		return s.internalError(ctx, "register", id, user.ID, fmt.Errorf("find active participant: %w", err), event)
	}

	participant := domain.NewParticipant(id, user.ID, domain.ParticipantStatusRegistered, s.now())
	if err := s.participantRepo.Create(ctx, participant); err != nil {
		return s.internalError(ctx, "register", id, user.ID, fmt.Errorf("create participant: %w", err), event)
	}

	if event.Unlimited() {
		if err := s.eventRepo.IncrementParticipants(ctx, id); err != nil {
			s.rollbackParticipant(ctx, id, user.ID)
			return s.internalError(ctx, "register", id, user.ID, fmt.Errorf("increment participants: %w", err), event)
		}
	} else {
		applied, err := s.eventRepo.IncrementParticipantsBelowCapacity(ctx, id)
		if err != nil {
			s.rollbackParticipant(ctx, id, user.ID)
			return s.internalError(ctx, "register", id, user.ID, fmt.Errorf("increment participants: %w", err), event)
		}
		if !applied {
			// Another request claimed the last slot between our guard checks
			// and the increment. Compensating rollback of the row we inserted.
			s.rollbackParticipant(ctx, id, user.ID)
			return failure(MsgEventFull, s.refresh(ctx, event))
		}
	}

	refreshed := s.refresh(ctx, event)
	s.sendConfirmation(ctx, user, refreshed)
	return &domain.RegistrationResult{Success: true, Message: MsgRegistered, Event: refreshed}
}

// Cancel soft-cancels the user's active registration and releases the slot
// with a decrement floored at zero.
func (s *registrationService) Cancel(ctx context.Context, eventID string, user *domain.User) *domain.RegistrationResult {
	if user == nil {
		return failure(MsgMustBeLoggedIn, nil)
	}

	id, err := parseEventID(eventID)
	if err != nil {
		return failure(MsgInvalidEventID, nil)
	}

	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return failure(MsgEventNotFound, nil)
		}
		return s.internalError(ctx, "cancel", id, user.ID, fmt.Errorf("get event: %w", err), nil)
	}

	participant, err := s.participantRepo.FindActive(ctx, id, user.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return failure(MsgNotRegistered, event)
		}
		return s.internalError(ctx, "cancel", id, user.ID, fmt.Errorf("find active participant: %w", err), event)
	}

	// Status transition, never a delete: the cancelled row stays as history.
	if err := s.participantRepo.UpdateStatus(ctx, participant.ID, domain.ParticipantStatusCancelled); err != nil {
		return s.internalError(ctx, "cancel", id, user.ID, fmt.Errorf("update participant status: %w", err), event)
	}

	if err := s.eventRepo.DecrementParticipantsFloored(ctx, id); err != nil {
		return s.internalError(ctx, "cancel", id, user.ID, fmt.Errorf("decrement participants: %w", err), event)
	}

	return &domain.RegistrationResult{Success: true, Message: MsgCancelled, Event: s.refresh(ctx, event)}
}

func (s *registrationService) IsRegistered(ctx context.Context, eventID, userID int64) (bool, error) {
	_, err := s.participantRepo.FindActive(ctx, eventID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("find active participant: %w", err)
	}
	return true, nil
}

func parseEventID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidInput
	}
	return id, nil
}

func failure(message string, event *domain.Event) *domain.RegistrationResult {
	return &domain.RegistrationResult{Success: false, Message: message, Event: event}
}

func (s *registrationService) internalError(ctx context.Context, op string, eventID, userID int64, err error, event *domain.Event) *domain.RegistrationResult {
	s.logger.ErrorContext(ctx, "registration operation failed",
		"op", op, "event_id", eventID, "user_id", userID, "err", err)
	return failure(MsgInternalError, event)
}

// rollbackParticipant deletes the registered row this operation just inserted.
// Best effort; a failure here is drift that the logs must surface, so the
// drift log carries the authoritative active-row count next to the error.
func (s *registrationService) rollbackParticipant(ctx context.Context, eventID, userID int64) {
	err := s.participantRepo.DeleteByEventUserStatus(ctx, eventID, userID, domain.ParticipantStatusRegistered)
	if err == nil {
		return
	}
	attrs := []any{"event_id", eventID, "user_id", userID, "err", err}
	if active, countErr := s.participantRepo.CountActive(ctx, eventID); countErr == nil {
		attrs = append(attrs, "active_rows", active)
	}
	s.logger.ErrorContext(ctx, "compensating rollback failed; counter and participants may have drifted", attrs...)
}

// refresh re-reads the event so the returned counter reflects this mutation.
// Falls back to the stale copy if the re-read fails.
func (s *registrationService) refresh(ctx context.Context, event *domain.Event) *domain.Event {
	refreshed, err := s.eventRepo.GetByID(ctx, event.ID)
	if err != nil {
		s.logger.WarnContext(ctx, "re-fetch after mutation failed", "event_id", event.ID, "err", err)
		return event
	}
	return refreshed
}

func (s *registrationService) sendConfirmation(ctx context.Context, user *domain.User, event *domain.Event) {
	if s.emailService == nil {
		return
	}
	data := &domain.RegistrationEmailData{
		Name:       user.Name,
		EventTitle: event.Title,
		StartTime:  event.StartTime.Format(time.RFC1123),
	}
	if err := s.emailService.SendRegistrationConfirmation(ctx, user.Email, data); err != nil {
		// Email is best effort; the registration already succeeded.
		s.logger.WarnContext(ctx, "failed to send registration confirmation",
			"event_id", event.ID, "user_id", user.ID, "err", err)
	}
}
