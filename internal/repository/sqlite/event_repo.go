package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wellnesscalendar/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

const eventColumns = `id, title, description, start_time, end_time, duration, all_day,
	wellness_dimension_id, location_id, series_id,
	max_participants, current_participants, registration_required, registration_deadline,
	status, notes, created_at, updated_at`

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = ?
	`
	ev, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ev, nil
}

func (r *eventRepository) List(ctx context.Context, limit, offset int) ([]*domain.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY start_time
		LIMIT ? OFFSET ?
	`
	rows, err := r.DB.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*domain.Event
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (r *eventRepository) IncrementParticipants(ctx context.Context, id int64) error {
	query := `
		UPDATE events
		SET current_participants = current_participants + 1, updated_at = ?
		WHERE id = ?
	`
	_, err := r.DB.ExecContext(ctx, query, time.Now().Unix(), id)
	return err
}

// IncrementParticipantsBelowCapacity is the race guard for registration: the
// capacity check and the increment are one UPDATE statement, so two concurrent
// callers contending for the last slot are serialized by the store and at most
// one sees applied=true.
func (r *eventRepository) IncrementParticipantsBelowCapacity(ctx context.Context, id int64) (bool, error) {
	query := `
		UPDATE events
		SET current_participants = current_participants + 1, updated_at = ?
		WHERE id = ? AND current_participants < max_participants
	`
	res, err := r.DB.ExecContext(ctx, query, time.Now().Unix(), id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *eventRepository) DecrementParticipantsFloored(ctx context.Context, id int64) error {
	query := `
		UPDATE events
		SET current_participants = MAX(current_participants - 1, 0), updated_at = ?
		WHERE id = ?
	`
	_, err := r.DB.ExecContext(ctx, query, time.Now().Unix(), id)
	return err
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (*domain.Event, error) {
	ev := &domain.Event{}
	var (
		description, notes           sql.NullString
		startTime, endTime           int64
		duration                     sql.NullInt64
		allDay, registrationRequired int
		dimensionID, locationID      sql.NullInt64
		seriesID                     sql.NullInt64
		maxParticipants              sql.NullInt64
		registrationDeadline         sql.NullInt64
		status                       string
		createdAt, updatedAt         int64
	)
	err := row.Scan(
		&ev.ID, &ev.Title, &description, &startTime, &endTime, &duration, &allDay,
		&dimensionID, &locationID, &seriesID,
		&maxParticipants, &ev.CurrentParticipants, &registrationRequired, &registrationDeadline,
		&status, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}
	ev.Description = description.String
	ev.Notes = notes.String
	ev.StartTime = time.Unix(startTime, 0).UTC()
	ev.EndTime = time.Unix(endTime, 0).UTC()
	if duration.Valid {
		d := int(duration.Int64)
		ev.DurationMinutes = &d
	}
	ev.AllDay = allDay != 0
	ev.RegistrationRequired = registrationRequired != 0
	if dimensionID.Valid {
		ev.WellnessDimensionID = &dimensionID.Int64
	}
	if locationID.Valid {
		ev.LocationID = &locationID.Int64
	}
	if seriesID.Valid {
		ev.SeriesID = &seriesID.Int64
	}
	if maxParticipants.Valid {
		m := int(maxParticipants.Int64)
		ev.MaxParticipants = &m
	}
	if registrationDeadline.Valid {
		t := time.Unix(registrationDeadline.Int64, 0).UTC()
		ev.RegistrationDeadline = &t
	}
	ev.Status = domain.EventStatus(status)
	ev.CreatedAt = time.Unix(createdAt, 0).UTC()
	ev.UpdatedAt = time.Unix(updatedAt, 0).UTC()
	return ev, nil
}
