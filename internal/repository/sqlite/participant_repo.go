package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"wellnesscalendar/internal/domain"
)

type participantRepository struct {
	DB *sql.DB
}

func NewParticipantRepository(db *sql.DB) domain.ParticipantRepository {
	return &participantRepository{
		DB: db,
	}
}

// activeStatuses is inlined into queries that select "active" rows. It must
// agree with domain.ParticipantStatus.IsActive.
const activeStatuses = `('registered', 'attended')`

func (r *participantRepository) FindActive(ctx context.Context, eventID, userID int64) (*domain.Participant, error) {
	query := `
		SELECT id, event_id, user_id, registered_at, status, notes
		FROM event_participants
		WHERE event_id = ? AND user_id = ? AND status IN ` + activeStatuses + `
		LIMIT 1
	`
	p := &domain.Participant{}
	var (
		registeredAt int64
		status       string
		notes        sql.NullString
	)
	err := r.DB.QueryRowContext(ctx, query, eventID, userID).
		Scan(&p.ID, &p.EventID, &p.UserID, &registeredAt, &status, &notes)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	p.RegisteredAt = time.Unix(registeredAt, 0).UTC()
	p.Status = domain.ParticipantStatus(status)
	p.Notes = notes.String
	return p, nil
}

func (r *participantRepository) Create(ctx context.Context, p *domain.Participant) error {
	query := `
		INSERT INTO event_participants (event_id, user_id, registered_at, status, notes)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		p.EventID, p.UserID, p.RegisteredAt.Unix(), string(p.Status), p.Notes).
		Scan(&p.ID)
}

func (r *participantRepository) UpdateStatus(ctx context.Context, id int64, status domain.ParticipantStatus) error {
	query := `
		UPDATE event_participants
		SET status = ?
		WHERE id = ?
	`
	res, err := r.DB.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *participantRepository) DeleteByEventUserStatus(ctx context.Context, eventID, userID int64, status domain.ParticipantStatus) error {
	query := `
		DELETE FROM event_participants
		WHERE event_id = ? AND user_id = ? AND status = ?
	`
	_, err := r.DB.ExecContext(ctx, query, eventID, userID, string(status))
	return err
}

func (r *participantRepository) CountActive(ctx context.Context, eventID int64) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM event_participants
		WHERE event_id = ? AND status IN ` + activeStatuses + `
	`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
