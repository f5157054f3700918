package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"wellnesscalendar/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var eventRows = []string{
	"id", "title", "description", "start_time", "end_time", "duration", "all_day",
	"wellness_dimension_id", "location_id", "series_id",
	"max_participants", "current_participants", "registration_required", "registration_deadline",
	"status", "notes", "created_at", "updated_at",
}

func TestEventRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)

	tests := []struct {
		name    string
		id      int64
		mock    func(mock sqlmock.Sqlmock)
		want    *domain.Event
		wantErr error
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description`).
					WithArgs(int64(1)).
					WillReturnRows(sqlmock.NewRows(eventRows).AddRow(
						int64(1), "Morning Yoga", "Gentle yoga", start.Unix(), end.Unix(), 60, 0,
						nil, nil, nil,
						10, 4, 1, nil,
						"scheduled", nil, start.Unix(), start.Unix(),
					))
			},
			want: &domain.Event{
				ID:                   1,
				Title:                "Morning Yoga",
				Description:          "Gentle yoga",
				StartTime:            start,
				EndTime:              end,
				DurationMinutes:      intp(60),
				MaxParticipants:      intp(10),
				CurrentParticipants:  4,
				RegistrationRequired: true,
				Status:               domain.EventStatusScheduled,
				CreatedAt:            start,
				UpdatedAt:            start,
			},
			wantErr: nil,
		},
		{
			name: "unlimited event has nil max_participants",
			id:   2,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description`).
					WithArgs(int64(2)).
					WillReturnRows(sqlmock.NewRows(eventRows).AddRow(
						int64(2), "Garden Walk", nil, start.Unix(), end.Unix(), nil, 0,
						nil, nil, nil,
						nil, 0, 0, nil,
						"scheduled", nil, start.Unix(), start.Unix(),
					))
			},
			want: &domain.Event{
				ID:        2,
				Title:     "Garden Walk",
				StartTime: start,
				EndTime:   end,
				Status:    domain.EventStatusScheduled,
				CreatedAt: start,
				UpdatedAt: start,
			},
			wantErr: nil,
		},
		{
			name: "not found",
			id:   999,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`SELECT id, title, description`).
					WithArgs(int64(999)).
					WillReturnError(sql.ErrNoRows)
			},
			want:    nil,
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			got, err := repo.GetByID(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_List_empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description`).
		WithArgs(50, 0).
		WillReturnRows(sqlmock.NewRows(eventRows))

	repo := NewEventRepository(db)
	events, err := repo.List(context.Background(), 50, 0)
	require.NoError(t, err)
	require.NotNil(t, events)
	require.Empty(t, events)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_IncrementParticipantsBelowCapacity(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		mock        func(mock sqlmock.Sqlmock)
		wantApplied bool
		wantErr     bool
	}{
		{
			name: "guard passes",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events\s+SET current_participants = current_participants \+ 1, updated_at = \?\s+WHERE id = \? AND current_participants < max_participants`).
					WithArgs(sqlmock.AnyArg(), int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			wantApplied: true,
		},
		{
			name: "event full, guard rejects",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events`).
					WithArgs(sqlmock.AnyArg(), int64(1)).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantApplied: false,
		},
		{
			name: "db error",
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`UPDATE events`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewEventRepository(db)
			applied, err := repo.IncrementParticipantsBelowCapacity(ctx, 1)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantApplied, applied)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestEventRepository_IncrementParticipants(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE events\s+SET current_participants = current_participants \+ 1, updated_at = \?\s+WHERE id = \?`).
		WithArgs(sqlmock.AnyArg(), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewEventRepository(db)
	require.NoError(t, repo.IncrementParticipants(context.Background(), 3))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_DecrementParticipantsFloored(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE events\s+SET current_participants = MAX\(current_participants - 1, 0\), updated_at = \?\s+WHERE id = \?`).
		WithArgs(sqlmock.AnyArg(), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewEventRepository(db)
	require.NoError(t, repo.DecrementParticipantsFloored(context.Background(), 1))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEventRepository_GetByID_dbError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, title, description`).
		WithArgs(int64(1)).
		WillReturnError(sql.ErrConnDone)

	repo := NewEventRepository(db)
	_, err = repo.GetByID(context.Background(), 1)
	require.Error(t, err)
	require.False(t, errors.Is(err, domain.ErrNotFound))
}

func intp(v int) *int { return &v }
