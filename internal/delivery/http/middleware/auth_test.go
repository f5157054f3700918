package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellnesscalendar/internal/domain"
)

type stubVerifier struct {
	userID int64
	err    error
}

func (s *stubVerifier) Verify(token string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.userID, nil
}

type stubUserRepo struct {
	users map[int64]*domain.User
}

func (s *stubUserRepo) Create(_ context.Context, _ *domain.User) error { return nil }

func (s *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func TestResolveUser(t *testing.T) {
	user := &domain.User{ID: 7, Email: "resident@example.com"}
	repo := &stubUserRepo{users: map[int64]*domain.User{7: user}}

	tests := []struct {
		name      string
		verifier  *stubVerifier
		devHeader bool
		request   func(r *http.Request)
		wantUser  bool
	}{
		{
			name:     "valid bearer token",
			verifier: &stubVerifier{userID: 7},
			request: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good-token")
			},
			wantUser: true,
		},
		{
			name:     "invalid token proceeds anonymously",
			verifier: &stubVerifier{err: errors.New("expired")},
			request: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer bad-token")
			},
			wantUser: false,
		},
		{
			name:     "no credentials",
			verifier: &stubVerifier{userID: 7},
			request:  func(r *http.Request) {},
			wantUser: false,
		},
		{
			name:      "dev header accepted when enabled",
			verifier:  &stubVerifier{err: errors.New("no token")},
			devHeader: true,
			request: func(r *http.Request) {
				r.Header.Set("X-Dev-User-Id", "7")
			},
			wantUser: true,
		},
		{
			name:     "dev header ignored when disabled",
			verifier: &stubVerifier{err: errors.New("no token")},
			request: func(r *http.Request) {
				r.Header.Set("X-Dev-User-Id", "7")
			},
			wantUser: false,
		},
		{
			name:      "unknown user id proceeds anonymously",
			verifier:  &stubVerifier{userID: 99},
			devHeader: true,
			request: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer good-token")
			},
			wantUser: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser *domain.User
			var gotOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser, gotOK = CurrentUserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := ResolveUser(tt.verifier, repo, tt.devHeader, slog.Default())(next)
			req := httptest.NewRequest(http.MethodPost, "http://test/graphql", nil)
			tt.request(req)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			// Resolution never blocks the request.
			require.Equal(t, http.StatusOK, rr.Code)
			assert.Equal(t, tt.wantUser, gotOK)
			if tt.wantUser {
				require.NotNil(t, gotUser)
				assert.Equal(t, int64(7), gotUser.ID)
			}
		})
	}
}
