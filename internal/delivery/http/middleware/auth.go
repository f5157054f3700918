package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"wellnesscalendar/internal/domain"
)

type contextKey string

const currentUserKey contextKey = "currentUser"

// SetCurrentUser returns a context with the authenticated user attached.
func SetCurrentUser(ctx context.Context, user *domain.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// CurrentUserFromContext returns the authenticated user from the context, if present.
func CurrentUserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(currentUserKey).(*domain.User)
	return user, ok && user != nil
}

// ResolveUser returns a wrapper that resolves the current user from the
// Authorization Bearer token and attaches it to the request context. When
// devHeader is true, an X-Dev-User-Id header is accepted as a fallback so
// local clients can impersonate a user without minting tokens.
//
// Resolution is best effort: requests without valid credentials proceed
// anonymously and handlers decide whether auth is required.
func ResolveUser(verifier domain.TokenVerifier, users domain.UserRepository, devHeader bool, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if userID, ok := credentialsFromRequest(r, verifier, devHeader); ok {
				user, err := users.GetByID(r.Context(), userID)
				if err != nil {
					logger.Warn("failed to resolve user from credentials", "user_id", userID, "error", err)
				} else {
					r = r.WithContext(SetCurrentUser(r.Context(), user))
				}
			}
			next.ServeHTTP(w, r)
		})
	}
}

func credentialsFromRequest(r *http.Request, verifier domain.TokenVerifier, devHeader bool) (int64, bool) {
	const prefix = "Bearer "
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, prefix) {
		token := strings.TrimSpace(auth[len(prefix):])
		if token != "" {
			userID, err := verifier.Verify(token)
			if err == nil {
				return userID, true
			}
		}
	}
	if devHeader {
		if raw := r.Header.Get("X-Dev-User-Id"); raw != "" {
			userID, err := strconv.ParseInt(raw, 10, 64)
			if err == nil && userID > 0 {
				return userID, true
			}
		}
	}
	return 0, false
}
