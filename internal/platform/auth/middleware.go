package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type contextKey string

const (
	userIDKey    contextKey = "auth_user_id"
	sessionIDKey contextKey = "auth_session_id"
)

// Middleware returns an echo middleware that authenticates requests with a
// bearer token. The token's session must still exist and not be revoked or
// expired. On success the user and session IDs are placed on the request
// context.
func Middleware(issuer *TokenIssuer, sessions SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c.Request().Header.Get("Authorization"))
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			claims, err := issuer.Verify(token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			userID, err := uuid.Parse(claims.Subject)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token subject")
			}
			sessionID, err := uuid.Parse(claims.SessionID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid session id")
			}

			if _, err := sessions.Get(c.Request().Context(), sessionID); err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "session no longer valid")
			}

			ctx := ContextWithIdentity(c.Request().Context(), userID, sessionID)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}
	return token, true
}

// ContextWithIdentity attaches the authenticated user and session IDs to the
// context. Exposed so handler tests can build authenticated requests.
func ContextWithIdentity(ctx context.Context, userID, sessionID uuid.UUID) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, sessionIDKey, sessionID)
}

// UserIDFromContext returns the authenticated user's ID, if present.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// SessionIDFromContext returns the authenticated session's ID, if present.
func SessionIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(sessionIDKey).(uuid.UUID)
	return id, ok
}
