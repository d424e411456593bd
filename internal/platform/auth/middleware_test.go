package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type mockSessionStore struct {
	sessions map[uuid.UUID]*Session
	getErr   error
}

func newMockSessionStore() *mockSessionStore {
	return &mockSessionStore{sessions: make(map[uuid.UUID]*Session)}
}

func (m *mockSessionStore) Create(_ context.Context, userID uuid.UUID) (*Session, error) {
	sess := &Session{ID: uuid.New(), UserID: userID, CreatedAt: time.Now(), ExpiresAt: time.Now().Add(time.Hour)}
	m.sessions[sess.ID] = sess
	return sess, nil
}

func (m *mockSessionStore) Get(_ context.Context, id uuid.UUID) (*Session, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	sess, ok := m.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

func (m *mockSessionStore) Revoke(_ context.Context, id uuid.UUID) error {
	delete(m.sessions, id)
	return nil
}

func (m *mockSessionStore) DeleteExpired(_ context.Context) (int64, error) { return 0, nil }

func callMiddleware(t *testing.T, issuer *TokenIssuer, store SessionStore, authHeader string) (error, *http.Request) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/medications", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen *http.Request
	handler := Middleware(issuer, store)(func(c echo.Context) error {
		seen = c.Request()
		return c.NoContent(http.StatusOK)
	})
	return handler(c), seen
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-key"), time.Hour)
	store := newMockSessionStore()

	userID := uuid.New()
	sess, _ := store.Create(context.Background(), userID)
	token, err := issuer.Issue(userID, sess.ID)
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	err, seen := callMiddleware(t, issuer, store, "Bearer "+token)
	if err != nil {
		t.Fatalf("middleware error = %v", err)
	}

	gotUser, ok := UserIDFromContext(seen.Context())
	if !ok || gotUser != userID {
		t.Errorf("UserIDFromContext() = %v, %v; want %v, true", gotUser, ok, userID)
	}
	gotSess, ok := SessionIDFromContext(seen.Context())
	if !ok || gotSess != sess.ID {
		t.Errorf("SessionIDFromContext() = %v, %v; want %v, true", gotSess, ok, sess.ID)
	}
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-key"), time.Hour)

	err, _ := callMiddleware(t, issuer, newMockSessionStore(), "")
	assertUnauthorized(t, err)
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-key"), time.Hour)

	err, _ := callMiddleware(t, issuer, newMockSessionStore(), "Token abc")
	assertUnauthorized(t, err)
}

func TestMiddlewareRejectsRevokedSession(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-key"), time.Hour)
	store := newMockSessionStore()
	store.getErr = ErrSessionRevoked

	userID := uuid.New()
	token, err := issuer.Issue(userID, uuid.New())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	err, _ = callMiddleware(t, issuer, store, "Bearer "+token)
	assertUnauthorized(t, err)
}

func TestMiddlewareRejectsUnknownSession(t *testing.T) {
	issuer := NewTokenIssuer([]byte("test-key"), time.Hour)

	token, err := issuer.Issue(uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}

	err, _ = callMiddleware(t, issuer, newMockSessionStore(), "Bearer "+token)
	assertUnauthorized(t, err)
}

func assertUnauthorized(t *testing.T, err error) {
	t.Helper()
	httpErr, ok := err.(*echo.HTTPError)
	if !ok {
		t.Fatalf("error = %v, want *echo.HTTPError", err)
	}
	if httpErr.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", httpErr.Code, http.StatusUnauthorized)
	}
}
