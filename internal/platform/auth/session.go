package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrSessionNotFound is returned when a session does not exist.
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionExpired is returned when a session has passed its expiry.
	ErrSessionExpired = errors.New("session expired")
	// ErrSessionRevoked is returned when a session was signed out.
	ErrSessionRevoked = errors.New("session revoked")
)

// MigrationSessions is the SQL DDL for the sessions table. It is safe to
// execute multiple times (uses IF NOT EXISTS). Callers can run this at
// application startup as an auto-migration step.
const MigrationSessions = `
CREATE TABLE IF NOT EXISTS sessions (
    id         UUID PRIMARY KEY,
    user_id    UUID NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    expires_at TIMESTAMPTZ NOT NULL,
    revoked_at TIMESTAMPTZ
);

CREATE INDEX IF NOT EXISTS idx_sessions_expires_at ON sessions (expires_at);
`

// Session is a revocable server-side session backing an access token.
type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// SessionStore persists sessions.
type SessionStore interface {
	Create(ctx context.Context, userID uuid.UUID) (*Session, error)
	Get(ctx context.Context, id uuid.UUID) (*Session, error)
	Revoke(ctx context.Context, id uuid.UUID) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// ---------------------------------------------------------------------------
// pgRow / pgConn abstractions (allow unit testing without a real DB)
// ---------------------------------------------------------------------------

// pgRow represents a single row returned by QueryRow.
type pgRow interface {
	Scan(dest ...any) error
}

// pgConn is the minimal database interface required by PGSessionStore. Both
// *pgxpool.Pool (via a thin adapter) and test mocks implement this.
type pgConn interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgRow
	Exec(ctx context.Context, sql string, args ...any) (int64, error)
}

// poolConn adapts *pgxpool.Pool to the pgConn interface.
type poolConn struct{ pool *pgxpool.Pool }

func (p poolConn) QueryRow(ctx context.Context, sql string, args ...any) pgRow {
	return p.pool.QueryRow(ctx, sql, args...)
}

func (p poolConn) Exec(ctx context.Context, sql string, args ...any) (int64, error) {
	tag, err := p.pool.Exec(ctx, sql, args...)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// PGSessionStore
// ---------------------------------------------------------------------------

// PGSessionStore is a PostgreSQL-backed SessionStore. Sessions survive
// restarts and are shared across instances.
type PGSessionStore struct {
	db  pgConn
	ttl time.Duration
}

// NewPGSessionStore creates a PG-backed store. The db parameter must satisfy
// the pgConn interface -- use NewPGSessionStoreFromPool to wrap a
// *pgxpool.Pool, or pass a mock in tests.
func NewPGSessionStore(db pgConn, ttl time.Duration) *PGSessionStore {
	return &PGSessionStore{db: db, ttl: ttl}
}

// NewPGSessionStoreFromPool wraps a pgx pool in the store.
func NewPGSessionStoreFromPool(pool *pgxpool.Pool, ttl time.Duration) *PGSessionStore {
	return &PGSessionStore{db: poolConn{pool: pool}, ttl: ttl}
}

func (s *PGSessionStore) Create(ctx context.Context, userID uuid.UUID) (*Session, error) {
	now := time.Now()
	sess := &Session{
		ID:        uuid.New(),
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO sessions (id, user_id, created_at, expires_at)
		VALUES ($1, $2, $3, $4)`,
		sess.ID, sess.UserID, sess.CreatedAt, sess.ExpiresAt)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

func (s *PGSessionStore) Get(ctx context.Context, id uuid.UUID) (*Session, error) {
	var sess Session
	err := s.db.QueryRow(ctx, `
		SELECT id, user_id, created_at, expires_at, revoked_at
		FROM sessions WHERE id = $1`, id).
		Scan(&sess.ID, &sess.UserID, &sess.CreatedAt, &sess.ExpiresAt, &sess.RevokedAt)
	if err != nil {
		return nil, ErrSessionNotFound
	}
	if sess.RevokedAt != nil {
		return nil, ErrSessionRevoked
	}
	if time.Now().After(sess.ExpiresAt) {
		return nil, ErrSessionExpired
	}
	return &sess, nil
}

func (s *PGSessionStore) Revoke(ctx context.Context, id uuid.UUID) error {
	affected, err := s.db.Exec(ctx, `
		UPDATE sessions SET revoked_at = now()
		WHERE id = $1 AND revoked_at IS NULL`, id)
	if err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	if affected == 0 {
		return ErrSessionNotFound
	}
	return nil
}

// DeleteExpired removes sessions past their expiry. Intended to run
// periodically from a background goroutine.
func (s *PGSessionStore) DeleteExpired(ctx context.Context) (int64, error) {
	affected, err := s.db.Exec(ctx, `DELETE FROM sessions WHERE expires_at < now()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return affected, nil
}

// StartCleanup deletes expired sessions on the given interval until the
// context is cancelled.
func (s *PGSessionStore) StartCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				_, _ = s.DeleteExpired(ctx)
			}
		}
	}()
}
