package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/eldercare/connect/internal/platform/auth"
)

var (
	// ErrInvalidCredentials is returned when the email or password is wrong.
	// Callers must not reveal which of the two it was.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when signing up with an email that already
	// has an account.
	ErrEmailTaken = errors.New("an account with this email already exists")
)

const minPasswordLength = 8

type Service struct {
	repo     Repository
	sessions auth.SessionStore
	issuer   *auth.TokenIssuer
}

func NewService(repo Repository, sessions auth.SessionStore, issuer *auth.TokenIssuer) *Service {
	return &Service{repo: repo, sessions: sessions, issuer: issuer}
}

// SignUp creates an account and signs the new user in, returning the user
// and an access token. A non-empty full name seeds the profile.
func (s *Service) SignUp(ctx context.Context, email, password, fullName string) (*User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("a valid email is required")
	}
	if len(password) < minPasswordLength {
		return nil, "", fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}

	if _, err := s.repo.GetUserByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := &User{Email: email, PasswordHash: string(hash)}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	if fullName = strings.TrimSpace(fullName); fullName != "" {
		if err := s.repo.SaveProfile(ctx, &Profile{UserID: user.ID, FullName: fullName}); err != nil {
			return nil, "", fmt.Errorf("seed profile: %w", err)
		}
	}

	token, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignIn checks the credentials and opens a new session.
func (s *Service) SignIn(ctx context.Context, email, password string) (*User, string, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// SignOut revokes the session. If revocation fails the session stays valid
// and the caller keeps their signed-in state.
func (s *Service) SignOut(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.sessions.Revoke(ctx, sessionID); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// GetProfile returns the user's profile, or an empty profile when none has
// been saved yet.
func (s *Service) GetProfile(ctx context.Context, userID uuid.UUID) (*Profile, error) {
	p, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		return &Profile{UserID: userID}, nil
	}
	return p, nil
}

func (s *Service) SaveProfile(ctx context.Context, p *Profile) error {
	if p.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	return s.repo.SaveProfile(ctx, p)
}

func (s *Service) startSession(ctx context.Context, userID uuid.UUID) (string, error) {
	sess, err := s.sessions.Create(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("create session: %w", err)
	}
	token, err := s.issuer.Issue(userID, sess.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}
