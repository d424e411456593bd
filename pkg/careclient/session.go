package careclient

import (
	"context"
	"sync"
)

// SessionContext tracks who is signed in and tells subscribers when that
// changes. All reads and writes go through its mutex, so any goroutine may
// ask for the current user.
type SessionContext struct {
	backend Backend

	mu        sync.RWMutex
	user      *User
	listeners map[int]func(*User)
	nextID    int
}

func NewSessionContext(backend Backend) *SessionContext {
	return &SessionContext{
		backend:   backend,
		listeners: make(map[int]func(*User)),
	}
}

// CurrentUser returns the signed-in user, or nil when signed out.
func (s *SessionContext) CurrentUser() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// SignUp creates an account and signs the new user in. fullName is
// optional and becomes the display name on the user's profile.
func (s *SessionContext) SignUp(ctx context.Context, email, password, fullName string) error {
	user, err := s.backend.SignUp(ctx, email, password, fullName)
	if err != nil {
		return err
	}
	s.setUser(user)
	return nil
}

func (s *SessionContext) SignIn(ctx context.Context, email, password string) error {
	user, err := s.backend.SignIn(ctx, email, password)
	if err != nil {
		return err
	}
	s.setUser(user)
	return nil
}

// SignOut ends the session. When the backend refuses, the error is returned
// and the session stays exactly as it was.
func (s *SessionContext) SignOut(ctx context.Context) error {
	if err := s.backend.SignOut(ctx); err != nil {
		return err
	}
	s.setUser(nil)
	return nil
}

// Restore asks the backend who is signed in, picking up a prior session
// after a restart. A dead or missing session leaves the user signed out
// without error.
func (s *SessionContext) Restore(ctx context.Context) {
	user, err := s.backend.CurrentSession(ctx)
	if err != nil {
		s.setUser(nil)
		return
	}
	s.setUser(user)
}

// Subscribe registers fn to run on every session change. It fires
// immediately with the current user, then again on each change. The
// returned function removes the subscription.
func (s *SessionContext) Subscribe(fn func(*User)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	current := s.user
	s.mu.Unlock()

	fn(current)

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

func (s *SessionContext) setUser(user *User) {
	s.mu.Lock()
	s.user = user
	fns := make([]func(*User), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(user)
	}
}
