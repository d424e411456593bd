package careclient

import (
	"context"
	"testing"
)

func TestSessionSignInAndOut(t *testing.T) {
	sess := NewSessionContext(newFakeBackend())

	if sess.CurrentUser() != nil {
		t.Fatal("expected no user before sign-in")
	}

	if err := sess.SignIn(context.Background(), "mary@example.com", "pw"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if u := sess.CurrentUser(); u == nil || u.Email != "mary@example.com" {
		t.Errorf("user = %+v, want mary@example.com", u)
	}

	if err := sess.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if sess.CurrentUser() != nil {
		t.Error("expected no user after sign-out")
	}
}

func TestSessionSignUpForwardsFullName(t *testing.T) {
	backend := newFakeBackend()
	sess := NewSessionContext(backend)

	if err := sess.SignUp(context.Background(), "mary@example.com", "pw", "Mary Smith"); err != nil {
		t.Fatalf("SignUp() error = %v", err)
	}
	if backend.signUpName != "Mary Smith" {
		t.Errorf("full name sent = %q, want Mary Smith", backend.signUpName)
	}
	if u := sess.CurrentUser(); u == nil || u.Email != "mary@example.com" {
		t.Errorf("user = %+v, want mary@example.com", u)
	}
}

func TestSessionSignIn_Failure(t *testing.T) {
	backend := newFakeBackend()
	backend.signInErr = errBackendDown
	sess := NewSessionContext(backend)

	if err := sess.SignIn(context.Background(), "mary@example.com", "pw"); err == nil {
		t.Fatal("expected SignIn() to fail")
	}
	if sess.CurrentUser() != nil {
		t.Error("failed sign-in must not establish a session")
	}
}

func TestSessionSignOut_FailureLeavesSession(t *testing.T) {
	backend := newFakeBackend()
	sess := NewSessionContext(backend)

	if err := sess.SignIn(context.Background(), "mary@example.com", "pw"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	backend.signOutErr = errBackendDown

	if err := sess.SignOut(context.Background()); err == nil {
		t.Fatal("expected SignOut() to fail")
	}
	if u := sess.CurrentUser(); u == nil || u.Email != "mary@example.com" {
		t.Errorf("user = %+v, want session unchanged after failed sign-out", u)
	}
}

func TestSessionSubscribe(t *testing.T) {
	sess := NewSessionContext(newFakeBackend())

	var seen []*User
	unsubscribe := sess.Subscribe(func(u *User) { seen = append(seen, u) })

	// Fires immediately with the current (nil) user.
	if len(seen) != 1 || seen[0] != nil {
		t.Fatalf("seen = %v, want initial nil notification", seen)
	}

	if err := sess.SignIn(context.Background(), "mary@example.com", "pw"); err != nil {
		t.Fatalf("SignIn() error = %v", err)
	}
	if len(seen) != 2 || seen[1] == nil {
		t.Fatalf("seen = %v, want sign-in notification", seen)
	}

	unsubscribe()
	if err := sess.SignOut(context.Background()); err != nil {
		t.Fatalf("SignOut() error = %v", err)
	}
	if len(seen) != 2 {
		t.Errorf("got %d notifications after unsubscribe, want 2", len(seen))
	}
}

func TestSessionRestore(t *testing.T) {
	backend := newFakeBackend()
	backend.user = &User{ID: "user-1", Email: "mary@example.com"}
	sess := NewSessionContext(backend)

	sess.Restore(context.Background())
	if u := sess.CurrentUser(); u == nil || u.ID != "user-1" {
		t.Errorf("user = %+v, want restored session", u)
	}
}

func TestSessionRestore_NoSession(t *testing.T) {
	sess := NewSessionContext(newFakeBackend())

	sess.Restore(context.Background())
	if sess.CurrentUser() != nil {
		t.Error("expected no user when nothing to restore")
	}
}
