package careclient

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// fakeBackend is an in-memory Backend used across the package tests. Error
// fields let individual tests force failures on specific operations.
type fakeBackend struct {
	user       *User
	records    map[string][]*Record
	seq        int
	signUpName string

	signInErr  error
	signOutErr error
	createErr  error
	createHook func()
	listErr    error
	listCalls  int
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{records: make(map[string][]*Record)}
}

func (f *fakeBackend) SignUp(_ context.Context, email, _, fullName string) (*User, error) {
	f.user = &User{ID: "user-1", Email: email}
	f.signUpName = fullName
	return f.user, nil
}

func (f *fakeBackend) SignIn(_ context.Context, email, _ string) (*User, error) {
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	f.user = &User{ID: "user-1", Email: email}
	return f.user, nil
}

func (f *fakeBackend) SignOut(context.Context) error {
	if f.signOutErr != nil {
		return f.signOutErr
	}
	f.user = nil
	return nil
}

func (f *fakeBackend) CurrentSession(context.Context) (*User, error) {
	if f.user == nil {
		return nil, ErrNoSession
	}
	return f.user, nil
}

func (f *fakeBackend) CreateRecord(_ context.Context, collection string, fields map[string]any) (*Record, error) {
	if f.createHook != nil {
		f.createHook()
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.seq++
	rec := &Record{
		ID:        fmt.Sprintf("rec-%d", f.seq),
		CreatedAt: time.Unix(int64(f.seq), 0),
		Fields:    fields,
	}
	f.records[collection] = append(f.records[collection], rec)
	return rec, nil
}

func (f *fakeBackend) ListRecords(_ context.Context, collection string) ([]*Record, error) {
	f.listCalls++
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]*Record, len(f.records[collection]))
	copy(out, f.records[collection])
	return out, nil
}

var errBackendDown = errors.New("backend down")
