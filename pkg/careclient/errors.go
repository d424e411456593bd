package careclient

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrSubmitInFlight is returned when a form submit is attempted while a
	// previous submit is still running.
	ErrSubmitInFlight = errors.New("a submit is already in progress")
	// ErrNoSession is returned when an operation requires a signed-in user.
	ErrNoSession = errors.New("no active session")
	// ErrFormClosed is returned when a closed form is edited or submitted.
	ErrFormClosed = errors.New("form is not open")
)

// ValidationError reports required fields missing from a form draft. It is
// produced locally, before any request is made.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("required fields missing: %s", strings.Join(e.Missing, ", "))
}

// StoreError wraps a failure from the backing service during a create. The
// store's list is unchanged when one of these is returned.
type StoreError struct {
	Collection string
	Err        error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: create failed: %v", e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// AuthError wraps a failure from the identity service. After a failed
// sign-out the session is left as it was.
type AuthError struct {
	Op  string
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("auth %s: %v", e.Op, e.Err)
}

func (e *AuthError) Unwrap() error { return e.Err }
