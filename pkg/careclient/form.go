package careclient

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// FormState is the lifecycle of an entry form.
type FormState int

const (
	FormClosed FormState = iota
	FormOpen
	FormSubmitting
)

func (s FormState) String() string {
	switch s {
	case FormClosed:
		return "closed"
	case FormOpen:
		return "open"
	case FormSubmitting:
		return "submitting"
	}
	return fmt.Sprintf("FormState(%d)", int(s))
}

// FormController runs one entry form against a store. It moves between
// Closed, Open, and Submitting; a failed submit reopens the form with the
// draft and error intact, a successful one closes it and clears both.
type FormController struct {
	schema Schema
	store  *Store

	mu      sync.Mutex
	state   FormState
	draft   map[string]string
	lastErr error
}

func NewFormController(schema Schema, store *Store) *FormController {
	return &FormController{schema: schema, store: store}
}

func (f *FormController) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Err returns the error from the most recent failed submit, cleared when
// the form closes or a submit succeeds.
func (f *FormController) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastErr
}

// Open starts a fresh draft. Opening an already open form is a no-op and
// keeps the current draft.
func (f *FormController) Open() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != FormClosed {
		return
	}
	f.state = FormOpen
	f.draft = make(map[string]string)
	f.lastErr = nil
}

// SetField writes one draft value. Editing is only allowed while open.
func (f *FormController) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != FormOpen {
		return ErrFormClosed
	}
	f.draft[name] = value
	return nil
}

// Field reads one draft value.
func (f *FormController) Field(name string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft[name]
}

// Cancel discards the draft and closes the form. Nothing is sent anywhere.
func (f *FormController) Cancel() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.state = FormClosed
	f.draft = nil
	f.lastErr = nil
}

// Submit validates the draft and sends it to the store. Required-field
// failures never leave the client. While a submit is in flight further
// submits return ErrSubmitInFlight and the draft cannot change.
func (f *FormController) Submit(ctx context.Context) (*Record, error) {
	f.mu.Lock()
	switch f.state {
	case FormClosed:
		f.mu.Unlock()
		return nil, ErrFormClosed
	case FormSubmitting:
		f.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	if err := f.schema.Validate(f.draft); err != nil {
		f.lastErr = err
		f.mu.Unlock()
		return nil, err
	}

	fields, err := f.schema.coerce(f.draft)
	if err != nil {
		f.lastErr = err
		f.mu.Unlock()
		return nil, err
	}

	f.state = FormSubmitting
	f.mu.Unlock()

	rec, err := f.store.Create(ctx, fields)

	f.mu.Lock()
	defer f.mu.Unlock()
	// Cancel may have closed the form while the create was in flight. The
	// cancelled form stays closed whatever the outcome.
	if err != nil {
		if f.state == FormSubmitting {
			f.state = FormOpen
			f.lastErr = err
		}
		return nil, err
	}
	if f.state == FormSubmitting {
		f.state = FormClosed
	}
	f.draft = nil
	f.lastErr = nil
	return rec, nil
}

// coerce converts the string draft into the typed values the server's JSON
// API expects, dropping blanks for optional fields.
func (s Schema) coerce(draft map[string]string) (map[string]any, error) {
	fields := make(map[string]any, len(draft))
	for _, f := range s.Fields {
		raw, ok := draft[f.Name]
		if !ok || isBlank(raw) {
			continue
		}
		raw = strings.TrimSpace(raw)
		switch f.Type {
		case FieldText:
			fields[f.Name] = raw
		case FieldDate:
			t, err := parseDate(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", f.Name, err)
			}
			fields[f.Name] = t.Format(time.RFC3339)
		case FieldDateTime:
			t, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return nil, fmt.Errorf("%s: expected an RFC 3339 timestamp: %w", f.Name, err)
			}
			fields[f.Name] = t.Format(time.RFC3339)
		case FieldNumber:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: expected a number: %w", f.Name, err)
			}
			fields[f.Name] = n
		case FieldBool:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return nil, fmt.Errorf("%s: expected true or false: %w", f.Name, err)
			}
			fields[f.Name] = b
		}
	}
	return fields, nil
}

func parseDate(raw string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("expected a YYYY-MM-DD date")
}
