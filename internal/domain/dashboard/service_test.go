package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/eldercare/connect/internal/domain/appointment"
	"github.com/eldercare/connect/internal/platform/auth"
)

type fixedCounts struct {
	medications  int
	appointments int
	contacts     int
	activities   int
	next         *appointment.Appointment
	err          error
}

func (f *fixedCounts) CountMedications(context.Context, uuid.UUID) (int, error) {
	return f.medications, f.err
}
func (f *fixedCounts) CountContacts(context.Context, uuid.UUID) (int, error) {
	return f.contacts, f.err
}
func (f *fixedCounts) CountActivities(context.Context, uuid.UUID) (int, error) {
	return f.activities, f.err
}
func (f *fixedCounts) CountAppointments(context.Context, uuid.UUID) (int, error) {
	return f.appointments, f.err
}
func (f *fixedCounts) NextAppointment(context.Context, uuid.UUID) (*appointment.Appointment, error) {
	return f.next, f.err
}

func TestGetSummary(t *testing.T) {
	src := &fixedCounts{
		medications:  3,
		appointments: 2,
		contacts:     1,
		activities:   5,
		next: &appointment.Appointment{
			ID:              uuid.New(),
			Title:           "Cardiology checkup",
			DoctorName:      "Dr. Patel",
			AppointmentDate: time.Now().Add(24 * time.Hour),
		},
	}
	svc := NewService(src, src, src, src)

	sum, err := svc.GetSummary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if sum.MedicationCount != 3 || sum.AppointmentCount != 2 || sum.ContactCount != 1 || sum.ActivityCount != 5 {
		t.Errorf("unexpected counts: %+v", sum)
	}
	if sum.NextAppointment == nil || sum.NextAppointment.Title != "Cardiology checkup" {
		t.Errorf("next appointment = %+v", sum.NextAppointment)
	}
}

func TestGetSummary_NoUpcomingAppointment(t *testing.T) {
	src := &fixedCounts{}
	svc := NewService(src, src, src, src)

	sum, err := svc.GetSummary(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("GetSummary() error = %v", err)
	}
	if sum.NextAppointment != nil {
		t.Errorf("next = %+v, want nil", sum.NextAppointment)
	}
}

func TestGetSummary_SourceError(t *testing.T) {
	src := &fixedCounts{err: errors.New("backend down")}
	svc := NewService(src, src, src, src)

	if _, err := svc.GetSummary(context.Background(), uuid.New()); err == nil {
		t.Error("expected error to propagate")
	}
}

func TestHandler_GetSummary(t *testing.T) {
	src := &fixedCounts{medications: 2}
	h := NewHandler(NewService(src, src, src, src))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	ctx := auth.ContextWithIdentity(req.Context(), uuid.New(), uuid.New())
	rec := httptest.NewRecorder()
	c := e.NewContext(req.WithContext(ctx), rec)

	if err := h.GetSummary(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	var sum Summary
	json.Unmarshal(rec.Body.Bytes(), &sum)
	if sum.MedicationCount != 2 {
		t.Errorf("medication count = %d, want 2", sum.MedicationCount)
	}
}

func TestHandler_GetSummary_Unauthenticated(t *testing.T) {
	src := &fixedCounts{}
	h := NewHandler(NewService(src, src, src, src))
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.GetSummary(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Errorf("error = %v, want 401", err)
	}
}
