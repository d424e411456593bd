package dashboard

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/eldercare/connect/internal/domain/appointment"
)

// Summary is the landing-page overview: how many entries the user has in
// each list, plus their next scheduled visit.
type Summary struct {
	MedicationCount  int              `json:"medication_count"`
	AppointmentCount int              `json:"appointment_count"`
	ContactCount     int              `json:"contact_count"`
	ActivityCount    int              `json:"activity_count"`
	NextAppointment  *NextAppointment `json:"next_appointment,omitempty"`
}

// NextAppointment is the subset of an appointment shown on the dashboard.
type NextAppointment struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	DoctorName      string    `json:"doctor_name"`
	Location        string    `json:"location"`
	AppointmentDate time.Time `json:"appointment_date"`
}

// The dashboard only needs counts and the next visit, so it depends on
// narrow views of the other services rather than their full APIs.

type MedicationCounter interface {
	CountMedications(ctx context.Context, userID uuid.UUID) (int, error)
}

type ContactCounter interface {
	CountContacts(ctx context.Context, userID uuid.UUID) (int, error)
}

type ActivityCounter interface {
	CountActivities(ctx context.Context, userID uuid.UUID) (int, error)
}

type AppointmentSource interface {
	CountAppointments(ctx context.Context, userID uuid.UUID) (int, error)
	NextAppointment(ctx context.Context, userID uuid.UUID) (*appointment.Appointment, error)
}

type Service struct {
	medications  MedicationCounter
	appointments AppointmentSource
	contacts     ContactCounter
	activities   ActivityCounter
}

func NewService(meds MedicationCounter, appts AppointmentSource, contacts ContactCounter, acts ActivityCounter) *Service {
	return &Service{medications: meds, appointments: appts, contacts: contacts, activities: acts}
}

func (s *Service) GetSummary(ctx context.Context, userID uuid.UUID) (*Summary, error) {
	var sum Summary
	var err error

	if sum.MedicationCount, err = s.medications.CountMedications(ctx, userID); err != nil {
		return nil, fmt.Errorf("count medications: %w", err)
	}
	if sum.AppointmentCount, err = s.appointments.CountAppointments(ctx, userID); err != nil {
		return nil, fmt.Errorf("count appointments: %w", err)
	}
	if sum.ContactCount, err = s.contacts.CountContacts(ctx, userID); err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}
	if sum.ActivityCount, err = s.activities.CountActivities(ctx, userID); err != nil {
		return nil, fmt.Errorf("count activities: %w", err)
	}

	next, err := s.appointments.NextAppointment(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("next appointment: %w", err)
	}
	if next != nil {
		sum.NextAppointment = &NextAppointment{
			ID:              next.ID,
			Title:           next.Title,
			DoctorName:      next.DoctorName,
			Location:        next.Location,
			AppointmentDate: next.AppointmentDate,
		}
	}
	return &sum, nil
}
