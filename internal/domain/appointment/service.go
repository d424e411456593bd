package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateAppointment(ctx context.Context, a *Appointment) error {
	if a.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if a.Title == "" {
		return fmt.Errorf("title is required")
	}
	if a.DoctorName == "" {
		return fmt.Errorf("doctor_name is required")
	}
	if a.Location == "" {
		return fmt.Errorf("location is required")
	}
	if a.AppointmentDate.IsZero() {
		return fmt.Errorf("appointment_date is required")
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) GetAppointment(ctx context.Context, userID, id uuid.UUID) (*Appointment, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, fmt.Errorf("appointment not found")
	}
	return a, nil
}

func (s *Service) ListAppointments(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Appointment, int, error) {
	return s.repo.ListByOwner(ctx, userID, limit, offset)
}

// NextAppointment returns the soonest appointment at or after now, or nil
// when there is none.
func (s *Service) NextAppointment(ctx context.Context, userID uuid.UUID) (*Appointment, error) {
	a, err := s.repo.NextUpcoming(ctx, userID, time.Now())
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

// CountAppointments reports the user's total, for the dashboard summary.
func (s *Service) CountAppointments(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountByOwner(ctx, userID)
}
