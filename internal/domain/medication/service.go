package medication

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateMedication(ctx context.Context, m *Medication) error {
	if m.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	if m.Dosage == "" {
		return fmt.Errorf("dosage is required")
	}
	if m.Frequency == "" {
		return fmt.Errorf("frequency is required")
	}
	if m.StartDate.IsZero() {
		return fmt.Errorf("start_date is required")
	}
	if m.EndDate != nil && m.EndDate.Before(m.StartDate) {
		return fmt.Errorf("end_date cannot be before start_date")
	}
	return s.repo.Create(ctx, m)
}

// GetMedication fetches a single entry, scoped to its owner so one user
// cannot read another's entries by guessing IDs.
func (s *Service) GetMedication(ctx context.Context, userID, id uuid.UUID) (*Medication, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.UserID != userID {
		return nil, fmt.Errorf("medication not found")
	}
	return m, nil
}

func (s *Service) ListMedications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Medication, int, error) {
	return s.repo.ListByOwner(ctx, userID, limit, offset)
}

// CountMedications reports the user's total, for the dashboard summary.
func (s *Service) CountMedications(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountByOwner(ctx, userID)
}
