package activity

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

func (s *Service) LogActivity(ctx context.Context, a *Activity) error {
	if a.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if a.Description == "" {
		return fmt.Errorf("description is required")
	}
	if a.OccurredOn.IsZero() {
		return fmt.Errorf("occurred_on is required")
	}
	if a.DurationMinutes < 0 {
		return fmt.Errorf("duration_minutes cannot be negative")
	}
	return s.repo.Create(ctx, a)
}

func (s *Service) GetActivity(ctx context.Context, userID, id uuid.UUID) (*Activity, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a.UserID != userID {
		return nil, fmt.Errorf("activity not found")
	}
	return a, nil
}

func (s *Service) ListActivities(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Activity, int, error) {
	return s.repo.ListByOwner(ctx, userID, limit, offset)
}

// CountActivities reports the user's total, for the dashboard summary.
func (s *Service) CountActivities(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountByOwner(ctx, userID)
}
