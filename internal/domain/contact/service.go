package contact

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

func (s *Service) CreateContact(ctx context.Context, c *Contact) error {
	if c.UserID == uuid.Nil {
		return fmt.Errorf("user_id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("name is required")
	}
	if c.Relationship == "" {
		return fmt.Errorf("relationship is required")
	}
	if c.PhoneNumber == "" {
		return fmt.Errorf("phone_number is required")
	}
	return s.repo.Create(ctx, c)
}

func (s *Service) GetContact(ctx context.Context, userID, id uuid.UUID) (*Contact, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.UserID != userID {
		return nil, fmt.Errorf("contact not found")
	}
	return c, nil
}

func (s *Service) ListContacts(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Contact, int, error) {
	return s.repo.ListByOwner(ctx, userID, limit, offset)
}

// CountContacts reports the user's total, for the dashboard summary.
func (s *Service) CountContacts(ctx context.Context, userID uuid.UUID) (int, error) {
	return s.repo.CountByOwner(ctx, userID)
}
