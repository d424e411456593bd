package contact

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, c *Contact) error
	GetByID(ctx context.Context, id uuid.UUID) (*Contact, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Contact, int, error)
	CountByOwner(ctx context.Context, userID uuid.UUID) (int, error)
}
