package medication

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, m *Medication) error
	GetByID(ctx context.Context, id uuid.UUID) (*Medication, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Medication, int, error)
	CountByOwner(ctx context.Context, userID uuid.UUID) (int, error)
}
