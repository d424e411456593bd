package activity

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*Activity, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Activity, int, error)
	CountByOwner(ctx context.Context, userID uuid.UUID) (int, error)
}
