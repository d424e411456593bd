package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, a *Appointment) error
	GetByID(ctx context.Context, id uuid.UUID) (*Appointment, error)
	ListByOwner(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*Appointment, int, error)
	CountByOwner(ctx context.Context, userID uuid.UUID) (int, error)
	NextUpcoming(ctx context.Context, userID uuid.UUID, after time.Time) (*Appointment, error)
}
