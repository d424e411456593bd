package activity

import (
	"time"

	"github.com/google/uuid"
)

// Activity is a logged daily activity such as a walk or an exercise class.
type Activity struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Description     string    `json:"description"`
	Category        string    `json:"category,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	OccurredOn      time.Time `json:"occurred_on"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
