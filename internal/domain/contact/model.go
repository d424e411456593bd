package contact

import (
	"time"

	"github.com/google/uuid"
)

// Contact is an emergency contact. More than one contact may be flagged
// primary; the list shows them in the order they were added and leaves any
// primary bookkeeping to the caller.
type Contact struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	PhoneNumber  string    `json:"phone_number"`
	Email        string    `json:"email,omitempty"`
	IsPrimary    bool      `json:"is_primary"`
	CreatedAt    time.Time `json:"created_at"`
}
