package medication

import (
	"time"

	"github.com/google/uuid"
)

// Medication is a single medication entry on a user's list. Entries are
// append-only: there is no update or delete, matching how caregivers keep a
// running log.
type Medication struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"user_id"`
	Name      string     `json:"name"`
	Dosage    string     `json:"dosage"`
	Frequency string     `json:"frequency"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Notes     string     `json:"notes,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
