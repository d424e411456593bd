package appointment

import (
	"time"

	"github.com/google/uuid"
)

// Appointment is a scheduled visit with a care provider.
type Appointment struct {
	ID              uuid.UUID `json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	Title           string    `json:"title"`
	DoctorName      string    `json:"doctor_name"`
	Location        string    `json:"location"`
	AppointmentDate time.Time `json:"appointment_date"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}
