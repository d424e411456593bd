package identity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. The password hash never leaves the server.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Profile holds the care recipient's personal details. One row per user,
// written with an upsert so saving always succeeds whether or not a profile
// exists yet.
type Profile struct {
	UserID            uuid.UUID  `json:"user_id"`
	FullName          string     `json:"full_name"`
	DateOfBirth       *time.Time `json:"date_of_birth,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Address           string     `json:"address,omitempty"`
	MedicalConditions string     `json:"medical_conditions,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type SignUpRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionResponse is returned by signup, signin, and the session probe.
type SessionResponse struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user"`
}
