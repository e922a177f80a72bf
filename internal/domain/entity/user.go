package entity

import "time"

// User is the operator account kept in the auth partition. The application
// ships with a single configured admin; there is no self-registration.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	Role         string    `json:"role"` // admin
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}
