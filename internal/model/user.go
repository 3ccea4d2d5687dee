package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a registered account in the system
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PhotoURL     string    `json:"photo_url,omitempty"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
