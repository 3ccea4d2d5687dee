package model

import "time"

// Doctor represents a doctor listing shown to patients
type Doctor struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	PhotoURL  string    `json:"photo_url,omitempty"`
	About     string    `json:"about,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateDoctorRequest is the payload for adding a doctor listing
type CreateDoctorRequest struct {
	Name      string `json:"name" binding:"required"`
	Specialty string `json:"specialty" binding:"required"`
	PhotoURL  string `json:"photo_url"`
	About     string `json:"about"`
}
