package model

import "time"

// Appointment represents a booked appointment slot
type Appointment struct {
	ID         string    `json:"id"`
	Email      string    `json:"email"`
	DoctorID   int       `json:"doctor_id"`
	DoctorName string    `json:"doctor_name"`
	Date       time.Time `json:"date"`
	Slot       string    `json:"slot"`
	CreatedAt  time.Time `json:"created_at"`
}

// CreateAppointmentRequest is the payload for booking an appointment
type CreateAppointmentRequest struct {
	DoctorID   int    `json:"doctor_id" binding:"required"`
	DoctorName string `json:"doctor_name" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Slot       string `json:"slot" binding:"required"`
}
