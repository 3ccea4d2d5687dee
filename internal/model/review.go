package model

import "time"

// Review represents a patient review displayed on the site
type Review struct {
	ID        int       `json:"id"`
	UserEmail string    `json:"user_email"`
	Name      string    `json:"name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateReviewRequest is the payload for posting a review
type CreateReviewRequest struct {
	Name    string `json:"name" binding:"required"`
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"required"`
}
