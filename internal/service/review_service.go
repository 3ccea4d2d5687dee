package service

import (
	"context"
	"fmt"
	"time"

	"dochouse/internal/model"
	"dochouse/internal/repository"
)

// ReviewService provides patient review services
type ReviewService interface {
	CreateReview(ctx context.Context, userEmail string, req model.CreateReviewRequest) (*model.Review, error)
	GetReviews(ctx context.Context) ([]model.Review, error)
}

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

// NewReviewService creates a new ReviewService
func NewReviewService(reviewRepo repository.ReviewRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo}
}

// CreateReview records a review under the authenticated user's email
func (s *reviewService) CreateReview(ctx context.Context, userEmail string, req model.CreateReviewRequest) (*model.Review, error) {
	review := &model.Review{
		UserEmail: userEmail,
		Name:      req.Name,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return review, nil
}

// GetReviews retrieves all reviews
func (s *reviewService) GetReviews(ctx context.Context) ([]model.Review, error) {
	return s.reviewRepo.FindAll(ctx)
}
