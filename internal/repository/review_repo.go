package repository

import (
	"context"
	"fmt"

	"dochouse/internal/model"
)

// ReviewRepository defines operations for patient reviews
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	FindAll(ctx context.Context) ([]model.Review, error)
}

type reviewRepository struct {
	db DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a new review
func (r *reviewRepository) Create(ctx context.Context, rv *model.Review) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	sql := `INSERT INTO reviews (user_email, name, rating, comment, created_at)
            VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRow(ctx, sql, rv.UserEmail, rv.Name, rv.Rating, rv.Comment, rv.CreatedAt).Scan(&rv.ID)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// FindAll retrieves all reviews, newest first
func (r *reviewRepository) FindAll(ctx context.Context) ([]model.Review, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	sql := `SELECT id, user_email, name, rating, comment, created_at FROM reviews ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.UserEmail, &rv.Name, &rv.Rating, &rv.Comment, &rv.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}
	return reviews, nil
}
