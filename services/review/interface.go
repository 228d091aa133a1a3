// File: services/review/interface.go
package review

import (
	"context"

	"tourtravels/models"
)

// CreateReviewInput carries the fields of a new testimonial.
type CreateReviewInput struct {
	CustomerName string
	Rating       int
	Review       string
	ImagePath    string
}

// UpdateReviewInput carries optional replacements; zero values are kept.
type UpdateReviewInput struct {
	CustomerName string
	Rating       int
	Review       string
	ImagePath    string
	IsActive     *bool
}

// ReviewService manages customer testimonials.
type ReviewService interface {
	CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error)
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	GetActiveReviews(ctx context.Context) ([]models.Review, error)
	GetReviewByID(ctx context.Context, id string) (*models.Review, error)
	UpdateReview(ctx context.Context, id string, in UpdateReviewInput) (*models.Review, error)
	DeleteReview(ctx context.Context, id string) error
	ToggleReviewStatus(ctx context.Context, id string) (*models.Review, error)
	UpdateReviewOrder(ctx context.Context, id string, order int) error
	ReorderReviews(ctx context.Context, orders []models.ReviewOrderUpdate) error
}
