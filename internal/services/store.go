package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"portfolio-backend/internal/models"
)

// ReviewStore is implemented by supabase.DatabaseClient and supabase.RestClient.
type ReviewStore interface {
	InsertReview(ctx context.Context, review models.NewReview) (*models.Review, error)
	ListReviews(ctx context.Context) ([]models.Review, error)
	ListApprovedReviews(ctx context.Context, limit int) ([]models.Review, error)
	SetReviewStatus(ctx context.Context, reviewID uuid.UUID, status string, approvedAt *time.Time) (*models.Review, error)
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
}

type OrderStore interface {
	ListOrders(ctx context.Context) ([]models.Order, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string, version *int64) (*models.Order, error)
	UpdateOrderNotes(ctx context.Context, orderID uuid.UUID, notes *string, version *int64) (*models.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
}

var (
	ErrValidation = errors.New("validation failed")
	ErrNotFound   = models.ErrNotFound
	ErrConflict   = models.ErrVersionConflict
	ErrGeneration = errors.New("failed to generate review")
)

// ValidationError carries the message shown to the visitor.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func invalid(message string) error {
	return &ValidationError{Message: message}
}
