// Package composer holds the client-side state machines behind the review
// form, the standalone generator widget and the admin board. They talk to the
// API through small interfaces that *client.Client satisfies.
package composer

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/review"
)

var (
	// ErrBusy is returned while the same action is already in flight.
	ErrBusy = errors.New("request already in progress")
	// ErrSubmitted is returned by a form that already published its review.
	ErrSubmitted = errors.New("review already submitted")
	// ErrCancelled is returned when a confirmation was declined.
	ErrCancelled = errors.New("cancelled")
)

// InputError is a local validation failure; no request was sent.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

type GatewayAPI interface {
	GenerateReview(ctx context.Context, fields review.Fields) (string, error)
}

type SubmissionAPI interface {
	DraftReview(ctx context.Context, req models.DraftReviewRequest) (*models.DraftReviewResponse, error)
	PublishReview(ctx context.Context, req models.PublishReviewRequest) (*models.Review, error)
}

type AdminAPI interface {
	Dashboard(ctx context.Context) (*models.DashboardResponse, error)
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string, version *int64) (*models.Order, error)
	UpdateOrderNotes(ctx context.Context, orderID uuid.UUID, notes string, version *int64) (*models.Order, error)
	DeleteOrder(ctx context.Context, orderID uuid.UUID) error
	DeleteReview(ctx context.Context, reviewID uuid.UUID) error
	ModerateReview(ctx context.Context, reviewID uuid.UUID, status string) (*models.Review, error)
}
