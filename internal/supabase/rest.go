package supabase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	postgrest "github.com/supabase-community/postgrest-go"
	"github.com/supabase-community/supabase-go"
	"portfolio-backend/internal/models"
)

var newestFirst = &postgrest.OrderOpts{Ascending: false}

// RestClient is the store used when no direct database URL is configured.
// It goes through the Supabase PostgREST API with the same table layout.
type RestClient struct {
	client *supabase.Client
}

func NewRestClient(client *supabase.Client) *RestClient {
	return &RestClient{client: client}
}

func (r *RestClient) InsertReview(ctx context.Context, review models.NewReview) (*models.Review, error) {
	var created []models.Review
	_, err := r.client.From("reviews").
		Insert(review, false, "", "representation", "").
		ExecuteToWithContext(ctx, &created)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("failed to create review: empty response")
	}
	return &created[0], nil
}

func (r *RestClient) ListReviews(ctx context.Context) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	_, err := r.client.From("reviews").
		Select("*", "", false).
		Order("created_at", newestFirst).
		ExecuteToWithContext(ctx, &reviews)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (r *RestClient) ListApprovedReviews(ctx context.Context, limit int) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	_, err := r.client.From("reviews").
		Select("*", "", false).
		Eq("status", models.ReviewStatusApproved).
		Order("created_at", newestFirst).
		Limit(limit, "").
		ExecuteToWithContext(ctx, &reviews)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

func (r *RestClient) SetReviewStatus(ctx context.Context, reviewID uuid.UUID, status string, approvedAt *time.Time) (*models.Review, error) {
	var updated []models.Review
	_, err := r.client.From("reviews").
		Update(map[string]interface{}{"status": status, "approved_at": approvedAt}, "representation", "").
		Eq("id", reviewID.String()).
		ExecuteToWithContext(ctx, &updated)
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	if len(updated) == 0 {
		return nil, models.ErrNotFound
	}
	return &updated[0], nil
}

func (r *RestClient) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	return r.deleteByID(ctx, "reviews", reviewID)
}

func (r *RestClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	_, err := r.client.From("orders").
		Select("*", "", false).
		Order("created_at", newestFirst).
		ExecuteToWithContext(ctx, &orders)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (r *RestClient) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string, version *int64) (*models.Order, error) {
	return r.updateOrder(ctx, orderID, map[string]interface{}{"status": status}, version)
}

func (r *RestClient) UpdateOrderNotes(ctx context.Context, orderID uuid.UUID, notes *string, version *int64) (*models.Order, error) {
	return r.updateOrder(ctx, orderID, map[string]interface{}{"admin_notes": notes}, version)
}

func (r *RestClient) updateOrder(ctx context.Context, orderID uuid.UUID, values map[string]interface{}, version *int64) (*models.Order, error) {
	query := r.client.From("orders").
		Update(values, "representation", "").
		Eq("id", orderID.String())
	if version != nil {
		query = query.Eq("version", strconv.FormatInt(*version, 10))
	}

	var updated []models.Order
	if _, err := query.ExecuteToWithContext(ctx, &updated); err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	if len(updated) > 0 {
		return &updated[0], nil
	}

	exists, err := r.exists(ctx, "orders", orderID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.ErrVersionConflict
	}
	return nil, models.ErrNotFound
}

func (r *RestClient) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	return r.deleteByID(ctx, "orders", orderID)
}

func (r *RestClient) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	var deleted []map[string]interface{}
	_, err := r.client.From(table).
		Delete("representation", "").
		Eq("id", id.String()).
		ExecuteToWithContext(ctx, &deleted)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if len(deleted) == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *RestClient) exists(ctx context.Context, table string, id uuid.UUID) (bool, error) {
	var rows []map[string]interface{}
	_, err := r.client.From(table).
		Select("id", "", false).
		Eq("id", id.String()).
		ExecuteToWithContext(ctx, &rows)
	if err != nil {
		return false, fmt.Errorf("failed to check %s: %w", table, err)
	}
	return len(rows) > 0, nil
}
