package supabase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"portfolio-backend/internal/models"
)

const reviewColumns = `id, client_name, client_email, overall_experience, project_type, delivery,
	communication, optional_comment, would_recommend, generated_review, rating, status,
	created_at, approved_at`

const orderColumns = `id, full_name, email, whatsapp, business_name, niche, website_goal,
	website_goal_other, key_features, special_requests, reference_style, status, admin_notes,
	version, created_at, updated_at`

// DatabaseClient talks to the Supabase Postgres instance directly.
type DatabaseClient struct {
	db *sql.DB
}

func NewDatabaseClient(connectionString string) (*DatabaseClient, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DatabaseClient{db: db}, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReview(row rowScanner) (*models.Review, error) {
	var r models.Review
	err := row.Scan(
		&r.ID, &r.ClientName, &r.ClientEmail, &r.OverallExperience, &r.ProjectType, &r.Delivery,
		&r.Communication, &r.OptionalComment, &r.WouldRecommend, &r.GeneratedReview, &r.Rating, &r.Status,
		&r.CreatedAt, &r.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func scanOrder(row rowScanner) (*models.Order, error) {
	var o models.Order
	err := row.Scan(
		&o.ID, &o.FullName, &o.Email, &o.WhatsApp, &o.BusinessName, &o.Niche, &o.WebsiteGoal,
		&o.WebsiteGoalOther, &o.KeyFeatures, &o.SpecialRequests, &o.ReferenceStyle, &o.Status, &o.AdminNotes,
		&o.Version, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (d *DatabaseClient) InsertReview(ctx context.Context, review models.NewReview) (*models.Review, error) {
	row := d.db.QueryRowContext(ctx, `
		INSERT INTO reviews (client_name, client_email, overall_experience, project_type, delivery,
			communication, optional_comment, would_recommend, generated_review, rating, status, approved_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING `+reviewColumns,
		review.ClientName, review.ClientEmail, review.OverallExperience, review.ProjectType, review.Delivery,
		review.Communication, review.OptionalComment, review.WouldRecommend, review.GeneratedReview,
		review.Rating, review.Status, review.ApprovedAt,
	)

	created, err := scanReview(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return created, nil
}

func (d *DatabaseClient) queryReviews(ctx context.Context, query string, args ...interface{}) ([]models.Review, error) {
	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]models.Review, 0)
	for rows.Next() {
		r, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

func (d *DatabaseClient) ListReviews(ctx context.Context) ([]models.Review, error) {
	return d.queryReviews(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		ORDER BY created_at DESC
	`)
}

func (d *DatabaseClient) ListApprovedReviews(ctx context.Context, limit int) ([]models.Review, error) {
	return d.queryReviews(ctx, `
		SELECT `+reviewColumns+`
		FROM reviews
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT $2
	`, models.ReviewStatusApproved, limit)
}

func (d *DatabaseClient) SetReviewStatus(ctx context.Context, reviewID uuid.UUID, status string, approvedAt *time.Time) (*models.Review, error) {
	row := d.db.QueryRowContext(ctx, `
		UPDATE reviews
		SET status = $1, approved_at = $2
		WHERE id = $3
		RETURNING `+reviewColumns,
		status, approvedAt, reviewID,
	)

	updated, err := scanReview(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update review: %w", err)
	}
	return updated, nil
}

func (d *DatabaseClient) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	return d.deleteByID(ctx, "reviews", reviewID)
}

func (d *DatabaseClient) ListOrders(ctx context.Context) ([]models.Order, error) {
	rows, err := d.db.QueryContext(ctx, `
		SELECT `+orderColumns+`
		FROM orders
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]models.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	return orders, nil
}

// UpdateOrderStatus writes the status. With a non-nil version the write only
// applies when the stored version still matches. The orders trigger bumps
// version and updated_at.
func (d *DatabaseClient) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status string, version *int64) (*models.Order, error) {
	return d.updateOrder(ctx, "status", status, orderID, version)
}

func (d *DatabaseClient) UpdateOrderNotes(ctx context.Context, orderID uuid.UUID, notes *string, version *int64) (*models.Order, error) {
	return d.updateOrder(ctx, "admin_notes", notes, orderID, version)
}

func (d *DatabaseClient) updateOrder(ctx context.Context, column string, value interface{}, orderID uuid.UUID, version *int64) (*models.Order, error) {
	row := d.db.QueryRowContext(ctx, `
		UPDATE orders
		SET `+column+` = $1
		WHERE id = $2 AND ($3::bigint IS NULL OR version = $3)
		RETURNING `+orderColumns,
		value, orderID, version,
	)

	updated, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, d.missingOrConflict(ctx, "orders", orderID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return updated, nil
}

func (d *DatabaseClient) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	return d.deleteByID(ctx, "orders", orderID)
}

func (d *DatabaseClient) deleteByID(ctx context.Context, table string, id uuid.UUID) error {
	result, err := d.db.ExecContext(ctx, `DELETE FROM `+table+` WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	if affected == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (d *DatabaseClient) missingOrConflict(ctx context.Context, table string, id uuid.UUID) error {
	var exists bool
	err := d.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM `+table+` WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("failed to check %s: %w", table, err)
	}
	if exists {
		return models.ErrVersionConflict
	}
	return models.ErrNotFound
}

func (d *DatabaseClient) Close() error {
	return d.db.Close()
}
