//go:build integration

package supabase_test

import (
	"context"
	"database/sql"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/supabase"
)

// Runs against a database that has db/schema.sql applied:
//
//	DATABASE_URL=postgres://... go test -tags integration ./internal/supabase/...
func newDatabaseClient(t *testing.T) (*supabase.DatabaseClient, *sql.DB) {
	t.Helper()
	_ = godotenv.Load("../../.env")

	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}

	client, err := supabase.NewDatabaseClient(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	raw, err := sql.Open("postgres", url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = raw.Close() })
	return client, raw
}

func TestDatabaseClient_ReviewLifecycle(t *testing.T) {
	db, _ := newDatabaseClient(t)
	ctx := context.Background()

	rating := 4
	created, err := db.InsertReview(ctx, models.NewReview{
		ClientName:        "Integration Reviewer",
		OverallExperience: "Very Good",
		ProjectType:       "Landing Page",
		Delivery:          "On Time",
		Communication:     "Very Good",
		WouldRecommend:    "Yes",
		GeneratedReview:   "Solid work, delivered as promised.",
		Rating:            &rating,
		Status:            models.ReviewStatusPending,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.DeleteReview(context.Background(), created.ID) })
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	approved, err := db.ListApprovedReviews(ctx, 10)
	require.NoError(t, err)
	for _, r := range approved {
		assert.NotEqual(t, created.ID, r.ID)
	}

	now := created.CreatedAt
	updated, err := db.SetReviewStatus(ctx, created.ID, models.ReviewStatusApproved, &now)
	require.NoError(t, err)
	assert.Equal(t, models.ReviewStatusApproved, updated.Status)
	require.NotNil(t, updated.ApprovedAt)

	require.NoError(t, db.DeleteReview(ctx, created.ID))
	assert.ErrorIs(t, db.DeleteReview(ctx, created.ID), models.ErrNotFound)
}

func TestDatabaseClient_OrderVersioning(t *testing.T) {
	db, raw := newDatabaseClient(t)
	ctx := context.Background()

	var id uuid.UUID
	var version int64
	err := raw.QueryRowContext(ctx, `
		INSERT INTO orders (full_name, email, whatsapp, business_name, niche, website_goal)
		VALUES ('Integration Client', 'client@example.com', '+10000000000', 'Studio', 'design', 'personal')
		RETURNING id, version
	`).Scan(&id, &version)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.DeleteOrder(context.Background(), id) })

	updated, err := db.UpdateOrderStatus(ctx, id, models.OrderStatusInProgress, &version)
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusInProgress, updated.Status)
	assert.Greater(t, updated.Version, version)

	_, err = db.UpdateOrderStatus(ctx, id, models.OrderStatusCompleted, &version)
	assert.ErrorIs(t, err, models.ErrVersionConflict)

	notes := "Call back Monday"
	updated, err = db.UpdateOrderNotes(ctx, id, &notes, nil)
	require.NoError(t, err)
	require.NotNil(t, updated.AdminNotes)
	assert.Equal(t, notes, *updated.AdminNotes)

	_, err = db.UpdateOrderNotes(ctx, uuid.New(), &notes, nil)
	assert.ErrorIs(t, err, models.ErrNotFound)

	require.NoError(t, db.DeleteOrder(ctx, id))
	assert.ErrorIs(t, db.DeleteOrder(ctx, id), models.ErrNotFound)
}
