package supabase_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	supabasego "github.com/supabase-community/supabase-go"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/supabase"
)

func newRestClient(t *testing.T, handler http.HandlerFunc) *supabase.RestClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := supabasego.NewClient(server.URL, "service-key", nil)
	require.NoError(t, err)
	return supabase.NewRestClient(client)
}

func TestRestClient_InsertReview(t *testing.T) {
	var body map[string]interface{}
	var prefer, apiKey string

	store := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/rest/v1/reviews", r.URL.Path)
		prefer = r.Header.Get("Prefer")
		apiKey = r.Header.Get("apikey")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`[{"id":"6f1c5b1e-3c43-4a8b-9d1e-2a6f7f0b9c11","client_name":"Jane Doe","client_email":null,
			"overall_experience":"Excellent","project_type":"Landing Page","delivery":"On Time",
			"communication":"Excellent","optional_comment":null,"would_recommend":"Yes",
			"generated_review":"Great work.","rating":5,"status":"pending",
			"created_at":"2026-01-02T10:00:00Z","approved_at":null}]`))
	})

	rating := 5
	created, err := store.InsertReview(context.Background(), models.NewReview{
		ClientName:        "Jane Doe",
		OverallExperience: "Excellent",
		ProjectType:       "Landing Page",
		Delivery:          "On Time",
		Communication:     "Excellent",
		WouldRecommend:    "Yes",
		GeneratedReview:   "Great work.",
		Rating:            &rating,
		Status:            models.ReviewStatusPending,
	})
	require.NoError(t, err)

	assert.Contains(t, prefer, "return=representation")
	assert.Equal(t, "service-key", apiKey)
	assert.Equal(t, "Jane Doe", body["client_name"])
	assert.Nil(t, body["client_email"])
	assert.EqualValues(t, 5, body["rating"])

	assert.Equal(t, "Jane Doe", created.ClientName)
	require.NotNil(t, created.Rating)
	assert.Equal(t, 5, *created.Rating)
	assert.Nil(t, created.ApprovedAt)
}

func TestRestClient_ListApprovedReviews(t *testing.T) {
	store := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "eq.approved", q.Get("status"))
		assert.Equal(t, "created_at.desc.nullslast", q.Get("order"))
		assert.Equal(t, "6", q.Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	reviews, err := store.ListApprovedReviews(context.Background(), 6)
	require.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}

func TestRestClient_ListOrders_Error(t *testing.T) {
	store := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"42501","message":"permission denied for table orders"}`))
	})

	_, err := store.ListOrders(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestRestClient_UpdateOrderStatus_VersionConflict(t *testing.T) {
	id := uuid.New()
	var patchQuery map[string][]string

	store := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.Method {
		case http.MethodPatch:
			patchQuery = r.URL.Query()
			w.Write([]byte(`[]`))
		case http.MethodGet:
			w.Write([]byte(`[{"id":"` + id.String() + `"}]`))
		}
	})

	version := int64(3)
	_, err := store.UpdateOrderStatus(context.Background(), id, models.OrderStatusCompleted, &version)

	assert.ErrorIs(t, err, models.ErrVersionConflict)
	assert.Equal(t, []string{"eq." + id.String()}, patchQuery["id"])
	assert.Equal(t, []string{"eq.3"}, patchQuery["version"])
}

func TestRestClient_UpdateOrderNotes_NotFound(t *testing.T) {
	store := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	notes := "call back"
	_, err := store.UpdateOrderNotes(context.Background(), uuid.New(), &notes, nil)
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestRestClient_UpdateOrderStatus(t *testing.T) {
	id := uuid.New()
	var body map[string]interface{}

	store := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, hasVersion := r.URL.Query()["version"]
		assert.False(t, hasVersion)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"` + id.String() + `","full_name":"Sam","email":"sam@example.com","whatsapp":"+1",
			"business_name":"Sam Co","niche":"bakery","website_goal":"ecommerce","status":"in-progress",
			"version":4,"created_at":"2026-01-02T10:00:00Z","updated_at":"2026-01-03T10:00:00Z"}]`))
	})

	order, err := store.UpdateOrderStatus(context.Background(), id, models.OrderStatusInProgress, nil)
	require.NoError(t, err)

	assert.Equal(t, "in-progress", body["status"])
	assert.Equal(t, models.OrderStatusInProgress, order.Status)
	assert.EqualValues(t, 4, order.Version)
	assert.Equal(t, "Ecommerce / Online Store", order.GoalText())
}

func TestRestClient_DeleteReview(t *testing.T) {
	deleted := false
	store := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		w.Header().Set("Content-Type", "application/json")
		if deleted {
			w.Write([]byte(`[]`))
			return
		}
		deleted = true
		w.Write([]byte(`[{"id":"x"}]`))
	})

	id := uuid.New()
	require.NoError(t, store.DeleteReview(context.Background(), id))
	assert.ErrorIs(t, store.DeleteReview(context.Background(), id), models.ErrNotFound)
}

func TestRestClient_CancelledContext(t *testing.T) {
	var hits atomic.Int32
	store := newRestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.ListOrders(ctx)
	assert.Error(t, err)

	_, err = store.UpdateOrderStatus(ctx, uuid.New(), models.OrderStatusCompleted, nil)
	assert.Error(t, err)
	assert.Error(t, store.DeleteOrder(ctx, uuid.New()))

	assert.Zero(t, hits.Load())
}
