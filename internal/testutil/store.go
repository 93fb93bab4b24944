// Package testutil has in-memory stand-ins for the store and the generator.
package testutil

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"portfolio-backend/internal/models"
)

// MemoryStore satisfies services.ReviewStore and services.OrderStore. Set
// the *Err fields to make the matching call fail.
type MemoryStore struct {
	mu      sync.Mutex
	reviews []models.Review
	orders  []models.Order
	clock   time.Time

	ListOrdersErr   error
	ListReviewsErr  error
	InsertReviewErr error
	UpdateOrderErr  error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{clock: time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)}
}

// tick hands out strictly increasing timestamps so ordering is stable.
func (m *MemoryStore) tick() time.Time {
	m.clock = m.clock.Add(time.Minute)
	return m.clock
}

// AddOrder seeds an order the way the external intake form would.
func (m *MemoryStore) AddOrder(fullName, status string) models.Order {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.tick()
	o := models.Order{
		ID:           uuid.New(),
		FullName:     fullName,
		Email:        "client@example.com",
		WhatsApp:     "+10000000000",
		BusinessName: fullName + " Studio",
		Niche:        "design",
		WebsiteGoal:  "personal",
		Status:       status,
		Version:      1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	m.orders = append(m.orders, o)
	return o
}

func (m *MemoryStore) InsertReview(_ context.Context, review models.NewReview) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.InsertReviewErr != nil {
		return nil, m.InsertReviewErr
	}
	r := models.Review{
		ID:                uuid.New(),
		ClientName:        review.ClientName,
		ClientEmail:       review.ClientEmail,
		OverallExperience: review.OverallExperience,
		ProjectType:       review.ProjectType,
		Delivery:          review.Delivery,
		Communication:     review.Communication,
		OptionalComment:   review.OptionalComment,
		WouldRecommend:    review.WouldRecommend,
		GeneratedReview:   review.GeneratedReview,
		Rating:            review.Rating,
		Status:            review.Status,
		CreatedAt:         m.tick(),
		ApprovedAt:        review.ApprovedAt,
	}
	m.reviews = append(m.reviews, r)
	return &r, nil
}

func (m *MemoryStore) ListReviews(_ context.Context) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListReviewsErr != nil {
		return nil, m.ListReviewsErr
	}
	return m.sortedReviews(""), nil
}

func (m *MemoryStore) ListApprovedReviews(_ context.Context, limit int) ([]models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListReviewsErr != nil {
		return nil, m.ListReviewsErr
	}
	reviews := m.sortedReviews(models.ReviewStatusApproved)
	if len(reviews) > limit {
		reviews = reviews[:limit]
	}
	return reviews, nil
}

func (m *MemoryStore) sortedReviews(status string) []models.Review {
	out := make([]models.Review, 0, len(m.reviews))
	for _, r := range m.reviews {
		if status == "" || r.Status == status {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (m *MemoryStore) SetReviewStatus(_ context.Context, reviewID uuid.UUID, status string, approvedAt *time.Time) (*models.Review, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.reviews {
		if m.reviews[i].ID == reviewID {
			m.reviews[i].Status = status
			m.reviews[i].ApprovedAt = approvedAt
			r := m.reviews[i]
			return &r, nil
		}
	}
	return nil, models.ErrNotFound
}

func (m *MemoryStore) DeleteReview(_ context.Context, reviewID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.reviews {
		if m.reviews[i].ID == reviewID {
			m.reviews = append(m.reviews[:i], m.reviews[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

func (m *MemoryStore) ListOrders(_ context.Context) ([]models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.ListOrdersErr != nil {
		return nil, m.ListOrdersErr
	}
	out := make([]models.Order, len(m.orders))
	copy(out, m.orders)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *MemoryStore) UpdateOrderStatus(_ context.Context, orderID uuid.UUID, status string, version *int64) (*models.Order, error) {
	return m.updateOrder(orderID, version, func(o *models.Order) { o.Status = status })
}

func (m *MemoryStore) UpdateOrderNotes(_ context.Context, orderID uuid.UUID, notes *string, version *int64) (*models.Order, error) {
	return m.updateOrder(orderID, version, func(o *models.Order) { o.AdminNotes = notes })
}

func (m *MemoryStore) updateOrder(orderID uuid.UUID, version *int64, apply func(*models.Order)) (*models.Order, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.UpdateOrderErr != nil {
		return nil, m.UpdateOrderErr
	}
	for i := range m.orders {
		o := &m.orders[i]
		if o.ID != orderID {
			continue
		}
		if version != nil && *version != o.Version {
			return nil, models.ErrVersionConflict
		}
		apply(o)
		o.Version++
		o.UpdatedAt = m.tick()
		updated := *o
		return &updated, nil
	}
	return nil, models.ErrNotFound
}

func (m *MemoryStore) DeleteOrder(_ context.Context, orderID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.orders {
		if m.orders[i].ID == orderID {
			m.orders = append(m.orders[:i], m.orders[i+1:]...)
			return nil
		}
	}
	return models.ErrNotFound
}

// FailUpdates makes later order updates return err. Safe while a server is
// running.
func (m *MemoryStore) FailUpdates(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateOrderErr = err
}
