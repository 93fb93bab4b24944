package composer

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"portfolio-backend/internal/client"
	"portfolio-backend/internal/models"
)

// Confirm asks the operator before an irreversible action.
type Confirm func(prompt string) bool

// AdminBoard is the client model of the admin dashboard. Counters are always
// computed from the loaded sets. Order status changes show immediately and
// fall back to the last confirmed order when the server refuses them.
type AdminBoard struct {
	api     AdminAPI
	confirm Confirm

	mu           sync.Mutex
	orders       []models.Order
	confirmed    map[uuid.UUID]models.Order
	reviews      []models.Review
	ordersError  string
	reviewsError string
	editingID    uuid.UUID
	notesDraft   string
	needsLogin   bool
}

func NewAdminBoard(api AdminAPI, confirm Confirm) *AdminBoard {
	return &AdminBoard{
		api:       api,
		confirm:   confirm,
		confirmed: make(map[uuid.UUID]models.Order),
	}
}

// Load replaces both sets with a fresh dashboard.
func (b *AdminBoard) Load(ctx context.Context) error {
	dash, err := b.api.Dashboard(ctx)
	if err != nil {
		return b.fail(err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.orders = dash.Orders
	b.reviews = dash.Reviews
	b.ordersError = dash.OrdersError
	b.reviewsError = dash.ReviewsError
	b.confirmed = make(map[uuid.UUID]models.Order, len(dash.Orders))
	for _, o := range dash.Orders {
		b.confirmed[o.ID] = o
	}
	b.needsLogin = false
	return nil
}

func (b *AdminBoard) Orders() []models.Order {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Order, len(b.orders))
	copy(out, b.orders)
	return out
}

func (b *AdminBoard) Reviews() []models.Review {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Review, len(b.reviews))
	copy(out, b.reviews)
	return out
}

// SectionErrors returns the per-list load errors of the last Load.
func (b *AdminBoard) SectionErrors() (orders, reviews string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.ordersError, b.reviewsError
}

func (b *AdminBoard) Stats() models.DashboardStats {
	b.mu.Lock()
	defer b.mu.Unlock()
	return models.StatsFor(b.orders, b.reviews)
}

// NeedsLogin reports that the last call was rejected for lack of a session.
func (b *AdminBoard) NeedsLogin() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.needsLogin
}

func (b *AdminBoard) fail(err error) error {
	if errors.Is(err, client.ErrUnauthorized) {
		b.mu.Lock()
		b.needsLogin = true
		b.editingID = uuid.Nil
		b.notesDraft = ""
		b.mu.Unlock()
	}
	return err
}

func (b *AdminBoard) orderIndex(id uuid.UUID) int {
	for i := range b.orders {
		if b.orders[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *AdminBoard) replaceOrder(o models.Order) {
	if i := b.orderIndex(o.ID); i >= 0 {
		b.orders[i] = o
	}
	b.confirmed[o.ID] = o
}

// SetStatus shows the new status at once and writes it with the version of
// the last confirmed order. On failure the order goes back to that confirmed
// state and the error is returned.
func (b *AdminBoard) SetStatus(ctx context.Context, orderID uuid.UUID, status string) error {
	b.mu.Lock()
	i := b.orderIndex(orderID)
	if i < 0 {
		b.mu.Unlock()
		return fmt.Errorf("order %s is not loaded", orderID)
	}
	version := b.confirmed[orderID].Version
	b.orders[i].Status = status
	b.mu.Unlock()

	updated, err := b.api.UpdateOrderStatus(ctx, orderID, status, &version)

	b.mu.Lock()
	if err != nil {
		if j := b.orderIndex(orderID); j >= 0 {
			b.orders[j] = b.confirmed[orderID]
		}
		b.mu.Unlock()
		return b.fail(err)
	}
	b.replaceOrder(*updated)
	b.mu.Unlock()
	return nil
}

// BeginNotes opens the notes editor for one order with its saved text.
func (b *AdminBoard) BeginNotes(orderID uuid.UUID) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := b.orderIndex(orderID)
	if i < 0 {
		return fmt.Errorf("order %s is not loaded", orderID)
	}
	b.editingID = orderID
	b.notesDraft = ""
	if b.orders[i].AdminNotes != nil {
		b.notesDraft = *b.orders[i].AdminNotes
	}
	return nil
}

func (b *AdminBoard) EditNotes(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.notesDraft = text
}

// Editing returns the order being edited and the unsaved text.
func (b *AdminBoard) Editing() (uuid.UUID, string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.editingID, b.notesDraft, b.editingID != uuid.Nil
}

func (b *AdminBoard) CancelNotes() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.editingID = uuid.Nil
	b.notesDraft = ""
}

// SaveNotes writes the draft. The editor stays open when the write fails.
func (b *AdminBoard) SaveNotes(ctx context.Context) error {
	b.mu.Lock()
	if b.editingID == uuid.Nil {
		b.mu.Unlock()
		return errors.New("no notes edit in progress")
	}
	orderID, draft := b.editingID, b.notesDraft
	version := b.confirmed[orderID].Version
	b.mu.Unlock()

	updated, err := b.api.UpdateOrderNotes(ctx, orderID, draft, &version)
	if err != nil {
		return b.fail(err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.replaceOrder(*updated)
	b.editingID = uuid.Nil
	b.notesDraft = ""
	return nil
}

// DeleteOrder removes the order after confirmation. The row leaves the
// board only once the server confirmed the delete.
func (b *AdminBoard) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if b.confirm != nil && !b.confirm("Delete this order? This cannot be undone.") {
		return ErrCancelled
	}
	if err := b.api.DeleteOrder(ctx, orderID); err != nil {
		return b.fail(err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if i := b.orderIndex(orderID); i >= 0 {
		b.orders = append(b.orders[:i], b.orders[i+1:]...)
	}
	delete(b.confirmed, orderID)
	if b.editingID == orderID {
		b.editingID = uuid.Nil
		b.notesDraft = ""
	}
	return nil
}

func (b *AdminBoard) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	if b.confirm != nil && !b.confirm("Delete this review? This cannot be undone.") {
		return ErrCancelled
	}
	if err := b.api.DeleteReview(ctx, reviewID); err != nil {
		return b.fail(err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.reviews {
		if b.reviews[i].ID == reviewID {
			b.reviews = append(b.reviews[:i], b.reviews[i+1:]...)
			break
		}
	}
	return nil
}

// Moderate approves or hides a review.
func (b *AdminBoard) Moderate(ctx context.Context, reviewID uuid.UUID, status string) error {
	updated, err := b.api.ModerateReview(ctx, reviewID, status)
	if err != nil {
		return b.fail(err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.reviews {
		if b.reviews[i].ID == reviewID {
			b.reviews[i] = *updated
			break
		}
	}
	return nil
}
