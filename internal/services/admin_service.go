package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"portfolio-backend/internal/models"
)

type AdminService struct {
	orders  OrderStore
	reviews ReviewStore
	logger  *zap.Logger
	now     func() time.Time
}

func NewAdminService(orders OrderStore, reviews ReviewStore, logger *zap.Logger) *AdminService {
	return &AdminService{
		orders:  orders,
		reviews: reviews,
		logger:  logger,
		now:     time.Now,
	}
}

// Dashboard loads both lists at once. A failure in one section is reported
// in that section only; stats cover whatever loaded.
func (s *AdminService) Dashboard(ctx context.Context) models.DashboardResponse {
	var (
		wg         sync.WaitGroup
		orders     []models.Order
		reviews    []models.Review
		ordersErr  error
		reviewsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		orders, ordersErr = s.orders.ListOrders(ctx)
	}()
	go func() {
		defer wg.Done()
		reviews, reviewsErr = s.reviews.ListReviews(ctx)
	}()
	wg.Wait()

	resp := models.DashboardResponse{
		Orders:  make([]models.Order, 0),
		Reviews: make([]models.Review, 0),
	}
	if ordersErr != nil {
		s.logger.Error("failed to load orders", zap.Error(ordersErr))
		resp.OrdersError = "Failed to load orders"
	} else {
		resp.Orders = orders
	}
	if reviewsErr != nil {
		s.logger.Error("failed to load reviews", zap.Error(reviewsErr))
		resp.ReviewsError = "Failed to load reviews"
	} else {
		resp.Reviews = reviews
	}
	resp.Stats = models.StatsFor(resp.Orders, resp.Reviews)
	return resp
}

func (s *AdminService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListOrders(ctx)
}

func (s *AdminService) ListReviews(ctx context.Context) ([]models.Review, error) {
	return s.reviews.ListReviews(ctx)
}

// UpdateOrderStatus accepts any status in models.OrderStatuses regardless of
// the current one.
func (s *AdminService) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, req models.UpdateOrderStatusRequest) (*models.Order, error) {
	if !models.IsValidOrderStatus(req.Status) {
		return nil, invalid(fmt.Sprintf("invalid status %q, expected one of %s", req.Status, strings.Join(models.OrderStatuses, ", ")))
	}

	order, err := s.orders.UpdateOrderStatus(ctx, orderID, req.Status, req.Version)
	if err != nil {
		return nil, err
	}

	s.logger.Info("order status updated",
		zap.String("order_id", orderID.String()),
		zap.String("status", order.Status),
		zap.Int64("version", order.Version),
	)
	return order, nil
}

// UpdateOrderNotes stores NULL for blank notes.
func (s *AdminService) UpdateOrderNotes(ctx context.Context, orderID uuid.UUID, req models.UpdateOrderNotesRequest) (*models.Order, error) {
	var notes *string
	if trimmed := strings.TrimSpace(req.Notes); trimmed != "" {
		notes = &trimmed
	}
	return s.orders.UpdateOrderNotes(ctx, orderID, notes, req.Version)
}

func (s *AdminService) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	if err := s.orders.DeleteOrder(ctx, orderID); err != nil {
		return err
	}
	s.logger.Info("order deleted", zap.String("order_id", orderID.String()))
	return nil
}

func (s *AdminService) DeleteReview(ctx context.Context, reviewID uuid.UUID) error {
	if err := s.reviews.DeleteReview(ctx, reviewID); err != nil {
		return err
	}
	s.logger.Info("review deleted", zap.String("review_id", reviewID.String()))
	return nil
}

// ModerateReview approves or hides a review. Approving stamps approved_at;
// hiding clears it.
func (s *AdminService) ModerateReview(ctx context.Context, reviewID uuid.UUID, req models.ModerateReviewRequest) (*models.Review, error) {
	if !models.IsValidReviewStatus(req.Status) {
		return nil, invalid(fmt.Sprintf("invalid status %q, expected pending or approved", req.Status))
	}

	var approvedAt *time.Time
	if req.Status == models.ReviewStatusApproved {
		now := s.now().UTC()
		approvedAt = &now
	}
	return s.reviews.SetReviewStatus(ctx, reviewID, req.Status, approvedAt)
}
