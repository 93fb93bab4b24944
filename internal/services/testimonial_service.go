package services

import (
	"context"
	"fmt"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/review"
)

const MaxTestimonials = 10

type TestimonialService struct {
	store    ReviewStore
	pageSize int
}

func NewTestimonialService(store ReviewStore, cfg *config.Config) *TestimonialService {
	return &TestimonialService{store: store, pageSize: cfg.TestimonialsPageSize}
}

// List returns the most recent approved reviews. A non-positive limit uses
// the configured page size; anything above MaxTestimonials is capped.
func (s *TestimonialService) List(ctx context.Context, limit int) ([]models.Testimonial, error) {
	if limit <= 0 {
		limit = s.pageSize
	}
	if limit > MaxTestimonials {
		limit = MaxTestimonials
	}

	reviews, err := s.store.ListApprovedReviews(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load testimonials: %w", err)
	}

	testimonials := make([]models.Testimonial, 0, len(reviews))
	for _, r := range reviews {
		testimonials = append(testimonials, models.Testimonial{
			ID:          r.ID.String(),
			ClientName:  r.ClientName,
			ProjectType: r.ProjectType,
			Review:      r.GeneratedReview,
			Stars:       review.Stars(r),
			CreatedAt:   r.CreatedAt,
		})
	}
	return testimonials, nil
}
