package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/generator"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/review"
)

const (
	msgMissingFields    = "Please fill in your name, project type, and rating"
	msgMissingGenerated = "Please generate a review first"
)

// ReviewService runs the two-step submission: draft text from the rating
// form, then publish the text together with the form.
type ReviewService struct {
	store           ReviewStore
	generator       generator.Generator
	requireApproval bool
	logger          *zap.Logger
	now             func() time.Time
}

func NewReviewService(store ReviewStore, gen generator.Generator, cfg *config.Config, logger *zap.Logger) *ReviewService {
	return &ReviewService{
		store:           store,
		generator:       gen,
		requireApproval: cfg.ReviewsRequireApproval,
		logger:          logger,
		now:             time.Now,
	}
}

func formFields(name, projectType string, rating int, comment string) (review.Fields, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(projectType) == "" {
		return review.Fields{}, invalid(msgMissingFields)
	}
	f, err := review.FromRating(rating, projectType, comment)
	if err != nil {
		return review.Fields{}, invalid(msgMissingFields)
	}
	return f, nil
}

// Draft generates review text for the form without persisting anything.
func (s *ReviewService) Draft(ctx context.Context, req models.DraftReviewRequest) (*models.DraftReviewResponse, error) {
	fields, err := formFields(req.ClientName, req.ProjectType, req.Rating, req.OptionalComment)
	if err != nil {
		return nil, err
	}

	text, err := s.generator.Generate(ctx, fields)
	if err != nil {
		s.logger.Error("review generation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrGeneration, err)
	}

	return &models.DraftReviewResponse{
		Review:            text,
		OverallExperience: fields.OverallExperience,
		Delivery:          fields.Delivery,
		Communication:     fields.Communication,
		WouldRecommend:    fields.WouldRecommend,
	}, nil
}

// Publish stores one row per call. Two identical calls produce two rows.
func (s *ReviewService) Publish(ctx context.Context, req models.PublishReviewRequest) (*models.Review, error) {
	generated := strings.TrimSpace(req.GeneratedReview)
	if generated == "" {
		return nil, invalid(msgMissingGenerated)
	}
	fields, err := formFields(req.ClientName, req.ProjectType, req.Rating, req.OptionalComment)
	if err != nil {
		return nil, err
	}

	status := models.ReviewStatusPending
	if !s.requireApproval {
		status = models.ReviewStatusApproved
	}

	row := review.Submission{
		ClientName:      req.ClientName,
		ClientEmail:     req.ClientEmail,
		Rating:          req.Rating,
		Fields:          fields,
		GeneratedReview: generated,
	}.Row(status)
	if status == models.ReviewStatusApproved {
		now := s.now().UTC()
		row.ApprovedAt = &now
	}

	created, err := s.store.InsertReview(ctx, row)
	if err != nil {
		return nil, fmt.Errorf("failed to publish review: %w", err)
	}

	s.logger.Info("review published",
		zap.String("review_id", created.ID.String()),
		zap.String("status", created.Status),
	)
	return created, nil
}
