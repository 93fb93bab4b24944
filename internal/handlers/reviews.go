package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type ReviewsHandler struct {
	reviews      *services.ReviewService
	testimonials *services.TestimonialService
	logger       *zap.Logger
}

func NewReviewsHandler(reviews *services.ReviewService, testimonials *services.TestimonialService, logger *zap.Logger) *ReviewsHandler {
	return &ReviewsHandler{
		reviews:      reviews,
		testimonials: testimonials,
		logger:       logger,
	}
}

// DraftReview godoc
// @Summary     Draft a review from a star rating
// @Description Derives the review fields from the rating and returns generated text. Nothing is stored.
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       request body models.DraftReviewRequest true "Rating form"
// @Success     200 {object} models.DraftReviewResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /reviews/generate [post]
func (h *ReviewsHandler) DraftReview(c *gin.Context) {
	var req models.DraftReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	resp, err := h.reviews.Draft(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "failed to generate review", err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// PublishReview godoc
// @Summary     Publish a review
// @Description Stores the generated review. Each call inserts a new row.
// @Tags        reviews
// @Accept      json
// @Produce     json
// @Param       request body models.PublishReviewRequest true "Form and generated text"
// @Success     201 {object} models.Review
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /reviews [post]
func (h *ReviewsHandler) PublishReview(c *gin.Context) {
	var req models.PublishReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	created, err := h.reviews.Publish(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "failed to publish review", err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// ListTestimonials godoc
// @Summary     List testimonials
// @Description Most recent approved reviews, newest first.
// @Tags        reviews
// @Produce     json
// @Param       limit query int false "Number of testimonials (max 10)"
// @Success     200 {object} models.TestimonialsResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /testimonials [get]
func (h *ReviewsHandler) ListTestimonials(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = n
	}

	testimonials, err := h.testimonials.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, h.logger, "failed to load testimonials", err)
		return
	}

	c.JSON(http.StatusOK, models.TestimonialsResponse{Testimonials: testimonials})
}
