package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"portfolio-backend/internal/generator"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/review"
)

const gatewayAllowHeaders = "authorization, x-client-info, apikey, content-type"

// GatewayHandler serves the generate-review function. Its error bodies are
// part of the public contract and must not change.
type GatewayHandler struct {
	generator generator.Generator
	logger    *zap.Logger
}

func NewGatewayHandler(gen generator.Generator, logger *zap.Logger) *GatewayHandler {
	return &GatewayHandler{generator: gen, logger: logger}
}

// GenerateReview godoc
// @Summary     Generate a review
// @Description Turns the structured review fields into a short testimonial using the configured language model. Nothing is stored.
// @Tags        gateway
// @Accept      json
// @Produce     json
// @Param       request body review.Fields true "Review fields"
// @Success     200 {object} models.GenerateReviewResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /generate-review [post]
func (h *GatewayHandler) GenerateReview(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", gatewayAllowHeaders)

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil || body == nil {
		if err == nil {
			err = errors.New("request body is not a JSON object")
		}
		h.logger.Error("error in generate-review", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		return
	}

	fields := review.Fields{
		OverallExperience: textValue(body["overallExperience"]),
		ProjectType:       textValue(body["projectType"]),
		Delivery:          textValue(body["delivery"]),
		Communication:     textValue(body["communication"]),
		OptionalComment:   textValue(body["optionalComment"]),
		WouldRecommend:    textValue(body["wouldRecommend"]),
	}
	if !fields.Complete() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "Missing required fields"})
		return
	}

	text, err := h.generator.Generate(c.Request.Context(), fields)
	if err != nil {
		var upstream *generator.UpstreamError
		switch {
		case errors.As(err, &upstream):
			h.logger.Error("AI gateway error",
				zap.Int("status", upstream.StatusCode),
				zap.String("body", upstream.Body),
			)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate review"})
		case errors.Is(err, generator.ErrEmptyReply):
			h.logger.Error("AI gateway returned no text")
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate review"})
		default:
			h.logger.Error("error in generate-review", zap.Error(err))
			c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, models.GenerateReviewResponse{Review: text})
}

// textValue renders a decoded JSON value as prompt text. Absent, null, false,
// zero and empty values all count as missing and render as "".
func textValue(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = textValue(item)
		}
		return strings.Join(parts, ",")
	default:
		return "[object Object]"
	}
}

// Preflight answers OPTIONS on the gateway for clients that skip the Origin
// header and so never reach the CORS middleware.
func Preflight(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", gatewayAllowHeaders)
	c.Status(http.StatusNoContent)
}
