package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

// respondError maps service errors onto status codes. Unknown errors are
// logged and reported as 500 with the given summary.
func respondError(c *gin.Context, logger *zap.Logger, summary string, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: verr.Message})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, models.ErrorResponse{Error: "not found"})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "conflict",
			Message: "the record was changed by someone else, reload and try again",
		})
	case errors.Is(err, services.ErrGeneration):
		logger.Error(summary, zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate review"})
	default:
		logger.Error(summary, zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: summary, Message: err.Error()})
	}
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}
