package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
)

type AdminHandler struct {
	admin  *services.AdminService
	logger *zap.Logger
}

func NewAdminHandler(admin *services.AdminService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{admin: admin, logger: logger}
}

// Dashboard godoc
// @Summary     Admin dashboard
// @Description Orders, reviews and counters. Each list loads independently and may carry its own error.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.DashboardResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.admin.Dashboard(c.Request.Context()))
}

// ListOrders godoc
// @Summary     List orders
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.OrdersResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.admin.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "failed to load orders", err)
		return
	}
	c.JSON(http.StatusOK, models.OrdersResponse{Orders: orders})
}

// ListReviews godoc
// @Summary     List reviews
// @Description Every review regardless of moderation status, newest first.
// @Tags        admin
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.ReviewsResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /admin/reviews [get]
func (h *AdminHandler) ListReviews(c *gin.Context) {
	reviews, err := h.admin.ListReviews(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, "failed to load reviews", err)
		return
	}
	c.JSON(http.StatusOK, models.ReviewsResponse{Reviews: reviews})
}

// UpdateOrderStatus godoc
// @Summary     Change an order's status
// @Description Any status may follow any other. With a version the write is rejected when the order changed meanwhile.
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string                          true "Order ID"
// @Param       request body models.UpdateOrderStatusRequest true "New status"
// @Success     200 {object} models.Order
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /admin/orders/{id}/status [patch]
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	order, err := h.admin.UpdateOrderStatus(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, "failed to update status", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderNotes godoc
// @Summary     Save admin notes on an order
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string                         true "Order ID"
// @Param       request body models.UpdateOrderNotesRequest true "Notes"
// @Success     200 {object} models.Order
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Failure     409 {object} models.ErrorResponse
// @Router      /admin/orders/{id}/notes [patch]
func (h *AdminHandler) UpdateOrderNotes(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.UpdateOrderNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	order, err := h.admin.UpdateOrderNotes(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, "failed to save notes", err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// DeleteOrder godoc
// @Summary     Delete an order
// @Tags        admin
// @Security    Bearer
// @Param       id path string true "Order ID"
// @Success     204
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/orders/{id} [delete]
func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteOrder(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "failed to delete order", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteReview godoc
// @Summary     Delete a review
// @Tags        admin
// @Security    Bearer
// @Param       id path string true "Review ID"
// @Success     204
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/reviews/{id} [delete]
func (h *AdminHandler) DeleteReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.admin.DeleteReview(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, "failed to delete review", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ModerateReview godoc
// @Summary     Approve or hide a review
// @Tags        admin
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id      path string                       true "Review ID"
// @Param       request body models.ModerateReviewRequest true "pending or approved"
// @Success     200 {object} models.Review
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /admin/reviews/{id}/moderation [patch]
func (h *AdminHandler) ModerateReview(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req models.ModerateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid request body", Message: err.Error()})
		return
	}

	updated, err := h.admin.ModerateReview(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, h.logger, "failed to moderate review", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
