package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/middleware"
)

// Handlers groups everything NewRouter mounts.
type Handlers struct {
	Gateway *GatewayHandler
	Reviews *ReviewsHandler
	Admin   *AdminHandler
	Auth    *AuthHandler
}

func NewRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	// Health check (no auth)
	router.GET("/health", HealthHandler)

	// Gateway at the path the browser client already calls
	router.POST("/functions/v1/generate-review", h.Gateway.GenerateReview)
	router.OPTIONS("/functions/v1/generate-review", Preflight)

	api := router.Group("/api/v1")
	api.GET("/health", HealthHandler)
	api.POST("/generate-review", h.Gateway.GenerateReview)
	api.OPTIONS("/generate-review", Preflight)

	api.POST("/reviews/generate", h.Reviews.DraftReview)
	api.POST("/reviews", h.Reviews.PublishReview)
	api.GET("/testimonials", h.Reviews.ListTestimonials)

	api.POST("/auth/login", h.Auth.Login)
	api.POST("/auth/refresh", h.Auth.Refresh)

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(cfg))
	authed.POST("/auth/logout", h.Auth.Logout)
	authed.GET("/auth/session", h.Auth.Session)

	admin := authed.Group("/admin")
	admin.GET("/dashboard", h.Admin.Dashboard)
	admin.GET("/orders", h.Admin.ListOrders)
	admin.PATCH("/orders/:id/status", h.Admin.UpdateOrderStatus)
	admin.PATCH("/orders/:id/notes", h.Admin.UpdateOrderNotes)
	admin.DELETE("/orders/:id", h.Admin.DeleteOrder)
	admin.GET("/reviews", h.Admin.ListReviews)
	admin.PATCH("/reviews/:id/moderation", h.Admin.ModerateReview)
	admin.DELETE("/reviews/:id", h.Admin.DeleteReview)

	return router
}
