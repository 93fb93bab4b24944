// @title           Portfolio Reviews API
// @version         1.0.0
// @description     Review generation gateway, review submission, testimonials and the admin dashboard for the portfolio site.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"portfolio-backend/docs"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/generator"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/logging"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/supabase"
)

type store interface {
	services.ReviewStore
	services.OrderStore
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Update Swagger docs with dynamic base URL
	if cfg.BaseURL != "" {
		if baseURL, err := url.Parse(cfg.BaseURL); err == nil {
			docs.SwaggerInfo.Host = baseURL.Host
			if baseURL.Scheme == "https" {
				docs.SwaggerInfo.Schemes = []string{"https", "http"}
			} else {
				docs.SwaggerInfo.Schemes = []string{"http", "https"}
			}
		}
	}

	supabaseClient, err := supabase.NewClient(cfg)
	if err != nil {
		logger.Fatal("failed to initialize Supabase client", zap.Error(err))
	}

	var db store
	if cfg.DatabaseURL != "" {
		dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("failed to initialize database client", zap.Error(err))
		}
		defer dbClient.Close()
		db = dbClient
		logger.Info("using direct database connection")
	} else {
		db = supabase.NewRestClient(supabaseClient.Supabase)
		logger.Info("DATABASE_URL not set, using Supabase REST API")
	}

	gen, err := generator.New(cfg)
	if err != nil {
		logger.Fatal("failed to initialize review generator", zap.Error(err))
	}
	if cfg.LLMAPIKey() == "" {
		logger.Warn("LLM credential is empty, generation requests will be rejected upstream",
			zap.String("env", cfg.LLMAPIKeyEnv),
		)
	}

	reviewService := services.NewReviewService(db, gen, cfg, logger)
	testimonialService := services.NewTestimonialService(db, cfg)
	adminService := services.NewAdminService(db, db, logger)

	router := handlers.NewRouter(cfg, logger, handlers.Handlers{
		Gateway: handlers.NewGatewayHandler(gen, logger),
		Reviews: handlers.NewReviewsHandler(reviewService, testimonialService, logger),
		Admin:   handlers.NewAdminHandler(adminService, logger),
		Auth:    handlers.NewAuthHandler(supabase.NewAuthClient(supabaseClient), logger),
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("server stopped")
}
