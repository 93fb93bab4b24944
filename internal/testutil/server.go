package testutil

import (
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/handlers"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/services"
	"portfolio-backend/internal/supabase"
)

const JWTSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

var errInvalidCredentials = fmt.Errorf("%w: wrong email or password", supabase.ErrInvalidCredentials)

// FakeAuth accepts one email/password pair and hands out tokens signed with
// JWTSecret.
type FakeAuth struct {
	Email     string
	Password  string
	LoggedOut []string
}

func (f *FakeAuth) SignIn(email, password string) (*models.SessionResponse, error) {
	if email != f.Email || password != f.Password {
		return nil, errInvalidCredentials
	}
	return session(email), nil
}

func (f *FakeAuth) Refresh(refreshToken string) (*models.SessionResponse, error) {
	if refreshToken != "refresh-"+f.Email {
		return nil, errInvalidCredentials
	}
	return session(f.Email), nil
}

func (f *FakeAuth) Logout(accessToken string) error {
	f.LoggedOut = append(f.LoggedOut, accessToken)
	return nil
}

func session(email string) *models.SessionResponse {
	return &models.SessionResponse{
		AccessToken:  Token("admin-1", email, time.Hour),
		RefreshToken: "refresh-" + email,
		TokenType:    "bearer",
		ExpiresIn:    3600,
		UserID:       "admin-1",
		Email:        email,
	}
}

// Token signs an access token the auth middleware accepts. A negative ttl
// yields an expired token.
func Token(sub, email string, ttl time.Duration) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   sub,
		"email": email,
		"exp":   time.Now().Add(ttl).Unix(),
	}).SignedString([]byte(JWTSecret))
	if err != nil {
		panic(err)
	}
	return token
}

// Env is a complete API wired over in-memory dependencies.
type Env struct {
	Config    *config.Config
	Store     *MemoryStore
	Generator *StubGenerator
	Auth      *FakeAuth
	Router    *gin.Engine
}

func NewEnv(requireApproval bool) *Env {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		SupabaseJWTSecret:      JWTSecret,
		ReviewsRequireApproval: requireApproval,
		TestimonialsPageSize:   6,
	}
	store := NewMemoryStore()
	gen := &StubGenerator{Text: "A thoughtful, professional partner. Highly recommended."}
	auth := &FakeAuth{Email: "admin@example.com", Password: "correct-horse"}
	logger := zap.NewNop()

	reviewService := services.NewReviewService(store, gen, cfg, logger)
	testimonialService := services.NewTestimonialService(store, cfg)
	adminService := services.NewAdminService(store, store, logger)

	router := handlers.NewRouter(cfg, logger, handlers.Handlers{
		Gateway: handlers.NewGatewayHandler(gen, logger),
		Reviews: handlers.NewReviewsHandler(reviewService, testimonialService, logger),
		Admin:   handlers.NewAdminHandler(adminService, logger),
		Auth:    handlers.NewAuthHandler(auth, logger),
	})

	return &Env{Config: cfg, Store: store, Generator: gen, Auth: auth, Router: router}
}

// Serve starts a real listener for client-side tests.
func (e *Env) Serve(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(e.Router)
	t.Cleanup(server.Close)
	return server
}
