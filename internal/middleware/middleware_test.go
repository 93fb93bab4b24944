package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/middleware"
)

const testSecret = "test-secret-key-for-jwt-signing-must-be-long-enough"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func protectedRouter(cfg *config.Config, seen *gin.H) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.AuthMiddleware(cfg))
	router.GET("/test", func(c *gin.Context) {
		if seen != nil {
			*seen = gin.H{
				"user":  c.GetString(middleware.UserIDKey),
				"email": c.GetString(middleware.UserEmailKey),
				"token": c.GetString(middleware.AccessTokenKey),
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}

func doGet(router http.Handler, authorization string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", "/test", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_NoToken(t *testing.T) {
	router := protectedRouter(&config.Config{SupabaseJWTSecret: testSecret}, nil)

	w := doGet(router, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "missing authorization header")
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	router := protectedRouter(&config.Config{SupabaseJWTSecret: testSecret}, nil)

	assert.Equal(t, http.StatusUnauthorized, doGet(router, "Bearer invalid-token").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(router, "Basic abc").Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	var seen gin.H
	router := protectedRouter(&config.Config{SupabaseJWTSecret: testSecret}, &seen)

	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
		"sub":   "user-123",
		"email": "admin@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	})

	w := doGet(router, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-123", seen["user"])
	assert.Equal(t, "admin@example.com", seen["email"])
	assert.Equal(t, token, seen["token"])
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	router := protectedRouter(&config.Config{SupabaseJWTSecret: testSecret}, nil)

	cases := map[string]string{
		"expired": signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{
			"sub": "user-123",
			"exp": time.Now().Add(-time.Minute).Unix(),
		}),
		"wrong secret": signToken(t, jwt.SigningMethodHS256, []byte("another-secret"), jwt.MapClaims{"sub": "user-123"}),
		"wrong algorithm": signToken(t, jwt.SigningMethodHS512, []byte(testSecret), jwt.MapClaims{"sub": "user-123"}),
		"no subject":      signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"email": "x@example.com"}),
	}
	for name, token := range cases {
		w := doGet(router, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code, name)
	}

	expired := doGet(router, "Bearer "+cases["expired"])
	assert.Contains(t, expired.Body.String(), "token has expired")
}

func TestAuthMiddleware_NoSecretConfigured(t *testing.T) {
	router := protectedRouter(&config.Config{}, nil)
	token := signToken(t, jwt.SigningMethodHS256, []byte(testSecret), jwt.MapClaims{"sub": "user-123"})

	assert.Equal(t, http.StatusUnauthorized, doGet(router, "Bearer "+token).Code)
}

func TestCORS_Preflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.CORS())
	router.POST("/functions/v1/generate-review", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"review": "x"})
	})

	req, _ := http.NewRequest(http.MethodOptions, "/functions/v1/generate-review", nil)
	req.Header.Set("Origin", "https://portfolio.example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "content-type, apikey")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	allowed := strings.ToLower(w.Header().Get("Access-Control-Allow-Headers"))
	for _, h := range []string{"authorization", "x-client-info", "apikey", "content-type"} {
		assert.Contains(t, allowed, h)
	}
}

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	core, logs := observer.New(zap.InfoLevel)

	router := gin.New()
	router.Use(middleware.RequestLogger(zap.New(core)))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/boom", func(c *gin.Context) { c.Status(http.StatusInternalServerError) })

	for _, path := range []string{"/ok", "/boom"} {
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, zap.InfoLevel, entries[0].Level)
		assert.Equal(t, "/ok", entries[0].ContextMap()["path"])
		assert.Equal(t, zap.ErrorLevel, entries[1].Level)
		assert.EqualValues(t, 500, entries[1].ContextMap()["status"])
	}
}
