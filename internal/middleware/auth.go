package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
)

const (
	UserIDKey      = "user_id"
	UserEmailKey   = "user_email"
	AccessTokenKey = "access_token"
)

// AuthMiddleware validates the Supabase access token (HS256, signed with the
// project JWT secret). Any failure answers 401 so clients can send the admin
// back to login.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, "missing authorization header", "")
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			abortUnauthorized(c, "invalid authorization header format", "")
			return
		}

		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			abortUnauthorized(c, "empty token", "")
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if cfg.SupabaseJWTSecret == "" {
				return nil, jwt.ErrSignatureInvalid
			}
			// Supabase JWT secret is used directly as the signing key
			return []byte(cfg.SupabaseJWTSecret), nil
		}, jwt.WithValidMethods([]string{"HS256"}))
		if err != nil {
			abortUnauthorized(c, "invalid token", tokenErrorMessage(err))
			return
		}
		if !token.Valid {
			abortUnauthorized(c, "invalid token", "")
			return
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			abortUnauthorized(c, "missing user id in token", "")
			return
		}
		email, _ := claims["email"].(string)

		c.Set(UserIDKey, sub)
		c.Set(UserEmailKey, email)
		c.Set(AccessTokenKey, tokenString)
		c.Next()
	}
}

func tokenErrorMessage(err error) string {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return "token has expired"
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return "token signature is invalid"
	case errors.Is(err, jwt.ErrTokenMalformed):
		return "token is malformed"
	default:
		return err.Error()
	}
}

func abortUnauthorized(c *gin.Context, msg, detail string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{Error: msg, Message: detail})
}
