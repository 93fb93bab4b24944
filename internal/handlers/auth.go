package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"portfolio-backend/internal/middleware"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/supabase"
)

// Authenticator is satisfied by supabase.AuthClient.
type Authenticator interface {
	SignIn(email, password string) (*models.SessionResponse, error)
	Refresh(refreshToken string) (*models.SessionResponse, error)
	Logout(accessToken string) error
}

type AuthHandler struct {
	auth   Authenticator
	logger *zap.Logger
}

func NewAuthHandler(auth Authenticator, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger}
}

// Login godoc
// @Summary     Sign in an administrator
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.LoginRequest true "Credentials"
// @Success     200 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "email and password are required"})
		return
	}

	session, err := h.auth.SignIn(req.Email, req.Password)
	if err != nil {
		h.sessionError(c, "login failed", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Refresh godoc
// @Summary     Exchange a refresh token for a new session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body models.RefreshRequest true "Refresh token"
// @Success     200 {object} models.SessionResponse
// @Failure     400 {object} models.ErrorResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "refreshToken is required"})
		return
	}

	session, err := h.auth.Refresh(req.RefreshToken)
	if err != nil {
		h.sessionError(c, "refresh failed", err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AuthHandler) sessionError(c *gin.Context, summary string, err error) {
	if errors.Is(err, supabase.ErrInvalidCredentials) {
		h.logger.Warn(summary, zap.Error(err))
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "invalid credentials"})
		return
	}
	h.logger.Error(summary, zap.Error(err))
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: summary})
}

// Logout godoc
// @Summary     Revoke the current session
// @Tags        auth
// @Security    Bearer
// @Success     204
// @Failure     401 {object} models.ErrorResponse
// @Failure     500 {object} models.ErrorResponse
// @Router      /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.GetString(middleware.AccessTokenKey)); err != nil {
		h.logger.Error("logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "logout failed", Message: err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Session godoc
// @Summary     Current administrator
// @Description Identity taken from the validated access token.
// @Tags        auth
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.SessionInfoResponse
// @Failure     401 {object} models.ErrorResponse
// @Router      /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	c.JSON(http.StatusOK, models.SessionInfoResponse{
		UserID: c.GetString(middleware.UserIDKey),
		Email:  c.GetString(middleware.UserEmailKey),
	})
}
