package supabase

import (
	"errors"
	"fmt"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"
	"portfolio-backend/internal/models"
)

// ErrInvalidCredentials is returned when GoTrue rejects a password or refresh grant.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthClient wraps the GoTrue client of the Supabase project. Each call works
// on its own token so concurrent admin sessions never share state.
type AuthClient struct {
	auth gotrue.Client
}

func NewAuthClient(client *Client) *AuthClient {
	return &AuthClient{auth: client.Supabase.Auth}
}

func (a *AuthClient) SignIn(email, password string) (*models.SessionResponse, error) {
	token, err := a.auth.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return sessionResponse(token.Session), nil
}

func (a *AuthClient) Refresh(refreshToken string) (*models.SessionResponse, error) {
	token, err := a.auth.RefreshToken(refreshToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return sessionResponse(token.Session), nil
}

// Logout revokes every refresh token of the user owning accessToken. The
// access token itself stays valid until it expires.
func (a *AuthClient) Logout(accessToken string) error {
	if err := a.auth.WithToken(accessToken).Logout(); err != nil {
		return fmt.Errorf("failed to logout: %w", err)
	}
	return nil
}

func sessionResponse(s types.Session) *models.SessionResponse {
	return &models.SessionResponse{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		TokenType:    s.TokenType,
		ExpiresIn:    s.ExpiresIn,
		ExpiresAt:    s.ExpiresAt,
		UserID:       s.User.ID.String(),
		Email:        s.User.Email,
	}
}
