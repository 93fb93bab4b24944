package supabase_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/supabase"
)

const sessionJSON = `{"access_token":"access-1","refresh_token":"refresh-1","token_type":"bearer",
	"expires_in":3600,"expires_at":1767261600,
	"user":{"id":"0b6f1f6c-8b35-4d7e-9a53-0f5b9f7ad001","email":"admin@example.com"}}`

func newAuthClient(t *testing.T, handler http.HandlerFunc) *supabase.AuthClient {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := supabase.NewClient(&config.Config{
		SupabaseURL:            server.URL,
		SupabasePublishableKey: "anon-key",
	})
	require.NoError(t, err)
	return supabase.NewAuthClient(client)
}

func TestAuthClient_SignIn(t *testing.T) {
	var body map[string]interface{}
	auth := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/v1/token", r.URL.Path)
		assert.Equal(t, "password", r.URL.Query().Get("grant_type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sessionJSON))
	})

	session, err := auth.SignIn("admin@example.com", "hunter2")
	require.NoError(t, err)

	assert.Equal(t, "admin@example.com", body["email"])
	assert.Equal(t, "hunter2", body["password"])
	assert.Equal(t, "access-1", session.AccessToken)
	assert.Equal(t, "refresh-1", session.RefreshToken)
	assert.Equal(t, 3600, session.ExpiresIn)
	assert.Equal(t, "0b6f1f6c-8b35-4d7e-9a53-0f5b9f7ad001", session.UserID)
	assert.Equal(t, "admin@example.com", session.Email)
}

func TestAuthClient_SignIn_Rejected(t *testing.T) {
	auth := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant","error_description":"Invalid login credentials"}`))
	})

	_, err := auth.SignIn("admin@example.com", "wrong")
	assert.ErrorIs(t, err, supabase.ErrInvalidCredentials)
}

func TestAuthClient_Refresh(t *testing.T) {
	auth := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "refresh_token", r.URL.Query().Get("grant_type"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(sessionJSON))
	})

	session, err := auth.Refresh("refresh-0")
	require.NoError(t, err)
	assert.Equal(t, "access-1", session.AccessToken)
}

func TestAuthClient_Logout(t *testing.T) {
	var path, authorization string
	auth := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		path = r.Method + " " + r.URL.Path
		authorization = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, auth.Logout("access-1"))
	assert.Equal(t, "POST /auth/v1/logout", path)
	assert.Equal(t, "Bearer access-1", authorization)
}

func TestAuthClient_Logout_Failure(t *testing.T) {
	auth := newAuthClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"msg":"invalid JWT"}`))
	})

	err := auth.Logout("expired")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
