package imgur

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizationURL(t *testing.T) {
	logger := zerolog.Nop()

	client, err := NewClient("my-client-id", "my-secret", logger)
	require.NoError(t, err)

	raw := client.AuthorizationURL()
	parsed, err := url.Parse(raw)
	require.NoError(t, err)

	assert.Equal(t, "api.imgur.com", parsed.Host)
	assert.Equal(t, "/oauth2/authorize", parsed.Path)
	assert.Equal(t, "my-client-id", parsed.Query().Get("client_id"))
	assert.Equal(t, "pin", parsed.Query().Get("response_type"))
}

func TestAuthorize(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	t.Run("successful pin exchange installs the token", func(t *testing.T) {
		tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "pin", r.PostForm.Get("grant_type"))
			assert.Equal(t, "123456", r.PostForm.Get("pin"))
			assert.Equal(t, "my-client-id", r.PostForm.Get("client_id"))
			assert.Equal(t, "my-secret", r.PostForm.Get("client_secret"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{
				"access_token":  "fresh-token",
				"token_type":    "bearer",
				"expires_in":    3600,
				"refresh_token": "refresh-me",
			})
		}))
		defer tokenServer.Close()

		client, err := NewClient("my-client-id", "my-secret", logger,
			WithOAuthEndpoint(tokenServer.URL+"/authorize", tokenServer.URL))
		require.NoError(t, err)

		require.NoError(t, client.Authorize(ctx, "123456"))
		assert.Equal(t, "fresh-token", client.AccessToken())

		t.Run("re-authorizing overwrites the token", func(t *testing.T) {
			require.NoError(t, client.Authorize(ctx, "123456"))
			assert.Equal(t, "fresh-token", client.AccessToken())
		})
	})

	t.Run("failed exchange leaves the client anonymous", func(t *testing.T) {
		tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"error": "invalid_grant"})
		}))
		defer tokenServer.Close()

		client, err := NewClient("my-client-id", "my-secret", logger,
			WithOAuthEndpoint(tokenServer.URL+"/authorize", tokenServer.URL))
		require.NoError(t, err)

		require.Error(t, client.Authorize(ctx, "bad-pin"))
		assert.Empty(t, client.AccessToken())
	})

	t.Run("empty pin", func(t *testing.T) {
		client, err := NewClient("my-client-id", "my-secret", logger)
		require.NoError(t, err)
		require.ErrorIs(t, client.Authorize(ctx, ""), ErrEmptyPin)
	})
}

func TestAuthorizeSwitchesRequestAuth(t *testing.T) {
	logger := zerolog.Nop()
	ctx := context.Background()

	var gotAuth string
	apiServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{
			"data":    map[string]any{"id": "abc"},
			"success": true,
			"status":  200,
		})
	}))
	defer apiServer.Close()

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "post-auth-token",
			"token_type":   "bearer",
		})
	}))
	defer tokenServer.Close()

	client, err := NewClient("my-client-id", "my-secret", logger,
		WithBaseURL(apiServer.URL),
		WithOAuthEndpoint(tokenServer.URL+"/authorize", tokenServer.URL))
	require.NoError(t, err)

	_, err = client.GetImage(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Client-ID my-client-id", gotAuth)

	require.NoError(t, client.Authorize(ctx, "123456"))

	_, err = client.GetImage(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, "Bearer post-auth-token", gotAuth)
}
