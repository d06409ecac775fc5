package soundcloud_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidbz/aria/internal/soundcloud"
)

func testConfig(baseURL string) soundcloud.Config {
	return soundcloud.Config{
		ClientID:     "test-client",
		ClientSecret: "test-secret",
		RedirectURI:  "https://app.example.com/callback",
		APIBaseURL:   baseURL,
		ConnectURL:   "https://soundcloud.com/connect",
		Timeout:      5,
	}
}

func TestNewClient(t *testing.T) {
	t.Run("should require a client ID", func(t *testing.T) {
		client, err := soundcloud.NewClient(soundcloud.Config{})
		require.Error(t, err)
		require.Nil(t, client)
	})

	t.Run("should build a client from config", func(t *testing.T) {
		client, err := soundcloud.NewClient(testConfig("https://api.soundcloud.com"))
		require.NoError(t, err)
		require.NotNil(t, client)
	})
}

func TestClient_AuthorizeURL(t *testing.T) {
	client, err := soundcloud.NewClient(testConfig("https://api.soundcloud.com"))
	require.NoError(t, err)

	parsed, err := url.Parse(client.AuthorizeURL())
	require.NoError(t, err)

	require.Equal(t, "soundcloud.com", parsed.Host)
	require.Equal(t, "/connect", parsed.Path)
	require.Equal(t, "test-client", parsed.Query().Get("client_id"))
	require.Equal(t, "https://app.example.com/callback", parsed.Query().Get("redirect_uri"))
	require.Equal(t, "code", parsed.Query().Get("response_type"))
	require.Equal(t, "non-expiring", parsed.Query().Get("scope"))
}

func TestClient_ExchangeCode(t *testing.T) {
	t.Run("should exchange a code for a token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/oauth2/token", r.URL.Path)
			require.NoError(t, r.ParseForm())
			require.Equal(t, "test-client", r.PostForm.Get("client_id"))
			require.Equal(t, "test-secret", r.PostForm.Get("client_secret"))
			require.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
			require.Equal(t, "abc123", r.PostForm.Get("code"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"token-1","refresh_token":"refresh-1","expires_in":3600,"scope":"non-expiring","token_type":"OAuth"}`))
		}))
		defer server.Close()

		client, err := soundcloud.NewClient(testConfig(server.URL))
		require.NoError(t, err)

		token, err := client.ExchangeCode(context.Background(), "abc123")
		require.NoError(t, err)
		require.Equal(t, "token-1", token.AccessToken)
		require.Equal(t, "refresh-1", token.RefreshToken)
		require.Equal(t, 3600, token.ExpiresIn)
	})

	t.Run("should report a rejected code as an auth error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client, err := soundcloud.NewClient(testConfig(server.URL))
		require.NoError(t, err)

		token, err := client.ExchangeCode(context.Background(), "bad-code")
		require.Nil(t, token)

		var authErr *soundcloud.AuthError
		require.ErrorAs(t, err, &authErr)
		require.Equal(t, http.StatusUnauthorized, authErr.Status)
	})

	t.Run("should require an authorization code", func(t *testing.T) {
		client, err := soundcloud.NewClient(testConfig("https://api.soundcloud.com"))
		require.NoError(t, err)

		_, err = client.ExchangeCode(context.Background(), "")
		require.Error(t, err)
		require.Contains(t, err.Error(), "authorization code")
	})
}

func TestClient_UserTracks(t *testing.T) {
	t.Run("should map upstream tracks to the frontend shape", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/me/tracks", r.URL.Path)
			require.Equal(t, "OAuth token-1", r.Header.Get("Authorization"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{
					"id": 42,
					"title": "Night Drive",
					"duration": 183000,
					"permalink_url": "https://soundcloud.com/dj/night-drive",
					"artwork_url": "https://i1.sndcdn.com/artworks-42.jpg",
					"genre": "synthwave",
					"created_at": "2024/01/15 10:00:00 +0000",
					"user": {"username": "dj"}
				}
			]`))
		}))
		defer server.Close()

		client, err := soundcloud.NewClient(testConfig(server.URL))
		require.NoError(t, err)

		tracks, err := client.UserTracks(context.Background(), "token-1")
		require.NoError(t, err)
		require.Len(t, tracks, 1)

		track := tracks[0]
		require.Equal(t, int64(42), track.ID)
		require.Equal(t, "Night Drive", track.Title)
		require.Equal(t, int64(183000), track.DurationMS)
		require.InDelta(t, 3.05, track.DurationMinutes, 1e-9)
		require.Equal(t, "dj", track.UserName)
		require.Equal(t, "synthwave", track.Genre)

		embed, err := url.Parse(track.EmbedURL)
		require.NoError(t, err)
		require.Equal(t, "w.soundcloud.com", embed.Host)
		require.Equal(t, "https://soundcloud.com/dj/night-drive", embed.Query().Get("url"))
		require.Equal(t, "#ff5500", embed.Query().Get("color"))
		require.Equal(t, "false", embed.Query().Get("auto_play"))
	})

	t.Run("should report an expired token as an auth error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		client, err := soundcloud.NewClient(testConfig(server.URL))
		require.NoError(t, err)

		tracks, err := client.UserTracks(context.Background(), "expired")
		require.Nil(t, tracks)

		var authErr *soundcloud.AuthError
		require.ErrorAs(t, err, &authErr)
	})

	t.Run("should reject a missing token without calling upstream", func(t *testing.T) {
		client, err := soundcloud.NewClient(testConfig("https://api.soundcloud.com"))
		require.NoError(t, err)

		_, err = client.UserTracks(context.Background(), "")

		var authErr *soundcloud.AuthError
		require.ErrorAs(t, err, &authErr)
	})
}
