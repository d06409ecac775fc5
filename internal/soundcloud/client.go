// Package soundcloud proxies the SoundCloud OAuth flow and track listing so
// the frontend never handles the client secret.
package soundcloud

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const embedPlayerURL = "https://w.soundcloud.com/player/"

// AuthError reports that SoundCloud rejected the presented credentials.
type AuthError struct {
	Status int
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("soundcloud rejected the credentials (status %d)", e.Status)
}

// Token is the result of exchanging an authorization code.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	ExpiresIn    int    `json:"expires_in,omitempty"`
	Scope        string `json:"scope,omitempty"`
	TokenType    string `json:"token_type,omitempty"`
}

// Track is the trimmed track shape served to the frontend.
type Track struct {
	ID              int64   `json:"id"`
	Title           string  `json:"title"`
	DurationMinutes float64 `json:"duration_minutes"`
	DurationMS      int64   `json:"duration_ms"`
	PermalinkURL    string  `json:"permalink_url,omitempty"`
	EmbedURL        string  `json:"embed_url,omitempty"`
	ArtworkURL      string  `json:"artwork_url,omitempty"`
	UserName        string  `json:"user_name,omitempty"`
	Genre           string  `json:"genre,omitempty"`
	CreatedAt       string  `json:"created_at,omitempty"`
}

// apiTrack is the upstream track shape. Durations arrive in milliseconds.
type apiTrack struct {
	ID           int64  `json:"id"`
	Title        string `json:"title"`
	Duration     int64  `json:"duration"`
	PermalinkURL string `json:"permalink_url"`
	ArtworkURL   string `json:"artwork_url"`
	Genre        string `json:"genre"`
	CreatedAt    string `json:"created_at"`
	User         struct {
		Username string `json:"username"`
	} `json:"user"`
}

// Client wraps the HTTP client for SoundCloud API calls.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a SoundCloud proxy client.
func NewClient(cfg Config) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, errors.New("SoundCloud client ID is required")
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Timeout) * time.Second,
		},
	}, nil
}

// AuthorizeURL composes the URL the frontend redirects users to.
func (c *Client) AuthorizeURL() string {
	query := url.Values{}
	query.Set("client_id", c.cfg.ClientID)
	query.Set("redirect_uri", c.cfg.RedirectURI)
	query.Set("response_type", "code")
	query.Set("scope", "non-expiring")
	return c.cfg.ConnectURL + "?" + query.Encode()
}

// ClientID returns the configured application client ID.
func (c *Client) ClientID() string {
	return c.cfg.ClientID
}

// RedirectURI returns the configured OAuth redirect target.
func (c *Client) RedirectURI() string {
	return c.cfg.RedirectURI
}

// ExchangeCode trades an authorization code for an access token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	if code == "" {
		return nil, errors.New("authorization code is required")
	}
	if c.cfg.ClientSecret == "" {
		return nil, errors.New("SoundCloud client secret is not configured")
	}

	form := url.Values{}
	form.Set("client_id", c.cfg.ClientID)
	form.Set("client_secret", c.cfg.ClientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("redirect_uri", c.cfg.RedirectURI)
	form.Set("code", code)

	httpReq, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		c.cfg.APIBaseURL+"/oauth2/token",
		strings.NewReader(form.Encode()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &AuthError{Status: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var token Token
	if decodeErr := json.NewDecoder(resp.Body).Decode(&token); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode token response: %w", decodeErr)
	}

	return &token, nil
}

// UserTracks lists the authenticated user's tracks.
func (c *Client) UserTracks(ctx context.Context, accessToken string) ([]Track, error) {
	if accessToken == "" {
		return nil, &AuthError{Status: http.StatusUnauthorized}
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.APIBaseURL+"/me/tracks", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Authorization", "OAuth "+accessToken)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tracks request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, &AuthError{Status: resp.StatusCode}
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tracks endpoint returned status %d: %s", resp.StatusCode, string(body))
	}

	var upstream []apiTrack
	if decodeErr := json.NewDecoder(resp.Body).Decode(&upstream); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode tracks response: %w", decodeErr)
	}

	tracks := make([]Track, 0, len(upstream))
	for _, track := range upstream {
		tracks = append(tracks, Track{
			ID:              track.ID,
			Title:           track.Title,
			DurationMinutes: durationMinutes(track.Duration),
			DurationMS:      track.Duration,
			PermalinkURL:    track.PermalinkURL,
			EmbedURL:        embedURL(track.PermalinkURL),
			ArtworkURL:      track.ArtworkURL,
			UserName:        track.User.Username,
			Genre:           track.Genre,
			CreatedAt:       track.CreatedAt,
		})
	}

	return tracks, nil
}

// durationMinutes converts milliseconds to minutes with two decimals.
func durationMinutes(ms int64) float64 {
	return math.Round(float64(ms)/60000*100) / 100
}

// embedURL composes the embeddable player URL for a track.
func embedURL(permalink string) string {
	if permalink == "" {
		return ""
	}

	query := url.Values{}
	query.Set("url", permalink)
	query.Set("color", "#ff5500")
	query.Set("auto_play", "false")
	query.Set("hide_related", "false")
	query.Set("show_comments", "true")
	query.Set("show_user", "true")
	query.Set("show_reposts", "false")
	query.Set("show_teaser", "true")
	return embedPlayerURL + "?" + query.Encode()
}
