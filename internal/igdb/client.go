package igdb

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

const (
	defaultAuthURL = "https://id.twitch.tv/oauth2/token"
	defaultAPIURL  = "https://api.igdb.com/v4"

	requestTimeout = 10 * time.Second

	// tokens are treated as expired this long before they actually are,
	// so an in-flight request never carries a token about to lapse
	tokenEarlyExpiry = 5 * time.Minute
)

// Game is a row from the IGDB games endpoint
type Game struct {
	ID               int64  `json:"id"`
	Name             string `json:"name"`
	Slug             string `json:"slug"`
	Summary          string `json:"summary"`
	FirstReleaseDate int64  `json:"first_release_date"`
	Cover            struct {
		ImageID string `json:"image_id"`
	} `json:"cover"`
	Platforms []struct {
		Name string `json:"name"`
	} `json:"platforms"`
	Genres []struct {
		Name string `json:"name"`
	} `json:"genres"`
}

// CoverURL builds the t_cover_big image URL, empty when no cover exists
func (g *Game) CoverURL() string {
	if g.Cover.ImageID == "" {
		return ""
	}
	return fmt.Sprintf("https://images.igdb.com/igdb/image/upload/t_cover_big/%s.jpg", g.Cover.ImageID)
}

// PlatformNames joins platform names into one comma-separated string
func (g *Game) PlatformNames() string {
	names := make([]string, 0, len(g.Platforms))
	for _, p := range g.Platforms {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// GenreNames joins genre names into one comma-separated string
func (g *Game) GenreNames() string {
	names := make([]string, 0, len(g.Genres))
	for _, gr := range g.Genres {
		names = append(names, gr.Name)
	}
	return strings.Join(names, ", ")
}

// ReleaseTime converts the unix release date, nil when unset
func (g *Game) ReleaseTime() *time.Time {
	if g.FirstReleaseDate == 0 {
		return nil
	}
	t := time.Unix(g.FirstReleaseDate, 0).UTC()
	return &t
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// Client talks to the IGDB API using Twitch client-credentials auth.
// The app token is cached in memory and refreshed through singleflight
// so concurrent requests trigger at most one auth round trip.
type Client struct {
	clientID     string
	clientSecret string
	authURL      string
	apiURL       string
	httpClient   *http.Client
	now          func() time.Time

	mu          sync.Mutex
	token       string
	tokenExpiry time.Time

	refresh singleflight.Group
}

// NewClient creates a new IGDB client
func NewClient(clientID, clientSecret string) *Client {
	return &Client{
		clientID:     clientID,
		clientSecret: clientSecret,
		authURL:      defaultAuthURL,
		apiURL:       defaultAPIURL,
		httpClient:   &http.Client{Timeout: requestTimeout},
		now:          time.Now,
	}
}

// WithBaseURLs overrides the auth and API endpoints, used by tests
func (c *Client) WithBaseURLs(authURL, apiURL string) *Client {
	c.authURL = authURL
	c.apiURL = apiURL
	return c
}

func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	if c.token != "" && c.now().Add(tokenEarlyExpiry).Before(c.tokenExpiry) {
		token := c.token
		c.mu.Unlock()
		return token, nil
	}
	c.mu.Unlock()

	v, err, _ := c.refresh.Do("token", func() (interface{}, error) {
		return c.fetchToken(ctx)
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

func (c *Client) fetchToken(ctx context.Context) (string, error) {
	form := url.Values{
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
		"grant_type":    {"client_credentials"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("igdb auth: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("igdb auth: status %d: %s", resp.StatusCode, string(body))
	}

	var tok tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tok); err != nil {
		return "", fmt.Errorf("igdb auth: decode: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("igdb auth: empty access token")
	}

	c.mu.Lock()
	c.token = tok.AccessToken
	c.tokenExpiry = c.now().Add(time.Duration(tok.ExpiresIn) * time.Second)
	c.mu.Unlock()

	return tok.AccessToken, nil
}

// query posts an Apicalypse query body to an IGDB endpoint
func (c *Client) query(ctx context.Context, endpoint, body string, dest interface{}) error {
	token, err := c.accessToken(ctx)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+"/"+endpoint, strings.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Client-ID", c.clientID)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("igdb %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		// server-side revocation; drop the cached token so the next
		// call re-authenticates
		c.mu.Lock()
		c.token = ""
		c.mu.Unlock()
		return fmt.Errorf("igdb %s: unauthorized", endpoint)
	}
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("igdb %s: status %d: %s", endpoint, resp.StatusCode, string(raw))
	}

	return json.NewDecoder(resp.Body).Decode(dest)
}

const gameFields = "fields id,name,slug,summary,first_release_date,cover.image_id,platforms.name,genres.name;"

// GetByID fetches one game by its IGDB id, nil when absent
func (c *Client) GetByID(ctx context.Context, igdbID int64) (*Game, error) {
	body := fmt.Sprintf("%s where id = %d; limit 1;", gameFields, igdbID)
	var games []Game
	if err := c.query(ctx, "games", body, &games); err != nil {
		return nil, err
	}
	if len(games) == 0 {
		return nil, nil
	}
	return &games[0], nil
}

// Search runs a fuzzy name search
func (c *Client) Search(ctx context.Context, term string, limit int) ([]Game, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	term = strings.ReplaceAll(term, `"`, "")
	body := fmt.Sprintf(`search "%s"; %s limit %d;`, term, gameFields, limit)
	var games []Game
	if err := c.query(ctx, "games", body, &games); err != nil {
		return nil, err
	}
	return games, nil
}
