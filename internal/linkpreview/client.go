package linkpreview

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	fetchTimeout = 5 * time.Second
	maxBodyBytes = 1 << 20 // read at most 1MB of HTML
	userAgent    = "ThinkRibbonBot/1.0 (+https://thinkribbon.com)"
)

// Metadata is the Open Graph summary scraped from a page
type Metadata struct {
	URL         string
	Title       string
	Description string
	ImageURL    string
	SiteName    string
}

// Client fetches pages and extracts Open Graph metadata with regular
// expressions. Pages are treated as untrusted text; no HTML parse tree
// is built.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a new link preview client
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: fetchTimeout},
	}
}

// Meta tags appear in either attribute order, so each property gets a
// pattern for property-then-content and one for content-then-property.
var (
	ogPatterns = map[string][]*regexp.Regexp{
		"title": {
			regexp.MustCompile(`(?is)<meta[^>]+property=["']og:title["'][^>]+content=["']([^"']*)["']`),
			regexp.MustCompile(`(?is)<meta[^>]+content=["']([^"']*)["'][^>]+property=["']og:title["']`),
		},
		"description": {
			regexp.MustCompile(`(?is)<meta[^>]+property=["']og:description["'][^>]+content=["']([^"']*)["']`),
			regexp.MustCompile(`(?is)<meta[^>]+content=["']([^"']*)["'][^>]+property=["']og:description["']`),
		},
		"image": {
			regexp.MustCompile(`(?is)<meta[^>]+property=["']og:image["'][^>]+content=["']([^"']*)["']`),
			regexp.MustCompile(`(?is)<meta[^>]+content=["']([^"']*)["'][^>]+property=["']og:image["']`),
		},
		"site_name": {
			regexp.MustCompile(`(?is)<meta[^>]+property=["']og:site_name["'][^>]+content=["']([^"']*)["']`),
			regexp.MustCompile(`(?is)<meta[^>]+content=["']([^"']*)["'][^>]+property=["']og:site_name["']`),
		},
	}

	twitterPatterns = map[string][]*regexp.Regexp{
		"title": {
			regexp.MustCompile(`(?is)<meta[^>]+name=["']twitter:title["'][^>]+content=["']([^"']*)["']`),
			regexp.MustCompile(`(?is)<meta[^>]+content=["']([^"']*)["'][^>]+name=["']twitter:title["']`),
		},
		"description": {
			regexp.MustCompile(`(?is)<meta[^>]+name=["']twitter:description["'][^>]+content=["']([^"']*)["']`),
			regexp.MustCompile(`(?is)<meta[^>]+content=["']([^"']*)["'][^>]+name=["']twitter:description["']`),
		},
		"image": {
			regexp.MustCompile(`(?is)<meta[^>]+name=["']twitter:image["'][^>]+content=["']([^"']*)["']`),
			regexp.MustCompile(`(?is)<meta[^>]+content=["']([^"']*)["'][^>]+name=["']twitter:image["']`),
		},
	}

	titleTagPattern       = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)
	metaDescriptionFirst  = regexp.MustCompile(`(?is)<meta[^>]+name=["']description["'][^>]+content=["']([^"']*)["']`)
	metaDescriptionSecond = regexp.MustCompile(`(?is)<meta[^>]+content=["']([^"']*)["'][^>]+name=["']description["']`)
)

// Fetch downloads the page at rawURL and scrapes its metadata.
// Priority per field: Open Graph, then twitter card, then plain HTML
// fallbacks.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Metadata, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return nil, fmt.Errorf("unsupported url: %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "" && !strings.Contains(ct, "html") {
		return nil, fmt.Errorf("fetch %s: not html (%s)", rawURL, ct)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, err
	}
	html := string(body)

	meta := &Metadata{URL: rawURL}
	meta.Title = firstMatch(html, ogPatterns["title"], twitterPatterns["title"])
	meta.Description = firstMatch(html, ogPatterns["description"], twitterPatterns["description"])
	meta.ImageURL = firstMatch(html, ogPatterns["image"], twitterPatterns["image"])
	meta.SiteName = firstMatch(html, ogPatterns["site_name"], nil)

	if meta.Title == "" {
		if m := titleTagPattern.FindStringSubmatch(html); m != nil {
			meta.Title = strings.TrimSpace(m[1])
		}
	}
	if meta.Description == "" {
		meta.Description = firstMatch(html, []*regexp.Regexp{metaDescriptionFirst, metaDescriptionSecond}, nil)
	}
	if meta.SiteName == "" {
		meta.SiteName = parsed.Host
	}

	meta.Title = decodeEntities(meta.Title)
	meta.Description = decodeEntities(meta.Description)
	meta.SiteName = decodeEntities(meta.SiteName)
	meta.ImageURL = resolveImageURL(parsed, meta.ImageURL)

	if meta.Title == "" && meta.Description == "" && meta.ImageURL == "" {
		return nil, fmt.Errorf("fetch %s: no preview metadata", rawURL)
	}
	return meta, nil
}

func firstMatch(html string, primary, secondary []*regexp.Regexp) string {
	for _, re := range primary {
		if m := re.FindStringSubmatch(html); m != nil && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1])
		}
	}
	for _, re := range secondary {
		if m := re.FindStringSubmatch(html); m != nil && strings.TrimSpace(m[1]) != "" {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// resolveImageURL makes protocol-relative and path-relative image URLs
// absolute against the page URL
func resolveImageURL(page *url.URL, image string) string {
	if image == "" {
		return ""
	}
	ref, err := url.Parse(image)
	if err != nil {
		return ""
	}
	return page.ResolveReference(ref).String()
}

var entityReplacer = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&quot;", `"`,
	"&#39;", "'",
	"&#x27;", "'",
	"&nbsp;", " ",
)

func decodeEntities(s string) string {
	return entityReplacer.Replace(s)
}
