package linkpreview

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetch_OpenGraph(t *testing.T) {
	srv := serveHTML(t, `<html><head>
		<meta property="og:title" content="Silksong finally has a date" />
		<meta property="og:description" content="Team Cherry speaks" />
		<meta property="og:image" content="https://cdn.example.com/silksong.jpg" />
		<meta property="og:site_name" content="Game News" />
	</head><body></body></html>`)

	meta, err := NewClient().Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Silksong finally has a date", meta.Title)
	assert.Equal(t, "Team Cherry speaks", meta.Description)
	assert.Equal(t, "https://cdn.example.com/silksong.jpg", meta.ImageURL)
	assert.Equal(t, "Game News", meta.SiteName)
}

func TestFetch_ReversedAttributeOrder(t *testing.T) {
	srv := serveHTML(t, `<html><head>
		<meta content="Reversed title" property="og:title" />
	</head></html>`)

	meta, err := NewClient().Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Reversed title", meta.Title)
}

func TestFetch_TwitterFallback(t *testing.T) {
	srv := serveHTML(t, `<html><head>
		<meta name="twitter:title" content="Card title" />
		<meta name="twitter:image" content="https://cdn.example.com/card.png" />
	</head></html>`)

	meta, err := NewClient().Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Card title", meta.Title)
	assert.Equal(t, "https://cdn.example.com/card.png", meta.ImageURL)
}

func TestFetch_TitleTagAndMetaDescriptionFallback(t *testing.T) {
	srv := serveHTML(t, `<html><head>
		<title> Plain page title </title>
		<meta name="description" content="plain description" />
	</head></html>`)

	meta, err := NewClient().Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Plain page title", meta.Title)
	assert.Equal(t, "plain description", meta.Description)
}

func TestFetch_RelativeImageResolvedAgainstPage(t *testing.T) {
	srv := serveHTML(t, `<html><head>
		<meta property="og:title" content="t" />
		<meta property="og:image" content="/img/cover.jpg" />
	</head></html>`)

	meta, err := NewClient().Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, srv.URL+"/img/cover.jpg", meta.ImageURL)
}

func TestFetch_DecodesEntities(t *testing.T) {
	srv := serveHTML(t, `<html><head>
		<meta property="og:title" content="Ori &amp; the Blind Forest &#39;Definitive&#39;" />
	</head></html>`)

	meta, err := NewClient().Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, "Ori & the Blind Forest 'Definitive'", meta.Title)
}

func TestFetch_SiteNameDefaultsToHost(t *testing.T) {
	srv := serveHTML(t, `<html><head><title>t</title></head></html>`)

	meta, err := NewClient().Fetch(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.NotEmpty(t, meta.SiteName)
}

func TestFetch_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient().Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestFetch_NoMetadata(t *testing.T) {
	srv := serveHTML(t, `<html><body>nothing here</body></html>`)

	_, err := NewClient().Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}

func TestFetch_RejectsNonHTTPSchemes(t *testing.T) {
	_, err := NewClient().Fetch(context.Background(), "ftp://example.com/file")
	assert.Error(t, err)

	_, err = NewClient().Fetch(context.Background(), "javascript:alert(1)")
	assert.Error(t, err)
}

func TestFetch_RejectsNonHTMLContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4"))
	}))
	defer srv.Close()

	_, err := NewClient().Fetch(context.Background(), srv.URL)
	assert.Error(t, err)
}
