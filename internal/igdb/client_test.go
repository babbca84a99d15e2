package igdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServers(t *testing.T, authHits *int, games []Game) (*httptest.Server, *httptest.Server) {
	t.Helper()

	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*authHits++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok-1", ExpiresIn: 3600})
	}))
	t.Cleanup(auth.Close)

	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("Client-ID"))
		json.NewEncoder(w).Encode(games)
	}))
	t.Cleanup(api.Close)

	return auth, api
}

func TestClient_TokenFetchedOnceAcrossQueries(t *testing.T) {
	authHits := 0
	auth, api := newTestServers(t, &authHits, []Game{{ID: 1, Name: "Hades", Slug: "hades"}})
	c := NewClient("cid", "secret").WithBaseURLs(auth.URL, api.URL)

	_, err := c.GetByID(context.Background(), 1)
	require.NoError(t, err)
	_, err = c.Search(context.Background(), "hades", 5)
	require.NoError(t, err)

	assert.Equal(t, 1, authHits)
}

func TestClient_TokenRefreshedNearExpiry(t *testing.T) {
	authHits := 0
	auth, api := newTestServers(t, &authHits, []Game{{ID: 1}})
	c := NewClient("cid", "secret").WithBaseURLs(auth.URL, api.URL)

	_, err := c.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, authHits)

	// jump the clock to within the early-expiry window
	c.now = func() time.Time { return time.Now().Add(3600*time.Second - 4*time.Minute) }

	_, err = c.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, authHits)
}

func TestClient_GetByID_NilWhenAbsent(t *testing.T) {
	authHits := 0
	auth, api := newTestServers(t, &authHits, []Game{})
	c := NewClient("cid", "secret").WithBaseURLs(auth.URL, api.URL)

	game, err := c.GetByID(context.Background(), 999)

	require.NoError(t, err)
	assert.Nil(t, game)
}

func TestClient_Search(t *testing.T) {
	authHits := 0
	auth, api := newTestServers(t, &authHits, []Game{
		{ID: 1, Name: "Hades", Slug: "hades"},
		{ID: 2, Name: "Hades II", Slug: "hades-ii"},
	})
	c := NewClient("cid", "secret").WithBaseURLs(auth.URL, api.URL)

	games, err := c.Search(context.Background(), `ha"des`, 10)

	require.NoError(t, err)
	require.Len(t, games, 2)
	assert.Equal(t, "hades-ii", games[1].Slug)
}

func TestClient_DropsTokenOnUnauthorized(t *testing.T) {
	authHits := 0
	auth := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHits++
		json.NewEncoder(w).Encode(tokenResponse{AccessToken: "tok-1", ExpiresIn: 3600})
	}))
	defer auth.Close()

	calls := 0
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode([]Game{{ID: 1}})
	}))
	defer api.Close()

	c := NewClient("cid", "secret").WithBaseURLs(auth.URL, api.URL)

	_, err := c.GetByID(context.Background(), 1)
	assert.Error(t, err)

	// the 401 cleared the cached token, so the retry re-authenticates
	_, err = c.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, authHits)
}

func TestGame_Helpers(t *testing.T) {
	g := Game{ID: 1, Name: "Hades", FirstReleaseDate: 1600000000}
	g.Cover.ImageID = "co1rgi"
	g.Platforms = []struct {
		Name string `json:"name"`
	}{{Name: "PC"}, {Name: "Switch"}}

	assert.Equal(t, "https://images.igdb.com/igdb/image/upload/t_cover_big/co1rgi.jpg", g.CoverURL())
	assert.Equal(t, "PC, Switch", g.PlatformNames())
	assert.Equal(t, int64(1600000000), g.ReleaseTime().Unix())

	var empty Game
	assert.Equal(t, "", empty.CoverURL())
	assert.Nil(t, empty.ReleaseTime())
}
