package service

import (
	"encoding/xml"
	"fmt"
	"time"

	"github.com/thinkribbon/backend/internal/repository"
)

const sitemapPageSize = 500

// sitemapURL is one <url> element
type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	Xmlns   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

// SitemapService renders the public sitemap: static routes plus every
// published article, review and post, known games, and user profiles.
type SitemapService struct {
	baseURL  string
	posts    *repository.PostRepository
	articles *repository.ArticleRepository
	reviews  *repository.ReviewRepository
	games    *repository.GameRepository
	users    *repository.UserRepository
}

// NewSitemapService creates a new SitemapService
func NewSitemapService(
	baseURL string,
	posts *repository.PostRepository,
	articles *repository.ArticleRepository,
	reviews *repository.ReviewRepository,
	games *repository.GameRepository,
	users *repository.UserRepository,
) *SitemapService {
	return &SitemapService{
		baseURL:  baseURL,
		posts:    posts,
		articles: articles,
		reviews:  reviews,
		games:    games,
		users:    users,
	}
}

var staticRoutes = []string{"/", "/feed", "/articles", "/reviews", "/games", "/search"}

// Render produces the sitemap XML document
func (s *SitemapService) Render() ([]byte, error) {
	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}

	for _, route := range staticRoutes {
		set.URLs = append(set.URLs, sitemapURL{Loc: s.baseURL + route})
	}

	for offset := 0; ; offset += sitemapPageSize {
		articles, _, err := s.articles.ListPublished(offset, sitemapPageSize)
		if err != nil {
			return nil, err
		}
		for _, a := range articles {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     fmt.Sprintf("%s/articles/%s", s.baseURL, a.Slug),
				LastMod: lastMod(a.UpdatedAt),
			})
		}
		if len(articles) < sitemapPageSize {
			break
		}
	}

	for offset := 0; ; offset += sitemapPageSize {
		reviews, _, err := s.reviews.ListPublished(offset, sitemapPageSize)
		if err != nil {
			return nil, err
		}
		for _, r := range reviews {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     fmt.Sprintf("%s/reviews/%d", s.baseURL, r.ID),
				LastMod: lastMod(r.UpdatedAt),
			})
		}
		if len(reviews) < sitemapPageSize {
			break
		}
	}

	for offset := 0; ; offset += sitemapPageSize {
		posts, _, err := s.posts.ListPublished(offset, sitemapPageSize)
		if err != nil {
			return nil, err
		}
		for _, p := range posts {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     fmt.Sprintf("%s/posts/%d", s.baseURL, p.ID),
				LastMod: lastMod(p.UpdatedAt),
			})
		}
		if len(posts) < sitemapPageSize {
			break
		}
	}

	games, err := s.games.ListAll()
	if err != nil {
		return nil, err
	}
	for _, g := range games {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/games/%s", s.baseURL, g.Slug),
			LastMod: lastMod(g.UpdatedAt),
		})
	}

	users, err := s.users.ListAll()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		set.URLs = append(set.URLs, sitemapURL{
			Loc:     fmt.Sprintf("%s/users/%s", s.baseURL, u.Username),
			LastMod: lastMod(u.UpdatedAt),
		})
	}

	out, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), out...), nil
}

func lastMod(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}
