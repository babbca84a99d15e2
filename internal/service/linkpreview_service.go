package service

import (
	"context"
	"time"

	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/linkpreview"
	"github.com/thinkribbon/backend/pkg/logger"
)

// PreviewFetcher scrapes Open Graph metadata from a page
type PreviewFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*linkpreview.Metadata, error)
}

// LinkPreviewRepo is the persistence surface for stored previews
type LinkPreviewRepo interface {
	FindByPostID(postID uint) (*domain.LinkPreview, error)
	InsertIfAbsent(preview *domain.LinkPreview) error
	DeleteByPostID(postID uint) error
}

// LinkPreviewService fetches and stores link previews for posts. The
// fetch runs off the request path; a failed scrape leaves the post
// without a preview and is not retried.
type LinkPreviewService struct {
	repo    LinkPreviewRepo
	fetcher PreviewFetcher
}

// NewLinkPreviewService creates a new LinkPreviewService
func NewLinkPreviewService(repo LinkPreviewRepo, fetcher PreviewFetcher) *LinkPreviewService {
	return &LinkPreviewService{repo: repo, fetcher: fetcher}
}

// FetchAsync scrapes the URL in the background and stores the result
// against the post. Callers do not wait and do not see errors.
func (s *LinkPreviewService) FetchAsync(postID uint, rawURL string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := s.fetchAndStore(ctx, postID, rawURL); err != nil {
			logger.Get().Warn().Err(err).Uint("post_id", postID).Str("url", rawURL).Msg("link preview fetch failed")
		}
	}()
}

// FetchAndStore is the synchronous path, used by tests and backfills
func (s *LinkPreviewService) FetchAndStore(ctx context.Context, postID uint, rawURL string) error {
	return s.fetchAndStore(ctx, postID, rawURL)
}

func (s *LinkPreviewService) fetchAndStore(ctx context.Context, postID uint, rawURL string) error {
	existing, err := s.repo.FindByPostID(postID)
	if err != nil {
		return err
	}
	if existing != nil && existing.URL == rawURL {
		return nil
	}
	if existing != nil {
		if err := s.repo.DeleteByPostID(postID); err != nil {
			return err
		}
	}

	meta, err := s.fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return err
	}

	return s.repo.InsertIfAbsent(&domain.LinkPreview{
		PostID:      postID,
		URL:         meta.URL,
		Title:       meta.Title,
		Description: meta.Description,
		ImageURL:    meta.ImageURL,
		SiteName:    meta.SiteName,
	})
}
