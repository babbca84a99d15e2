package service

import (
	"context"
	"fmt"

	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/repository"
	"github.com/thinkribbon/backend/pkg/cache"
	"github.com/thinkribbon/backend/pkg/logger"
)

// FeedService assembles denormalized view models at read time: content
// joined with author summaries and engagement counts. No feed table is
// persisted; anonymous pages are cached briefly in redis.
type FeedService struct {
	posts    *repository.PostRepository
	articles *repository.ArticleRepository
	reviews  *repository.ReviewRepository
	games    *repository.GameRepository
	users    *repository.UserRepository
	likes    *repository.LikeRepository
	comments *repository.CommentRepository
	previews *repository.LinkPreviewRepository
	cache    cache.Service
}

// NewFeedService creates a new FeedService
func NewFeedService(
	posts *repository.PostRepository,
	articles *repository.ArticleRepository,
	reviews *repository.ReviewRepository,
	games *repository.GameRepository,
	users *repository.UserRepository,
	likes *repository.LikeRepository,
	comments *repository.CommentRepository,
	previews *repository.LinkPreviewRepository,
	cacheSvc cache.Service,
) *FeedService {
	return &FeedService{
		posts:    posts,
		articles: articles,
		reviews:  reviews,
		games:    games,
		users:    users,
		likes:    likes,
		comments: comments,
		previews: previews,
		cache:    cacheSvc,
	}
}

type cachedFeedPage struct {
	Items []domain.PostResponse `json:"items"`
	Total int64                 `json:"total"`
}

// ListPosts returns the published post feed. Anonymous pages come from
// the cache when fresh; signed-in views carry per-viewer liked flags
// and skip it.
func (s *FeedService) ListPosts(ctx context.Context, viewerID uint, page, limit int) ([]domain.PostResponse, int64, error) {
	page, limit = normalizePage(page, limit)

	cacheKey := fmt.Sprintf("posts:p%d:l%d", page, limit)
	if viewerID == 0 && s.cache != nil {
		var cached cachedFeedPage
		if err := s.cache.GetFeedPage(ctx, cacheKey, &cached); err == nil {
			return cached.Items, cached.Total, nil
		}
	}

	posts, total, err := s.posts.ListPublished((page-1)*limit, limit)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.BuildPostResponses(posts, viewerID)
	if err != nil {
		return nil, 0, err
	}

	if viewerID == 0 && s.cache != nil {
		if err := s.cache.SetFeedPage(ctx, cacheKey, cachedFeedPage{Items: items, Total: total}); err != nil {
			logger.Get().Warn().Err(err).Msg("feed page cache write failed")
		}
	}

	return items, total, nil
}

// BuildPostResponses joins posts with authors, counts, liked flags and
// link previews
func (s *FeedService) BuildPostResponses(posts []domain.Post, viewerID uint) ([]domain.PostResponse, error) {
	authorIDs := make([]uint, 0, len(posts))
	postIDs := make([]uint, 0, len(posts))
	for _, p := range posts {
		authorIDs = append(authorIDs, p.AuthorID)
		postIDs = append(postIDs, p.ID)
	}

	authors, err := s.users.FindByIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.likes.CountByTargets(domain.TargetPost, postIDs)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.comments.CountByTargets(domain.TargetPost, postIDs)
	if err != nil {
		return nil, err
	}
	likedSet, err := s.likes.LikedSet(viewerID, domain.TargetPost, postIDs)
	if err != nil {
		return nil, err
	}
	previewMap, err := s.previews.FindByPostIDs(postIDs)
	if err != nil {
		return nil, err
	}

	items := make([]domain.PostResponse, len(posts))
	for i, p := range posts {
		items[i] = domain.PostResponse{
			ID:           p.ID,
			Author:       authors[p.AuthorID].ToSummary(),
			Content:      p.Content,
			LinkURL:      p.LinkURL,
			Published:    p.Published,
			LikeCount:    likeCounts[p.ID],
			CommentCount: commentCounts[p.ID],
			Liked:        likedSet[p.ID],
			CreatedAt:    p.CreatedAt,
		}
		if preview, ok := previewMap[p.ID]; ok {
			pv := preview
			items[i].Preview = &pv
		}
	}
	return items, nil
}

// BuildArticleResponses joins articles with authors, games and counts
func (s *FeedService) BuildArticleResponses(articles []domain.Article, viewerID uint, includeContent bool) ([]domain.ArticleResponse, error) {
	authorIDs := make([]uint, 0, len(articles))
	articleIDs := make([]uint, 0, len(articles))
	for _, a := range articles {
		authorIDs = append(authorIDs, a.AuthorID)
		articleIDs = append(articleIDs, a.ID)
	}

	authors, err := s.users.FindByIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.likes.CountByTargets(domain.TargetArticle, articleIDs)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.comments.CountByTargets(domain.TargetArticle, articleIDs)
	if err != nil {
		return nil, err
	}
	likedSet, err := s.likes.LikedSet(viewerID, domain.TargetArticle, articleIDs)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ArticleResponse, len(articles))
	for i, a := range articles {
		items[i] = domain.ArticleResponse{
			ID:           a.ID,
			Author:       authors[a.AuthorID].ToSummary(),
			Title:        a.Title,
			Slug:         a.Slug,
			Excerpt:      a.Excerpt,
			CoverURL:     a.CoverURL,
			Published:    a.Published,
			LikeCount:    likeCounts[a.ID],
			CommentCount: commentCounts[a.ID],
			Liked:        likedSet[a.ID],
			CreatedAt:    a.CreatedAt,
			UpdatedAt:    a.UpdatedAt,
		}
		if includeContent {
			items[i].Content = a.Content
		}
		gameIDs, err := s.articles.GameIDs(a.ID)
		if err != nil {
			return nil, err
		}
		gameMap, err := s.games.FindByIDs(gameIDs)
		if err != nil {
			return nil, err
		}
		for _, gid := range gameIDs {
			if g, ok := gameMap[gid]; ok {
				items[i].Games = append(items[i].Games, g)
			}
		}
	}
	return items, nil
}

// BuildReviewResponses joins reviews with authors, games and counts
func (s *FeedService) BuildReviewResponses(reviews []domain.Review, viewerID uint) ([]domain.ReviewResponse, error) {
	authorIDs := make([]uint, 0, len(reviews))
	reviewIDs := make([]uint, 0, len(reviews))
	gameIDs := make([]uint, 0, len(reviews))
	for _, r := range reviews {
		authorIDs = append(authorIDs, r.AuthorID)
		reviewIDs = append(reviewIDs, r.ID)
		gameIDs = append(gameIDs, r.GameID)
	}

	authors, err := s.users.FindByIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	games, err := s.games.FindByIDs(gameIDs)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.likes.CountByTargets(domain.TargetReview, reviewIDs)
	if err != nil {
		return nil, err
	}
	commentCounts, err := s.comments.CountByTargets(domain.TargetReview, reviewIDs)
	if err != nil {
		return nil, err
	}
	likedSet, err := s.likes.LikedSet(viewerID, domain.TargetReview, reviewIDs)
	if err != nil {
		return nil, err
	}

	items := make([]domain.ReviewResponse, len(reviews))
	for i, r := range reviews {
		items[i] = domain.ReviewResponse{
			ID:           r.ID,
			Author:       authors[r.AuthorID].ToSummary(),
			Rating:       r.Rating,
			Title:        r.Title,
			Content:      r.Content,
			Published:    r.Published,
			LikeCount:    likeCounts[r.ID],
			CommentCount: commentCounts[r.ID],
			Liked:        likedSet[r.ID],
			CreatedAt:    r.CreatedAt,
		}
		if g, ok := games[r.GameID]; ok {
			game := g
			items[i].Game = &game
		}
	}
	return items, nil
}

// InvalidateFeed drops cached anonymous feed pages after a publishing
// mutation
func (s *FeedService) InvalidateFeed(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateFeed(ctx); err != nil {
		logger.Get().Warn().Err(err).Msg("feed cache invalidation failed")
	}
}
