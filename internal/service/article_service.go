package service

import (
	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/repository"
)

// ArticleService handles long-form articles, their revision history
// and game joins
type ArticleService struct {
	repo     *repository.ArticleRepository
	cascade  *repository.CascadeRepository
	mentions *MentionService
}

// NewArticleService creates a new ArticleService
func NewArticleService(repo *repository.ArticleRepository, cascade *repository.CascadeRepository, mentions *MentionService) *ArticleService {
	return &ArticleService{repo: repo, cascade: cascade, mentions: mentions}
}

// Create writes an article with its game joins and mention list
func (s *ArticleService) Create(actor *domain.User, req *domain.CreateArticleRequest) (*domain.Article, error) {
	if actor == nil {
		return nil, common.ErrUnauthorized
	}

	existing, err := s.repo.FindBySlug(req.Slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, common.ErrInvalidInput
	}

	published := false
	if req.Published != nil {
		published = *req.Published
	}

	article := &domain.Article{
		AuthorID:  actor.ID,
		Title:     req.Title,
		Slug:      req.Slug,
		Content:   req.Content,
		Excerpt:   req.Excerpt,
		CoverURL:  req.CoverURL,
		Published: published,
	}
	if err := s.repo.Create(article, req.GameIDs); err != nil {
		return nil, err
	}

	if err := s.mentions.Apply(actor.ID, domain.TargetArticle, article.ID, req.Mentions, article.Published); err != nil {
		return nil, err
	}

	return article, nil
}

// Get returns an article by id
func (s *ArticleService) Get(id uint) (*domain.Article, error) {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, common.ErrArticleNotFound
	}
	return article, nil
}

// GetBySlug returns an article by slug
func (s *ArticleService) GetBySlug(slug string) (*domain.Article, error) {
	article, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, common.ErrArticleNotFound
	}
	return article, nil
}

// Update edits an article after the ownership check. When SaveHistory
// is set the pre-update state is appended to the revision list.
func (s *ArticleService) Update(actor *domain.User, id uint, req *domain.UpdateArticleRequest) (*domain.Article, error) {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, common.ErrArticleNotFound
	}
	if err := AssertOwnerOrAdmin(actor, article.AuthorID); err != nil {
		return nil, err
	}

	var snapshot *domain.ArticleRevision
	if req.SaveHistory {
		snapshot = &domain.ArticleRevision{
			ArticleID: article.ID,
			Title:     article.Title,
			Content:   article.Content,
		}
	}

	article.Title = req.Title
	article.Content = req.Content
	article.Excerpt = req.Excerpt
	article.CoverURL = req.CoverURL
	if req.Published != nil {
		article.Published = *req.Published
	}
	if err := s.repo.Update(article, req.GameIDs, snapshot); err != nil {
		return nil, err
	}

	if err := s.mentions.Apply(article.AuthorID, domain.TargetArticle, article.ID, req.Mentions, article.Published); err != nil {
		return nil, err
	}

	return article, nil
}

// ListRevisions returns the revision history, author or admin only
func (s *ArticleService) ListRevisions(actor *domain.User, articleID uint) ([]domain.ArticleRevision, error) {
	article, err := s.repo.FindByID(articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, common.ErrArticleNotFound
	}
	if err := AssertOwnerOrAdmin(actor, article.AuthorID); err != nil {
		return nil, err
	}
	return s.repo.ListRevisions(articleID)
}

// Delete cascades the article, its revisions, game joins and all
// engagement rows
func (s *ArticleService) Delete(actor *domain.User, id uint) error {
	article, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if article == nil {
		return common.ErrArticleNotFound
	}
	if err := AssertOwnerOrAdmin(actor, article.AuthorID); err != nil {
		return err
	}
	return s.cascade.DeleteContent(domain.TargetArticle, id)
}

// ListPublished returns published articles, newest first
func (s *ArticleService) ListPublished(page, limit int) ([]domain.Article, int64, error) {
	page, limit = normalizePage(page, limit)
	return s.repo.ListPublished((page-1)*limit, limit)
}

// ListByGame returns published articles covering a game
func (s *ArticleService) ListByGame(gameID uint, page, limit int) ([]domain.Article, int64, error) {
	page, limit = normalizePage(page, limit)
	return s.repo.ListByGame(gameID, (page-1)*limit, limit)
}
