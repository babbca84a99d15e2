package service

import (
	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/repository"
)

// PostService handles short-form updates
type PostService struct {
	repo     *repository.PostRepository
	cascade  *repository.CascadeRepository
	mentions *MentionService
	previews *LinkPreviewService
}

// NewPostService creates a new PostService
func NewPostService(repo *repository.PostRepository, cascade *repository.CascadeRepository, mentions *MentionService, previews *LinkPreviewService) *PostService {
	return &PostService{repo: repo, cascade: cascade, mentions: mentions, previews: previews}
}

// Create writes a post, records its mentions and kicks off the link
// preview fetch when a link is attached
func (s *PostService) Create(actor *domain.User, req *domain.CreatePostRequest) (*domain.Post, error) {
	if actor == nil {
		return nil, common.ErrUnauthorized
	}

	published := true
	if req.Published != nil {
		published = *req.Published
	}

	post := &domain.Post{
		AuthorID:  actor.ID,
		Content:   req.Content,
		LinkURL:   req.LinkURL,
		Published: published,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}

	if err := s.mentions.Apply(actor.ID, domain.TargetPost, post.ID, req.Mentions, post.Published); err != nil {
		return nil, err
	}

	if post.LinkURL != "" && s.previews != nil {
		s.previews.FetchAsync(post.ID, post.LinkURL)
	}

	return post, nil
}

// Get returns a post by id
func (s *PostService) Get(id uint) (*domain.Post, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, common.ErrPostNotFound
	}
	return post, nil
}

// Update edits a post after the ownership check. Mention fan-out
// follows the published flag of the updated state.
func (s *PostService) Update(actor *domain.User, id uint, req *domain.UpdatePostRequest) (*domain.Post, error) {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, common.ErrPostNotFound
	}
	if err := AssertOwnerOrAdmin(actor, post.AuthorID); err != nil {
		return nil, err
	}

	post.Content = req.Content
	post.LinkURL = req.LinkURL
	if req.Published != nil {
		post.Published = *req.Published
	}
	if err := s.repo.Update(post); err != nil {
		return nil, err
	}

	if err := s.mentions.Apply(post.AuthorID, domain.TargetPost, post.ID, req.Mentions, post.Published); err != nil {
		return nil, err
	}

	if post.LinkURL != "" && s.previews != nil {
		s.previews.FetchAsync(post.ID, post.LinkURL)
	}

	return post, nil
}

// Delete cascades the post and everything referencing it
func (s *PostService) Delete(actor *domain.User, id uint) error {
	post, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return common.ErrPostNotFound
	}
	if err := AssertOwnerOrAdmin(actor, post.AuthorID); err != nil {
		return err
	}
	return s.cascade.DeleteContent(domain.TargetPost, id)
}

// ListByAuthor returns an author's posts; unpublished ones only for
// the author or an admin
func (s *PostService) ListByAuthor(viewer *domain.User, authorID uint, page, limit int) ([]domain.Post, int64, error) {
	page, limit = normalizePage(page, limit)
	includeUnpublished := viewer != nil && (viewer.ID == authorID || viewer.Admin)
	return s.repo.ListByAuthor(authorID, includeUnpublished, (page-1)*limit, limit)
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}
