package repository

import (
	"errors"

	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// PostRepository handles post data operations
type PostRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

// Create inserts a new post
func (r *PostRepository) Create(post *domain.Post) error {
	return r.db.Create(post).Error
}

// FindByID returns a post by id, nil when missing
func (r *PostRepository) FindByID(id uint) (*domain.Post, error) {
	var post domain.Post
	err := r.db.First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Update persists post changes
func (r *PostRepository) Update(post *domain.Post) error {
	return r.db.Save(post).Error
}

// ListPublished returns published posts, newest first
func (r *PostRepository) ListPublished(offset, limit int) ([]domain.Post, int64, error) {
	var posts []domain.Post
	var total int64

	if err := r.db.Model(&domain.Post{}).
		Where("published = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("published = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}

// ListByAuthor returns an author's posts, newest first
func (r *PostRepository) ListByAuthor(authorID uint, includeUnpublished bool, offset, limit int) ([]domain.Post, int64, error) {
	var posts []domain.Post
	var total int64

	q := r.db.Model(&domain.Post{}).Where("author_id = ?", authorID)
	if !includeUnpublished {
		q = q.Where("published = ?", true)
	}

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error; err != nil {
		return nil, 0, err
	}

	return posts, total, nil
}
