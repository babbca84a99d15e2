package repository

import (
	"errors"

	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LinkPreviewRepository handles persisted link previews
type LinkPreviewRepository struct {
	db *gorm.DB
}

// NewLinkPreviewRepository creates a new LinkPreviewRepository
func NewLinkPreviewRepository(db *gorm.DB) *LinkPreviewRepository {
	return &LinkPreviewRepository{db: db}
}

// FindByPostID returns a post's preview, nil when absent
func (r *LinkPreviewRepository) FindByPostID(postID uint) (*domain.LinkPreview, error) {
	var preview domain.LinkPreview
	err := r.db.Where("post_id = ?", postID).First(&preview).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &preview, nil
}

// FindByPostIDs returns previews for a batch of posts, keyed by post id
func (r *LinkPreviewRepository) FindByPostIDs(postIDs []uint) (map[uint]domain.LinkPreview, error) {
	result := make(map[uint]domain.LinkPreview, len(postIDs))
	if len(postIDs) == 0 {
		return result, nil
	}
	var previews []domain.LinkPreview
	if err := r.db.Where("post_id IN ?", postIDs).Find(&previews).Error; err != nil {
		return nil, err
	}
	for _, p := range previews {
		result[p.PostID] = p
	}
	return result, nil
}

// InsertIfAbsent persists at most one preview per post
func (r *LinkPreviewRepository) InsertIfAbsent(preview *domain.LinkPreview) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "post_id"}},
		DoNothing: true,
	}).Create(preview).Error
}

// DeleteByPostID removes a post's preview
func (r *LinkPreviewRepository) DeleteByPostID(postID uint) error {
	return r.db.Where("post_id = ?", postID).Delete(&domain.LinkPreview{}).Error
}
