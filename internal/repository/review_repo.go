package repository

import (
	"errors"

	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// ReviewRepository handles review data operations
type ReviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create inserts a new review
func (r *ReviewRepository) Create(review *domain.Review) error {
	return r.db.Create(review).Error
}

// FindByID returns a review by id, nil when missing
func (r *ReviewRepository) FindByID(id uint) (*domain.Review, error) {
	var review domain.Review
	err := r.db.First(&review, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// FindByAuthorAndGame returns the author's review of a game, nil when
// absent. Backs the one-review-per-game rule.
func (r *ReviewRepository) FindByAuthorAndGame(authorID, gameID uint) (*domain.Review, error) {
	var review domain.Review
	err := r.db.Where("author_id = ? AND game_id = ?", authorID, gameID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &review, nil
}

// Update persists review changes
func (r *ReviewRepository) Update(review *domain.Review) error {
	return r.db.Save(review).Error
}

// ListPublished returns published reviews, newest first
func (r *ReviewRepository) ListPublished(offset, limit int) ([]domain.Review, int64, error) {
	var reviews []domain.Review
	var total int64

	if err := r.db.Model(&domain.Review{}).
		Where("published = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("published = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// ListByGame returns published reviews of a game, newest first
func (r *ReviewRepository) ListByGame(gameID uint, offset, limit int) ([]domain.Review, int64, error) {
	var reviews []domain.Review
	var total int64

	q := r.db.Model(&domain.Review{}).
		Where("game_id = ? AND published = ?", gameID, true)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := q.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

// AverageRating returns the mean published rating of a game
func (r *ReviewRepository) AverageRating(gameID uint) (*float64, error) {
	var avg *float64
	err := r.db.Model(&domain.Review{}).
		Where("game_id = ? AND published = ?", gameID, true).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return nil, err
	}
	return avg, nil
}
