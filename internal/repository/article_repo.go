package repository

import (
	"errors"

	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
)

// ArticleRepository handles article, revision and game-join data
type ArticleRepository struct {
	db *gorm.DB
}

// NewArticleRepository creates a new ArticleRepository
func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

// Create inserts a new article with its game joins
func (r *ArticleRepository) Create(article *domain.Article, gameIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(article).Error; err != nil {
			return err
		}
		return replaceGameJoins(tx, article.ID, gameIDs)
	})
}

// FindByID returns an article by id, nil when missing
func (r *ArticleRepository) FindByID(id uint) (*domain.Article, error) {
	var article domain.Article
	err := r.db.First(&article, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// FindBySlug returns an article by slug, nil when missing
func (r *ArticleRepository) FindBySlug(slug string) (*domain.Article, error) {
	var article domain.Article
	err := r.db.Where("slug = ?", slug).First(&article).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &article, nil
}

// Update persists article changes and replaces its game joins.
// When saveHistory is set the pre-update snapshot is appended to the
// revision list inside the same transaction.
func (r *ArticleRepository) Update(article *domain.Article, gameIDs []uint, snapshot *domain.ArticleRevision) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if snapshot != nil {
			if err := tx.Create(snapshot).Error; err != nil {
				return err
			}
		}
		if err := tx.Save(article).Error; err != nil {
			return err
		}
		return replaceGameJoins(tx, article.ID, gameIDs)
	})
}

// ListRevisions returns an article's revisions, newest first
func (r *ArticleRepository) ListRevisions(articleID uint) ([]domain.ArticleRevision, error) {
	var revisions []domain.ArticleRevision
	err := r.db.Where("article_id = ?", articleID).
		Order("created_at DESC").
		Find(&revisions).Error
	return revisions, err
}

// GameIDs returns the ids of games joined to an article
func (r *ArticleRepository) GameIDs(articleID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&domain.ArticleGame{}).
		Where("article_id = ?", articleID).
		Pluck("game_id", &ids).Error
	return ids, err
}

// ListPublished returns published articles, newest first
func (r *ArticleRepository) ListPublished(offset, limit int) ([]domain.Article, int64, error) {
	var articles []domain.Article
	var total int64

	if err := r.db.Model(&domain.Article{}).
		Where("published = ?", true).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.Where("published = ?", true).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// ListByGame returns published articles joined to a game
func (r *ArticleRepository) ListByGame(gameID uint, offset, limit int) ([]domain.Article, int64, error) {
	var articles []domain.Article
	var total int64

	base := r.db.Model(&domain.Article{}).
		Joins("JOIN tr_article_games ag ON ag.article_id = tr_articles.id").
		Where("ag.game_id = ? AND tr_articles.published = ?", gameID, true)

	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := base.Order("tr_articles.created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

func replaceGameJoins(tx *gorm.DB, articleID uint, gameIDs []uint) error {
	if err := tx.Where("article_id = ?", articleID).
		Delete(&domain.ArticleGame{}).Error; err != nil {
		return err
	}
	for _, gid := range gameIDs {
		if err := tx.Create(&domain.ArticleGame{ArticleID: articleID, GameID: gid}).Error; err != nil {
			return err
		}
	}
	return nil
}
