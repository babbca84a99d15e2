package repository

import (
	"errors"

	"github.com/thinkribbon/backend/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository handles the local game metadata cache
type GameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a new GameRepository
func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{db: db}
}

// FindByID returns a game by internal id, nil when missing
func (r *GameRepository) FindByID(id uint) (*domain.Game, error) {
	var game domain.Game
	err := r.db.First(&game, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// FindByIgdbID returns a game by its IGDB id, nil when missing
func (r *GameRepository) FindByIgdbID(igdbID int64) (*domain.Game, error) {
	var game domain.Game
	err := r.db.Where("igdb_id = ?", igdbID).First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// FindBySlug returns a game by slug, nil when missing
func (r *GameRepository) FindBySlug(slug string) (*domain.Game, error) {
	var game domain.Game
	err := r.db.Where("slug = ?", slug).First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &game, nil
}

// FindByIDs returns games for a set of internal ids, keyed by id
func (r *GameRepository) FindByIDs(ids []uint) (map[uint]domain.Game, error) {
	result := make(map[uint]domain.Game, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var games []domain.Game
	if err := r.db.Where("id IN ?", ids).Find(&games).Error; err != nil {
		return nil, err
	}
	for _, g := range games {
		result[g.ID] = g
	}
	return result, nil
}

// Upsert writes external metadata into the cache keyed by igdb_id
func (r *GameRepository) Upsert(game *domain.Game) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "igdb_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "slug", "summary", "cover_url", "platforms", "genres",
			"first_release_date", "refreshed_at", "updated_at",
		}),
	}).Create(game).Error
}

// SearchLocal matches cached games by name prefix
func (r *GameRepository) SearchLocal(query string, limit int) ([]domain.Game, error) {
	var games []domain.Game
	err := r.db.Where("name LIKE ?", query+"%").
		Order("name ASC").
		Limit(limit).
		Find(&games).Error
	return games, err
}

// ListAll returns all cached games (sitemap)
func (r *GameRepository) ListAll() ([]domain.Game, error) {
	var games []domain.Game
	err := r.db.Order("name ASC").Find(&games).Error
	return games, err
}
