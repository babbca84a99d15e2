package service

import (
	"context"
	"time"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/igdb"
	"github.com/thinkribbon/backend/internal/repository"
	"github.com/thinkribbon/backend/pkg/cache"
	"github.com/thinkribbon/backend/pkg/logger"
)

// GameCatalog is the external metadata source
type GameCatalog interface {
	GetByID(ctx context.Context, igdbID int64) (*igdb.Game, error)
	Search(ctx context.Context, term string, limit int) ([]igdb.Game, error)
}

// GameService keeps a local queryable copy of external game metadata.
// Reads go cache, then local table; stale rows refresh in the
// background while the stale copy is served.
type GameService struct {
	repo    *repository.GameRepository
	catalog GameCatalog
	cache   cache.Service
	now     func() time.Time
}

// NewGameService creates a new GameService
func NewGameService(repo *repository.GameRepository, catalog GameCatalog, cacheSvc cache.Service) *GameService {
	return &GameService{repo: repo, catalog: catalog, cache: cacheSvc, now: time.Now}
}

// Get returns a game by local id
func (s *GameService) Get(ctx context.Context, id uint) (*domain.Game, error) {
	game, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, common.ErrGameNotFound
	}
	s.refreshIfStale(game)
	return game, nil
}

// GetBySlug returns a game by its slug
func (s *GameService) GetBySlug(ctx context.Context, slug string) (*domain.Game, error) {
	game, err := s.repo.FindBySlug(slug)
	if err != nil {
		return nil, err
	}
	if game == nil {
		return nil, common.ErrGameNotFound
	}
	s.refreshIfStale(game)
	return game, nil
}

// GetByIgdbID returns a game by its external id, importing it on first
// reference. Cache, local table, then the external API.
func (s *GameService) GetByIgdbID(ctx context.Context, igdbID int64) (*domain.Game, error) {
	if s.cache != nil {
		var cached domain.Game
		if err := s.cache.GetGame(ctx, igdbID, &cached); err == nil {
			return &cached, nil
		}
	}

	game, err := s.repo.FindByIgdbID(igdbID)
	if err != nil {
		return nil, err
	}
	if game != nil {
		s.cacheGame(ctx, game)
		s.refreshIfStale(game)
		return game, nil
	}

	game, err = s.importFromCatalog(ctx, igdbID)
	if err != nil {
		return nil, err
	}
	s.cacheGame(ctx, game)
	return game, nil
}

// Search looks in the local table first and falls back to the external
// API, importing any hits so later searches resolve locally.
func (s *GameService) Search(ctx context.Context, term string, limit int) ([]domain.Game, error) {
	if term == "" {
		return nil, common.ErrInvalidInput
	}
	if limit <= 0 || limit > 50 {
		limit = 10
	}

	local, err := s.repo.SearchLocal(term, limit)
	if err != nil {
		return nil, err
	}
	if len(local) >= limit {
		return local, nil
	}

	remote, err := s.catalog.Search(ctx, term, limit)
	if err != nil {
		// external search failing degrades to local-only results
		logger.Get().Warn().Err(err).Str("term", term).Msg("external game search failed")
		return local, nil
	}

	seen := make(map[int64]bool, len(local))
	for _, g := range local {
		seen[g.IgdbID] = true
	}
	results := local
	for i := range remote {
		if seen[remote[i].ID] {
			continue
		}
		game := s.toDomain(&remote[i])
		if err := s.repo.Upsert(game); err != nil {
			return nil, err
		}
		results = append(results, *game)
		if len(results) >= limit {
			break
		}
	}
	return results, nil
}

// importFromCatalog pulls a game from the external API and stores it
func (s *GameService) importFromCatalog(ctx context.Context, igdbID int64) (*domain.Game, error) {
	remote, err := s.catalog.GetByID(ctx, igdbID)
	if err != nil {
		return nil, err
	}
	if remote == nil {
		return nil, common.ErrGameNotFound
	}
	game := s.toDomain(remote)
	if err := s.repo.Upsert(game); err != nil {
		return nil, err
	}
	return game, nil
}

// refreshIfStale kicks off a background refresh when the local copy has
// aged past the staleness threshold. The stale copy is still served.
func (s *GameService) refreshIfStale(game *domain.Game) {
	if !game.Stale(s.now()) {
		return
	}
	igdbID := game.IgdbID
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.importFromCatalog(ctx, igdbID); err != nil {
			logger.Get().Warn().Err(err).Int64("igdb_id", igdbID).Msg("background game refresh failed")
			return
		}
		if s.cache != nil {
			if err := s.cache.InvalidateGame(ctx, igdbID); err != nil {
				logger.Get().Warn().Err(err).Int64("igdb_id", igdbID).Msg("game cache invalidation failed")
			}
		}
	}()
}

func (s *GameService) cacheGame(ctx context.Context, game *domain.Game) {
	if s.cache == nil {
		return
	}
	if err := s.cache.SetGame(ctx, game.IgdbID, game); err != nil {
		logger.Get().Warn().Err(err).Int64("igdb_id", game.IgdbID).Msg("game cache write failed")
	}
}

func (s *GameService) toDomain(remote *igdb.Game) *domain.Game {
	return &domain.Game{
		IgdbID:           remote.ID,
		Name:             remote.Name,
		Slug:             remote.Slug,
		Summary:          remote.Summary,
		CoverURL:         remote.CoverURL(),
		Platforms:        remote.PlatformNames(),
		Genres:           remote.GenreNames(),
		FirstReleaseDate: remote.ReleaseTime(),
		RefreshedAt:      s.now(),
	}
}
