package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/ginutil"
)

type GameHandler struct {
	games    *service.GameService
	articles *service.ArticleService
	reviews  *service.ReviewService
	feed     *service.FeedService
}

func NewGameHandler(games *service.GameService, articles *service.ArticleService, reviews *service.ReviewService, feed *service.FeedService) *GameHandler {
	return &GameHandler{games: games, articles: articles, reviews: reviews, feed: feed}
}

// Search handles GET /api/v1/games/search?q=term
func (h *GameHandler) Search(c *gin.Context) {
	limit := ginutil.QueryInt(c, "limit", 10)
	results, err := h.games.Search(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		fail(c, err, "Failed to search games")
		return
	}
	common.SuccessResponse(c, results, nil)
}

// GetBySlug handles GET /api/v1/games/:slug — the game page with its
// community average rating
func (h *GameHandler) GetBySlug(c *gin.Context) {
	game, err := h.games.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, err, "Failed to fetch game")
		return
	}

	average, err := h.reviews.AverageForGame(game.ID)
	if err != nil {
		fail(c, err, "Failed to fetch game")
		return
	}

	common.SuccessResponse(c, gin.H{
		"game":           game,
		"average_rating": average,
	}, nil)
}

// GetByIgdbID handles GET /api/v1/games/igdb/:igdb_id — imports the
// game on first reference
func (h *GameHandler) GetByIgdbID(c *gin.Context) {
	igdbID, err := ginutil.ParamInt64(c, "igdb_id")
	if err != nil {
		common.ErrorResponse(c, 400, "Invalid IGDB ID", err)
		return
	}

	game, err := h.games.GetByIgdbID(c.Request.Context(), igdbID)
	if err != nil {
		fail(c, err, "Failed to fetch game")
		return
	}
	common.SuccessResponse(c, game, nil)
}

// ListArticles handles GET /api/v1/games/:slug/articles
func (h *GameHandler) ListArticles(c *gin.Context) {
	game, err := h.games.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, err, "Failed to fetch game")
		return
	}

	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	articles, total, err := h.articles.ListByGame(game.ID, page, limit)
	if err != nil {
		fail(c, err, "Failed to fetch articles")
		return
	}
	items, err := h.feed.BuildArticleResponses(articles, middleware.CurrentUserID(c), false)
	if err != nil {
		fail(c, err, "Failed to fetch articles")
		return
	}
	common.SuccessResponse(c, items, &common.Meta{Page: page, Limit: limit, Total: total})
}

// ListReviews handles GET /api/v1/games/:slug/reviews
func (h *GameHandler) ListReviews(c *gin.Context) {
	game, err := h.games.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		fail(c, err, "Failed to fetch game")
		return
	}

	page := ginutil.QueryInt(c, "page", 1)
	limit := ginutil.QueryInt(c, "limit", 20)

	reviews, total, err := h.reviews.ListByGame(game.ID, page, limit)
	if err != nil {
		fail(c, err, "Failed to fetch reviews")
		return
	}
	items, err := h.feed.BuildReviewResponses(reviews, middleware.CurrentUserID(c))
	if err != nil {
		fail(c, err, "Failed to fetch reviews")
		return
	}
	common.SuccessResponse(c, items, &common.Meta{Page: page, Limit: limit, Total: total})
}
