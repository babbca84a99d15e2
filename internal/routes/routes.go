package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/thinkribbon/backend/internal/config"
	"github.com/thinkribbon/backend/internal/handler"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/authtoken"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	postHandler *handler.PostHandler,
	articleHandler *handler.ArticleHandler,
	reviewHandler *handler.ReviewHandler,
	commentHandler *handler.CommentHandler,
	likeHandler *handler.LikeHandler,
	notificationHandler *handler.NotificationHandler,
	questLogHandler *handler.QuestLogHandler,
	collectionHandler *handler.CollectionHandler,
	draftHandler *handler.DraftHandler,
	gameHandler *handler.GameHandler,
	uploadHandler *handler.UploadHandler,
	cronHandler *handler.CronHandler,
	sitemapHandler *handler.SitemapHandler,
	verifier *authtoken.Verifier,
	identity *service.IdentityService,
	cfg *config.Config,
) {
	required := middleware.Auth(verifier, identity)
	optional := middleware.OptionalAuth(verifier, identity)

	router.GET("/sitemap.xml", sitemapHandler.Get)

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	auth.POST("/sync", middleware.SyncAuth(verifier), authHandler.Sync)
	auth.GET("/me", required, authHandler.Me)

	users := api.Group("/users")
	users.GET("/:username", optional, userHandler.GetProfile)
	users.GET("/:username/posts", optional, userHandler.ListPosts)
	users.GET("/:username/now-playing", questLogHandler.NowPlaying)
	users.GET("/:username/collection", collectionHandler.List)
	users.POST("/:username/follow", required, userHandler.Follow)
	users.DELETE("/:username/follow", required, userHandler.Unfollow)

	posts := api.Group("/posts")
	posts.GET("", optional, postHandler.List)
	posts.GET("/:id", optional, postHandler.Get)
	posts.POST("", required, postHandler.Create)
	posts.PATCH("/:id", required, postHandler.Update)
	posts.DELETE("/:id", required, postHandler.Delete)

	articles := api.Group("/articles")
	articles.GET("", optional, articleHandler.List)
	articles.GET("/:slug", optional, articleHandler.GetBySlug)
	articles.POST("", required, articleHandler.Create)
	articles.PATCH("/id/:id", required, articleHandler.Update)
	articles.GET("/id/:id/revisions", required, articleHandler.ListRevisions)
	articles.DELETE("/id/:id", required, articleHandler.Delete)

	reviews := api.Group("/reviews")
	reviews.GET("/:id", optional, reviewHandler.Get)
	reviews.POST("", required, reviewHandler.Create)
	reviews.PATCH("/:id", required, reviewHandler.Update)
	reviews.DELETE("/:id", required, reviewHandler.Delete)

	comments := api.Group("/comments")
	comments.GET("", optional, commentHandler.ListByTarget)
	comments.POST("", required, commentHandler.Create)
	comments.PATCH("/:id", required, commentHandler.Update)
	comments.DELETE("/:id", required, commentHandler.Delete)

	api.POST("/likes/toggle", required, likeHandler.Toggle)

	notifications := api.Group("/notifications", required)
	notifications.GET("", notificationHandler.List)
	notifications.GET("/unread-count", notificationHandler.UnreadCount)

	questLog := api.Group("/quest-log", required)
	questLog.GET("", questLogHandler.List)
	questLog.POST("", questLogHandler.Create)
	questLog.POST("/quick-rate", questLogHandler.QuickRate)
	questLog.PATCH("/:id/status", questLogHandler.ChangeStatus)
	questLog.DELETE("/:id", questLogHandler.Delete)

	collection := api.Group("/collection", required)
	collection.PUT("", collectionHandler.Upsert)
	collection.DELETE("/:id", collectionHandler.Remove)

	drafts := api.Group("/drafts", required)
	drafts.GET("", draftHandler.List)
	drafts.POST("", draftHandler.Create)
	drafts.PUT("/:id", draftHandler.Update)
	drafts.DELETE("/:id", draftHandler.Delete)

	games := api.Group("/games")
	games.GET("/search", gameHandler.Search)
	games.GET("/igdb/:igdb_id", gameHandler.GetByIgdbID)
	games.GET("/:slug", gameHandler.GetBySlug)
	games.GET("/:slug/articles", optional, gameHandler.ListArticles)
	games.GET("/:slug/reviews", optional, gameHandler.ListReviews)

	api.POST("/uploads", required, uploadHandler.Record)

	cron := api.Group("/cron", middleware.CronAuth(cfg.Auth.CronSecret))
	cron.POST("/notifications/sweep", cronHandler.SweepNotifications)
	cron.POST("/uploads/sweep", cronHandler.SweepUploads)
}
