package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/thinkribbon/backend/internal/config"
	"github.com/thinkribbon/backend/internal/filestore"
	"github.com/thinkribbon/backend/internal/handler"
	"github.com/thinkribbon/backend/internal/igdb"
	"github.com/thinkribbon/backend/internal/linkpreview"
	"github.com/thinkribbon/backend/internal/middleware"
	"github.com/thinkribbon/backend/internal/repository"
	"github.com/thinkribbon/backend/internal/routes"
	"github.com/thinkribbon/backend/internal/scheduler"
	"github.com/thinkribbon/backend/internal/service"
	"github.com/thinkribbon/backend/pkg/authtoken"
	pkgcache "github.com/thinkribbon/backend/pkg/cache"
	pkglogger "github.com/thinkribbon/backend/pkg/logger"
)

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	config.LoadDotEnv()

	cfg, err := config.Load(getConfigPath())
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	pkglogger.Init(cfg.Env)
	logger := pkglogger.Get()

	db, err := initDB(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}
	logger.Info().Msg("Connected to MySQL")

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	var cacheSvc pkgcache.Service
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Warn().Err(err).Msg("Redis unavailable, running without cache")
	} else {
		cacheSvc = pkgcache.New(redisClient)
		logger.Info().Msg("Connected to Redis")
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	articleRepo := repository.NewArticleRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	likeRepo := repository.NewLikeRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	gameRepo := repository.NewGameRepository(db)
	questLogRepo := repository.NewQuestLogRepository(db)
	collectionRepo := repository.NewCollectionRepository(db)
	draftRepo := repository.NewDraftRepository(db)
	followRepo := repository.NewFollowRepository(db)
	uploadRepo := repository.NewUploadRepository(db)
	previewRepo := repository.NewLinkPreviewRepository(db)
	mentionRepo := repository.NewMentionRepository(db)
	cascadeRepo := repository.NewCascadeRepository(db)

	// External clients
	igdbClient := igdb.NewClient(cfg.IGDB.ClientID, cfg.IGDB.ClientSecret)
	previewClient := linkpreview.NewClient()
	storageClient := filestore.NewClient(cfg.Storage.APIKey)

	// Services
	identitySvc := service.NewIdentityService(userRepo)
	notificationSvc := service.NewNotificationService(notificationRepo, userRepo)
	resolver := service.NewOwnerResolver(postRepo, articleRepo, reviewRepo, commentRepo)
	mentionSvc := service.NewMentionService(mentionRepo, notificationSvc)
	previewSvc := service.NewLinkPreviewService(previewRepo, previewClient)
	postSvc := service.NewPostService(postRepo, cascadeRepo, mentionSvc, previewSvc)
	articleSvc := service.NewArticleService(articleRepo, cascadeRepo, mentionSvc)
	reviewSvc := service.NewReviewService(reviewRepo, cascadeRepo, mentionSvc)
	commentSvc := service.NewCommentService(commentRepo, resolver, notificationSvc, userRepo,
		service.CommentLikeCounts(likeRepo.CountByTargets, likeRepo.LikedSet))
	likeSvc := service.NewLikeService(likeRepo, resolver, notificationSvc)
	gameSvc := service.NewGameService(gameRepo, igdbClient, cacheSvc)
	questLogSvc := service.NewQuestLogService(questLogRepo, gameRepo, postSvc)
	collectionSvc := service.NewCollectionService(collectionRepo, gameRepo)
	draftSvc := service.NewDraftService(draftRepo)
	followSvc := service.NewFollowService(followRepo, userRepo, notificationSvc)
	uploadSvc := service.NewUploadService(uploadRepo, storageClient)
	feedSvc := service.NewFeedService(postRepo, articleRepo, reviewRepo, gameRepo, userRepo,
		likeRepo, commentRepo, previewRepo, cacheSvc)
	sitemapSvc := service.NewSitemapService(cfg.Site.BaseURL, postRepo, articleRepo, reviewRepo, gameRepo, userRepo)

	verifier := authtoken.NewVerifier(cfg.Auth.JWTSecret)

	// Handlers
	authHandler := handler.NewAuthHandler(identitySvc)
	userHandler := handler.NewUserHandler(identitySvc, followSvc, postSvc, feedSvc)
	postHandler := handler.NewPostHandler(postSvc, feedSvc)
	articleHandler := handler.NewArticleHandler(articleSvc, feedSvc)
	reviewHandler := handler.NewReviewHandler(reviewSvc, feedSvc)
	commentHandler := handler.NewCommentHandler(commentSvc)
	likeHandler := handler.NewLikeHandler(likeSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	questLogHandler := handler.NewQuestLogHandler(questLogSvc, identitySvc)
	collectionHandler := handler.NewCollectionHandler(collectionSvc, identitySvc)
	draftHandler := handler.NewDraftHandler(draftSvc)
	gameHandler := handler.NewGameHandler(gameSvc, articleSvc, reviewSvc, feedSvc)
	uploadHandler := handler.NewUploadHandler(uploadSvc)
	cronHandler := handler.NewCronHandler(notificationSvc, uploadSvc)
	sitemapHandler := handler.NewSitemapHandler(sitemapSvc)

	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	routes.Setup(router,
		authHandler, userHandler, postHandler, articleHandler, reviewHandler,
		commentHandler, likeHandler, notificationHandler, questLogHandler,
		collectionHandler, draftHandler, gameHandler, uploadHandler,
		cronHandler, sitemapHandler, verifier, identitySvc, cfg)

	// In-process daily maintenance; the cron endpoints cover missed runs
	sched := scheduler.New()
	sched.RegisterDaily("notification-expiry-sweep", cfg.Cron.NotificationSweepHourUTC, func(ctx context.Context) error {
		return notificationSvc.RunExpirySweep()
	})
	sched.RegisterDaily("orphaned-upload-sweep", cfg.Cron.NotificationSweepHourUTC, func(ctx context.Context) error {
		_, err := uploadSvc.SweepOrphans(ctx)
		return err
	})
	sched.Start()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Str("env", cfg.Env).Msg("Server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("Shutting down")

	sched.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Forced shutdown")
	}
	logger.Info().Msg("Server stopped")
}

func initDB(cfg *config.Config) (*gorm.DB, error) {
	logLevel := gormlogger.Warn
	if cfg.IsDev() {
		logLevel = gormlogger.Info
	}
	return gorm.Open(mysql.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
}
