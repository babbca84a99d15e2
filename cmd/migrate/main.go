package main

import (
	"log"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/thinkribbon/backend/internal/config"
	"github.com/thinkribbon/backend/internal/domain"
)

func main() {
	config.LoadDotEnv()

	path := "configs/config.local.yaml"
	if env := os.Getenv("APP_ENV"); env != "" {
		path = "configs/config." + env + ".yaml"
	}
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DB.DSN()), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Post{},
		&domain.Article{},
		&domain.ArticleRevision{},
		&domain.ArticleGame{},
		&domain.Review{},
		&domain.Comment{},
		&domain.Like{},
		&domain.Notification{},
		&domain.Game{},
		&domain.QuestLogEntry{},
		&domain.CollectionEntry{},
		&domain.Draft{},
		&domain.ContentMention{},
		&domain.Follow{},
		&domain.Upload{},
		&domain.LinkPreview{},
	); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration complete")
}
