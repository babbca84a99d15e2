package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/thinkribbon/backend/internal/domain"
)

func countWhere(t *testing.T, db *gorm.DB, model interface{}, query string, args ...interface{}) int64 {
	t.Helper()
	var count int64
	if err := db.Model(model).Where(query, args...).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	return count
}

func TestCascadeRepository_DeletePostRemovesEverything(t *testing.T) {
	db := setupTestDB(t)
	cascade := NewCascadeRepository(db)

	post := &domain.Post{AuthorID: 1, Content: "check this out", LinkURL: "https://example.com", Published: true}
	assert.NoError(t, db.Create(post).Error)

	top := &domain.Comment{TargetType: domain.TargetPost, TargetID: post.ID, AuthorID: 2, Content: "first"}
	assert.NoError(t, db.Create(top).Error)
	reply := &domain.Comment{TargetType: domain.TargetPost, TargetID: post.ID, AuthorID: 3, ParentID: &top.ID, Content: "second"}
	assert.NoError(t, db.Create(reply).Error)

	assert.NoError(t, db.Create(&domain.Like{UserID: 2, TargetType: domain.TargetPost, TargetID: post.ID}).Error)
	assert.NoError(t, db.Create(&domain.Like{UserID: 3, TargetType: domain.TargetComment, TargetID: top.ID}).Error)
	assert.NoError(t, db.Create(&domain.Like{UserID: 1, TargetType: domain.TargetComment, TargetID: reply.ID}).Error)
	assert.NoError(t, db.Create(&domain.ContentMention{TargetType: domain.TargetPost, TargetID: post.ID, Kind: domain.MentionUser, SubjectID: 4}).Error)
	assert.NoError(t, db.Create(&domain.LinkPreview{PostID: post.ID, URL: "https://example.com", Title: "Example"}).Error)

	// an unrelated post survives the cascade
	other := &domain.Post{AuthorID: 1, Content: "unrelated", Published: true}
	assert.NoError(t, db.Create(other).Error)
	assert.NoError(t, db.Create(&domain.Like{UserID: 2, TargetType: domain.TargetPost, TargetID: other.ID}).Error)

	assert.NoError(t, cascade.DeleteContent(domain.TargetPost, post.ID))

	assert.Equal(t, int64(0), countWhere(t, db, &domain.Post{}, "id = ?", post.ID))
	assert.Equal(t, int64(0), countWhere(t, db, &domain.Comment{}, "target_type = ? AND target_id = ?", domain.TargetPost, post.ID))
	assert.Equal(t, int64(0), countWhere(t, db, &domain.Like{}, "target_type = ? AND target_id = ?", domain.TargetPost, post.ID))
	assert.Equal(t, int64(0), countWhere(t, db, &domain.Like{}, "target_type = ? AND target_id IN ?", domain.TargetComment, []uint{top.ID, reply.ID}))
	assert.Equal(t, int64(0), countWhere(t, db, &domain.ContentMention{}, "target_type = ? AND target_id = ?", domain.TargetPost, post.ID))
	assert.Equal(t, int64(0), countWhere(t, db, &domain.LinkPreview{}, "post_id = ?", post.ID))

	assert.Equal(t, int64(1), countWhere(t, db, &domain.Post{}, "id = ?", other.ID))
	assert.Equal(t, int64(1), countWhere(t, db, &domain.Like{}, "target_type = ? AND target_id = ?", domain.TargetPost, other.ID))
}

func TestCascadeRepository_DeleteArticleRemovesRevisionsAndJoins(t *testing.T) {
	db := setupTestDB(t)
	cascade := NewCascadeRepository(db)

	article := &domain.Article{AuthorID: 1, Title: "Retrospective", Slug: "retrospective", Content: "body", Published: true}
	assert.NoError(t, db.Create(article).Error)
	assert.NoError(t, db.Create(&domain.ArticleRevision{ArticleID: article.ID, Title: "Retrospective", Content: "old body"}).Error)
	assert.NoError(t, db.Create(&domain.ArticleGame{ArticleID: article.ID, GameID: 7}).Error)
	assert.NoError(t, db.Create(&domain.Comment{TargetType: domain.TargetArticle, TargetID: article.ID, AuthorID: 2, Content: "good read"}).Error)
	assert.NoError(t, db.Create(&domain.Like{UserID: 2, TargetType: domain.TargetArticle, TargetID: article.ID}).Error)

	assert.NoError(t, cascade.DeleteContent(domain.TargetArticle, article.ID))

	assert.Equal(t, int64(0), countWhere(t, db, &domain.Article{}, "id = ?", article.ID))
	assert.Equal(t, int64(0), countWhere(t, db, &domain.ArticleRevision{}, "article_id = ?", article.ID))
	assert.Equal(t, int64(0), countWhere(t, db, &domain.ArticleGame{}, "article_id = ?", article.ID))
	assert.Equal(t, int64(0), countWhere(t, db, &domain.Comment{}, "target_type = ? AND target_id = ?", domain.TargetArticle, article.ID))
	assert.Equal(t, int64(0), countWhere(t, db, &domain.Like{}, "target_type = ? AND target_id = ?", domain.TargetArticle, article.ID))
}

func TestCascadeRepository_DeleteReview(t *testing.T) {
	db := setupTestDB(t)
	cascade := NewCascadeRepository(db)

	review := &domain.Review{AuthorID: 1, GameID: 3, Rating: 4, Content: "solid", Published: true}
	assert.NoError(t, db.Create(review).Error)
	assert.NoError(t, db.Create(&domain.Like{UserID: 2, TargetType: domain.TargetReview, TargetID: review.ID}).Error)

	assert.NoError(t, cascade.DeleteContent(domain.TargetReview, review.ID))

	assert.Equal(t, int64(0), countWhere(t, db, &domain.Review{}, "id = ?", review.ID))
	assert.Equal(t, int64(0), countWhere(t, db, &domain.Like{}, "target_type = ? AND target_id = ?", domain.TargetReview, review.ID))
}
