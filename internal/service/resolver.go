package service

import (
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/repository"
)

// OwnerResolver maps a (kind, id) target to the owning user. Returns 0
// when the target no longer exists; callers treat that as "no
// notification", not as an error.
type OwnerResolver interface {
	ResolveOwner(targetType domain.TargetType, targetID uint) (uint, error)
}

type ownerResolver struct {
	posts    *repository.PostRepository
	articles *repository.ArticleRepository
	reviews  *repository.ReviewRepository
	comments *repository.CommentRepository
}

// NewOwnerResolver creates the resolver used by the like and comment
// fan-out paths
func NewOwnerResolver(
	posts *repository.PostRepository,
	articles *repository.ArticleRepository,
	reviews *repository.ReviewRepository,
	comments *repository.CommentRepository,
) OwnerResolver {
	return &ownerResolver{
		posts:    posts,
		articles: articles,
		reviews:  reviews,
		comments: comments,
	}
}

func (r *ownerResolver) ResolveOwner(targetType domain.TargetType, targetID uint) (uint, error) {
	switch targetType {
	case domain.TargetPost:
		post, err := r.posts.FindByID(targetID)
		if err != nil || post == nil {
			return 0, err
		}
		return post.AuthorID, nil
	case domain.TargetArticle:
		article, err := r.articles.FindByID(targetID)
		if err != nil || article == nil {
			return 0, err
		}
		return article.AuthorID, nil
	case domain.TargetReview:
		review, err := r.reviews.FindByID(targetID)
		if err != nil || review == nil {
			return 0, err
		}
		return review.AuthorID, nil
	case domain.TargetComment:
		comment, err := r.comments.FindByID(targetID)
		if err != nil || comment == nil {
			return 0, err
		}
		return comment.AuthorID, nil
	}
	return 0, nil
}
