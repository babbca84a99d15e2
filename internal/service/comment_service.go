package service

import (
	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
)

// CommentRepo is the persistence surface the comment service needs
type CommentRepo interface {
	Create(comment *domain.Comment) error
	FindByID(id uint) (*domain.Comment, error)
	ListByTarget(targetType domain.TargetType, targetID uint) ([]domain.Comment, error)
	HasReplies(commentID uint) (bool, error)
	Update(comment *domain.Comment) error
	SoftDelete(id uint) error
	HardDelete(id uint) error
}

// CommentService handles comments and one-level replies
type CommentService struct {
	repo     CommentRepo
	resolver OwnerResolver
	notifier Notifier
	users    UserFinder
	likes    *engagementCounts
}

// engagementCounts is the slice of the like repo the comment list view
// needs
type engagementCounts struct {
	counts func(targetType domain.TargetType, targetIDs []uint) (map[uint]int64, error)
	liked  func(userID uint, targetType domain.TargetType, targetIDs []uint) (map[uint]bool, error)
}

// CommentLikeCounts adapts a like repository into the comment list view
func CommentLikeCounts(
	counts func(domain.TargetType, []uint) (map[uint]int64, error),
	liked func(uint, domain.TargetType, []uint) (map[uint]bool, error),
) *engagementCounts {
	return &engagementCounts{counts: counts, liked: liked}
}

// NewCommentService creates a new CommentService
func NewCommentService(repo CommentRepo, resolver OwnerResolver, notifier Notifier, users UserFinder, likes *engagementCounts) *CommentService {
	return &CommentService{repo: repo, resolver: resolver, notifier: notifier, users: users, likes: likes}
}

// Create writes a comment or reply and fans out notifications: the
// content owner gets comment_<kind>, a reply's parent author gets
// reply_comment. When the owner and the parent author are the same
// user only the reply notification fires.
func (s *CommentService) Create(actor *domain.User, req *domain.CreateCommentRequest) (*domain.Comment, error) {
	if actor == nil {
		return nil, common.ErrUnauthorized
	}
	if !req.TargetType.Commentable() || req.TargetID == 0 || req.Content == "" {
		return nil, common.ErrInvalidInput
	}

	ownerID, err := s.resolver.ResolveOwner(req.TargetType, req.TargetID)
	if err != nil {
		return nil, err
	}
	if ownerID == 0 {
		return nil, common.ErrNotFound
	}

	comment := &domain.Comment{
		TargetType: req.TargetType,
		TargetID:   req.TargetID,
		AuthorID:   actor.ID,
		Content:    req.Content,
	}

	var parentAuthorID uint
	if req.ParentID != nil {
		parent, err := s.repo.FindByID(*req.ParentID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.TargetType != req.TargetType || parent.TargetID != req.TargetID {
			return nil, common.ErrCommentNotFound
		}
		// Nesting is one level deep in storage; a reply to a reply is
		// re-parented under the top-level comment.
		parentID := parent.ID
		if parent.ParentID != nil {
			parentID = *parent.ParentID
		}
		comment.ParentID = &parentID
		parentAuthorID = parent.AuthorID
	}

	if err := s.repo.Create(comment); err != nil {
		return nil, err
	}

	if comment.ParentID != nil {
		if err := s.notifier.Notify(parentAuthorID, actor.ID, domain.NotifyReplyComment, domain.TargetComment, comment.ID); err != nil {
			return nil, err
		}
		if ownerID != parentAuthorID {
			if err := s.notifier.Notify(ownerID, actor.ID, commentNotificationType(req.TargetType), req.TargetType, req.TargetID); err != nil {
				return nil, err
			}
		}
	} else {
		if err := s.notifier.Notify(ownerID, actor.ID, commentNotificationType(req.TargetType), req.TargetType, req.TargetID); err != nil {
			return nil, err
		}
	}

	return comment, nil
}

// Update edits a comment body after the ownership check
func (s *CommentService) Update(actor *domain.User, id uint, req *domain.UpdateCommentRequest) (*domain.Comment, error) {
	comment, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if comment == nil || comment.Deleted {
		return nil, common.ErrCommentNotFound
	}
	if err := AssertOwnerOrAdmin(actor, comment.AuthorID); err != nil {
		return nil, err
	}
	comment.Content = req.Content
	if err := s.repo.Update(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Delete removes a comment: soft (a deleted marker) while replies
// exist, hard otherwise
func (s *CommentService) Delete(actor *domain.User, id uint) error {
	comment, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if comment == nil {
		return common.ErrCommentNotFound
	}
	if err := AssertOwnerOrAdmin(actor, comment.AuthorID); err != nil {
		return err
	}

	hasReplies, err := s.repo.HasReplies(id)
	if err != nil {
		return err
	}
	if hasReplies {
		return s.repo.SoftDelete(id)
	}
	return s.repo.HardDelete(id)
}

// ListByTarget returns a target's comments with replies nested one
// level under their top-level comment
func (s *CommentService) ListByTarget(viewerID uint, targetType domain.TargetType, targetID uint) ([]domain.CommentResponse, error) {
	comments, err := s.repo.ListByTarget(targetType, targetID)
	if err != nil {
		return nil, err
	}

	authorIDs := make([]uint, 0, len(comments))
	commentIDs := make([]uint, 0, len(comments))
	for _, c := range comments {
		authorIDs = append(authorIDs, c.AuthorID)
		commentIDs = append(commentIDs, c.ID)
	}
	authors, err := s.users.FindByIDs(authorIDs)
	if err != nil {
		return nil, err
	}
	likeCounts, err := s.likes.counts(domain.TargetComment, commentIDs)
	if err != nil {
		return nil, err
	}
	likedSet, err := s.likes.liked(viewerID, domain.TargetComment, commentIDs)
	if err != nil {
		return nil, err
	}

	build := func(c domain.Comment) domain.CommentResponse {
		resp := domain.CommentResponse{
			ID:        c.ID,
			Author:    authors[c.AuthorID].ToSummary(),
			ParentID:  c.ParentID,
			Deleted:   c.Deleted,
			LikeCount: likeCounts[c.ID],
			Liked:     likedSet[c.ID],
			CreatedAt: c.CreatedAt,
		}
		if !c.Deleted {
			resp.Content = c.Content
		}
		return resp
	}

	var top []domain.CommentResponse
	replies := make(map[uint][]domain.CommentResponse)
	for _, c := range comments {
		if c.ParentID == nil {
			top = append(top, build(c))
		} else {
			replies[*c.ParentID] = append(replies[*c.ParentID], build(c))
		}
	}
	for i := range top {
		top[i].Replies = replies[top[i].ID]
	}
	return top, nil
}

func commentNotificationType(targetType domain.TargetType) string {
	switch targetType {
	case domain.TargetPost:
		return domain.NotifyCommentPost
	case domain.TargetArticle:
		return domain.NotifyCommentArticle
	default:
		return domain.NotifyCommentReview
	}
}
