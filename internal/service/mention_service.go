package service

import (
	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
)

// MentionRepo is the persistence surface the mention service needs
type MentionRepo interface {
	ListByTarget(targetType domain.TargetType, targetID uint) ([]domain.ContentMention, error)
	Replace(targetType domain.TargetType, targetID uint, mentions []domain.Mention) error
}

// MentionService stores a content item's mention list on every save
// and fans out mention notifications for newly-added user mentions,
// but only when the item is published at save time. Unpublished saves
// still record the list, so the first publish only notifies mentions
// added in that save.
type MentionService struct {
	repo     MentionRepo
	notifier Notifier
}

// NewMentionService creates a new MentionService
func NewMentionService(repo MentionRepo, notifier Notifier) *MentionService {
	return &MentionService{repo: repo, notifier: notifier}
}

// Apply diffs the save's mention list against the stored one and
// replaces it. Each newly-added user mention produces one mention
// notification when published is true; game mentions never notify.
func (s *MentionService) Apply(actorID uint, targetType domain.TargetType, targetID uint, mentions []domain.Mention, published bool) error {
	for _, m := range mentions {
		if !m.Valid() {
			return common.ErrInvalidInput
		}
	}

	previous, err := s.repo.ListByTarget(targetType, targetID)
	if err != nil {
		return err
	}
	known := make(map[uint]bool, len(previous))
	for _, m := range previous {
		if m.Kind == domain.MentionUser {
			known[m.SubjectID] = true
		}
	}

	if published {
		seen := make(map[uint]bool)
		for _, m := range mentions {
			if m.Kind != domain.MentionUser || known[m.SubjectID] || seen[m.SubjectID] {
				continue
			}
			seen[m.SubjectID] = true
			if err := s.notifier.Notify(m.SubjectID, actorID, domain.NotifyMention, targetType, targetID); err != nil {
				return err
			}
		}
	}

	return s.repo.Replace(targetType, targetID, mentions)
}
