package service

import (
	"context"
	"regexp"

	"github.com/thinkribbon/backend/internal/common"
	"github.com/thinkribbon/backend/internal/domain"
	"github.com/thinkribbon/backend/internal/filestore"
	"github.com/thinkribbon/backend/pkg/logger"
)

// fileKeyPattern pulls the provider file key out of a served URL,
// e.g. https://utfs.io/f/abc123/avatar.png -> abc123
var fileKeyPattern = regexp.MustCompile(`/f/([^/?]+)`)

// StorageLister is the provider API surface the orphan sweep needs
type StorageLister interface {
	ListFiles(ctx context.Context) ([]filestore.File, error)
	DeleteFiles(ctx context.Context, keys []string) error
}

// UploadRepo is the persistence surface the upload service needs
type UploadRepo interface {
	Create(upload *domain.Upload) error
	AllFileKeys() ([]string, error)
	DeleteByFileKey(key string) error
}

// UploadService records completed uploads and sweeps the provider for
// files no row points at
type UploadService struct {
	repo    UploadRepo
	storage StorageLister
}

// NewUploadService creates a new UploadService
func NewUploadService(repo UploadRepo, storage StorageLister) *UploadService {
	return &UploadService{repo: repo, storage: storage}
}

// ExtractFileKey returns the provider key embedded in an upload URL,
// empty when the URL carries none
func ExtractFileKey(url string) string {
	m := fileKeyPattern.FindStringSubmatch(url)
	if m == nil {
		return ""
	}
	return m[1]
}

// Record stores a row for a completed upload. URLs without a
// recognizable file key are rejected.
func (s *UploadService) Record(actor *domain.User, req *domain.RecordUploadRequest) (*domain.Upload, error) {
	if actor == nil {
		return nil, common.ErrUnauthorized
	}
	key := ExtractFileKey(req.URL)
	if key == "" {
		return nil, common.ErrInvalidInput
	}

	upload := &domain.Upload{
		UserID:  actor.ID,
		URL:     req.URL,
		FileKey: key,
	}
	if err := s.repo.Create(upload); err != nil {
		return nil, err
	}
	return upload, nil
}

// SweepOrphans lists the provider's files, diffs them against recorded
// keys and deletes those nothing references. Returns the number of
// files removed.
func (s *UploadService) SweepOrphans(ctx context.Context) (int, error) {
	recorded, err := s.repo.AllFileKeys()
	if err != nil {
		return 0, err
	}
	known := make(map[string]bool, len(recorded))
	for _, k := range recorded {
		known[k] = true
	}

	files, err := s.storage.ListFiles(ctx)
	if err != nil {
		return 0, err
	}

	var orphans []string
	for _, f := range files {
		if !known[f.Key] {
			orphans = append(orphans, f.Key)
		}
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	if err := s.storage.DeleteFiles(ctx, orphans); err != nil {
		return 0, err
	}
	logger.Get().Info().Int("deleted", len(orphans)).Int("listed", len(files)).Msg("orphaned upload sweep finished")
	return len(orphans), nil
}
