package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/option"
	"github.com/viant/afs/url"
	"github.com/viant/recrypt/model/job"
	"github.com/viant/recrypt/service/dao"
	"github.com/viant/recrypt/service/dao/criteria"
	"go.uber.org/zap"
)

// Service implements an afs-backed result storage: one JSON document per
// result under baseURL. Any afs scheme (file://, mem://, ...) can be used.
type Service struct {
	baseURL string
	fs      afs.Service
	logger  *zap.Logger
	mu      sync.RWMutex
}

// Ensure Service implements dao.Service
var _ dao.Service[string, job.Result] = (*Service)(nil)

// Save persists a result
func (s *Service) Save(ctx context.Context, r *job.Result) error {
	if r == nil {
		return dao.ErrNilEntity
	}
	if r.ID == "" {
		return dao.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	URL := s.resultURL(r.ID)
	if err = s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to save result to %s: %w", URL, err)
	}
	return nil
}

// Load retrieves a result
func (s *Service) Load(ctx context.Context, id string) (*job.Result, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	URL := s.resultURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check if result exists: %w", err)
	}
	if !exists {
		return nil, dao.ErrNotFound
	}

	data, err := s.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to read result file: %w", err)
	}
	var result job.Result
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal result data: %w", err)
	}
	return &result, nil
}

// Delete removes a result
func (s *Service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	URL := s.resultURL(id)
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return fmt.Errorf("failed to check if result exists: %w", err)
	}
	if !exists {
		return dao.ErrNotFound
	}
	if err := s.fs.Delete(ctx, URL); err != nil {
		return fmt.Errorf("failed to delete result file: %w", err)
	}
	return nil
}

// List returns stored results ordered by start time, optionally filtered by
// dao.StatusParameter. Unreadable documents are logged and skipped.
func (s *Service) List(ctx context.Context, parameters ...*dao.Parameter) ([]*job.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	objects, err := s.fs.List(ctx, s.baseURL, option.NewRecursive(true))
	if err != nil {
		return nil, fmt.Errorf("failed to list result files: %w", err)
	}

	var results []*job.Result
	for _, object := range objects {
		if object.IsDir() || !strings.HasSuffix(object.Name(), ".json") {
			continue
		}
		data, err := s.fs.Download(ctx, object)
		if err != nil {
			s.logger.Warn("failed to read result file", zap.String("url", object.URL()), zap.Error(err))
			continue
		}
		var result job.Result
		if err := json.Unmarshal(data, &result); err != nil {
			s.logger.Warn("failed to unmarshal result", zap.String("url", object.URL()), zap.Error(err))
			continue
		}
		if !criteria.FilterByStatus(string(result.Status), parameters) {
			continue
		}
		results = append(results, &result)
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].StartedAt.Before(results[j].StartedAt) })
	return results, nil
}

// BaseURL returns the normalised storage location.
func (s *Service) BaseURL() string {
	return s.baseURL
}

func (s *Service) resultURL(id string) string {
	return url.Join(s.baseURL, fmt.Sprintf("%s.json", path.Base(id)))
}

// New creates a result store rooted at baseURL, creating the location when
// missing. Plain paths are treated as local files.
func New(ctx context.Context, baseURL string, logger *zap.Logger) (*Service, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	baseURL = url.Normalize(baseURL, file.Scheme)

	fs := afs.New()
	exists, _ := fs.Exists(ctx, baseURL)
	if !exists {
		if err := fs.Create(ctx, baseURL, file.DefaultDirOsMode, true); err != nil {
			return nil, fmt.Errorf("failed to create result location %s: %w", baseURL, err)
		}
	}
	return &Service{
		baseURL: baseURL,
		fs:      fs,
		logger:  logger,
	}, nil
}
