package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/viant/recrypt/model/job"
	"github.com/viant/recrypt/service/dao"
	"github.com/viant/recrypt/service/dao/criteria"
)

// Service implements an in-memory result storage.  All operations are
// thread-safe and return **copies** of the underlying objects so callers can
// not mutate stored results.
type Service struct {
	results map[string]*job.Result
	mux     sync.RWMutex
}

// Compile-time check that Service implements the generic DAO interface.
var _ dao.Service[string, job.Result] = (*Service)(nil)

// Save persists (a clone of) the supplied result.
func (s *Service) Save(_ context.Context, r *job.Result) error {
	if r == nil {
		return dao.ErrNilEntity
	}
	if r.ID == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	s.results[r.ID] = r.Clone()
	return nil
}

// Load retrieves a copy of the result or dao.ErrNotFound.
func (s *Service) Load(_ context.Context, id string) (*job.Result, error) {
	if id == "" {
		return nil, dao.ErrInvalidID
	}

	s.mux.RLock()
	r, ok := s.results[id]
	s.mux.RUnlock()

	if !ok {
		return nil, dao.ErrNotFound
	}
	return r.Clone(), nil
}

// Delete removes a result.
func (s *Service) Delete(_ context.Context, id string) error {
	if id == "" {
		return dao.ErrInvalidID
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	if _, ok := s.results[id]; !ok {
		return dao.ErrNotFound
	}
	delete(s.results, id)
	return nil
}

// List returns copies of stored results ordered by start time, optionally
// filtered by dao.StatusParameter.
func (s *Service) List(_ context.Context, parameters ...*dao.Parameter) ([]*job.Result, error) {
	s.mux.RLock()
	defer s.mux.RUnlock()

	out := make([]*job.Result, 0, len(s.results))
	for _, r := range s.results {
		if !criteria.FilterByStatus(string(r.Status), parameters) {
			continue
		}
		out = append(out, r.Clone())
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartedAt.Before(out[j].StartedAt) })
	return out, nil
}

// New constructor.
func New() *Service {
	return &Service{results: map[string]*job.Result{}}
}
