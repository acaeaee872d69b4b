package recrypt

import (
	"github.com/viant/afs"
	"github.com/viant/recrypt/model/job"
	"github.com/viant/recrypt/service/dao"
	"go.uber.org/zap"
)

// Option configures the Service
type Option func(s *Service)

// WithConfig sets the configuration; nil keeps DefaultConfig
func WithConfig(cfg *Config) Option {
	return func(s *Service) {
		if cfg != nil {
			s.config = cfg
		}
	}
}

// WithLogger sets the structured logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFS sets the storage service used for job files
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithResultDAO overrides the result store selected by Config.Results
func WithResultDAO(d dao.Service[string, job.Result]) Option {
	return func(s *Service) {
		s.results = d
	}
}
