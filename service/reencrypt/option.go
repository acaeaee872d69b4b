package reencrypt

import (
	"github.com/viant/afs"
	"github.com/viant/recrypt/internal/idgen"
	"github.com/viant/recrypt/model/job"
	"github.com/viant/recrypt/service/cipher"
	"github.com/viant/recrypt/service/dao"
	"github.com/viant/recrypt/service/secret"
	"go.uber.org/zap"
)

// Option configures the Service
type Option func(s *Service)

// WithFS sets the storage service used to read and write files
func WithFS(fs afs.Service) Option {
	return func(s *Service) { s.fs = fs }
}

// WithCipher sets the envelope cipher
func WithCipher(c *cipher.Service) Option {
	return func(s *Service) { s.cipher = c }
}

// WithResolver sets the password resolver
func WithResolver(r *secret.Resolver) Option {
	return func(s *Service) { s.resolver = r }
}

// WithResultDAO sets the store that receives every result
func WithResultDAO(d dao.Service[string, job.Result]) Option {
	return func(s *Service) { s.results = d }
}

// WithIDGenerator sets the job id generator
func WithIDGenerator(g *idgen.Generator) Option {
	return func(s *Service) { s.ids = g }
}

// WithLogger sets the logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}
