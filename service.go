package recrypt

import (
	"context"

	"github.com/viant/afs"
	"github.com/viant/recrypt/internal/idgen"
	"github.com/viant/recrypt/model/job"
	"github.com/viant/recrypt/service/cipher"
	"github.com/viant/recrypt/service/dao"
	rfs "github.com/viant/recrypt/service/dao/result/fs"
	rmemory "github.com/viant/recrypt/service/dao/result/memory"
	"github.com/viant/recrypt/service/reencrypt"
	"github.com/viant/recrypt/service/secret"
	"github.com/viant/recrypt/tracing"
	"go.uber.org/zap"
)

const (
	// ServiceName is reported to tracing back-ends.
	ServiceName = "recrypt"
	// Version of the service.
	Version = "0.1.0"
)

// Service is the façade wiring the job runner with its storage, result store,
// id generator and tracing.
type Service struct {
	config    *Config
	logger    *zap.Logger
	fs        afs.Service
	results   dao.Service[string, job.Result]
	generator *idgen.Generator
	runner    *reencrypt.Service
}

// New creates a service from options. It fails only when the configuration is
// invalid or the configured result store or trace output can not be created.
func New(ctx context.Context, options ...Option) (*Service, error) {
	ret := &Service{config: DefaultConfig()}
	for _, option := range options {
		option(ret)
	}
	if err := ret.init(ctx); err != nil {
		return nil, err
	}
	return ret, nil
}

func (s *Service) init(ctx context.Context) error {
	if err := s.config.Validate(); err != nil {
		return err
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.results == nil {
		if s.config.Results.URL == "" {
			s.results = rmemory.New()
		} else {
			store, err := rfs.New(ctx, s.config.Results.URL, s.logger)
			if err != nil {
				return err
			}
			s.results = store
		}
	}
	if s.config.Tracing.Enabled {
		if err := tracing.Init(ServiceName, Version, s.config.Tracing.OutputFile); err != nil {
			return err
		}
	}
	s.generator = idgen.NewGenerator(s.config.IDPrefix)
	s.runner = reencrypt.New(
		reencrypt.WithFS(s.fs),
		reencrypt.WithCipher(cipher.New(s.config.Cipher)),
		reencrypt.WithResolver(secret.New()),
		reencrypt.WithResultDAO(s.results),
		reencrypt.WithIDGenerator(s.generator),
		reencrypt.WithLogger(s.logger),
	)
	return nil
}

// Run re-encrypts a single file; see reencrypt.Service.Run.
func (s *Service) Run(ctx context.Context, request *job.Request) *job.Result {
	return s.runner.Run(ctx, request)
}

// RunAll re-encrypts files sequentially; see reencrypt.Service.RunAll.
func (s *Service) RunAll(ctx context.Context, requests ...*job.Request) []*job.Result {
	return s.runner.RunAll(ctx, requests...)
}

// Seal encrypts a plain file; see reencrypt.Service.Seal.
func (s *Service) Seal(ctx context.Context, sourceURL, destURL, password string) *job.Result {
	return s.runner.Seal(ctx, sourceURL, destURL, password)
}

// Results returns the result store.
func (s *Service) Results() dao.Service[string, job.Result] {
	return s.results
}

// Generator returns the job id generator.
func (s *Service) Generator() *idgen.Generator {
	return s.generator
}

// Config returns the effective configuration.
func (s *Service) Config() *Config {
	return s.config
}

// Close flushes tracing output.
func (s *Service) Close(ctx context.Context) error {
	if s.config.Tracing.Enabled {
		return tracing.Shutdown(ctx)
	}
	return nil
}
