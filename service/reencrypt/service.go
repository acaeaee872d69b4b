package reencrypt

import (
	"bytes"
	"context"
	"fmt"
	"path"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/recrypt/internal/clock"
	"github.com/viant/recrypt/internal/idgen"
	"github.com/viant/recrypt/model/job"
	"github.com/viant/recrypt/service/cipher"
	"github.com/viant/recrypt/service/dao"
	"github.com/viant/recrypt/service/dao/result/memory"
	"github.com/viant/recrypt/service/secret"
	"github.com/viant/recrypt/tracing"
	"go.uber.org/zap"
)

// DefaultIDPrefix prefixes generated job ids.
const DefaultIDPrefix = "job-"

// Service runs re-encryption jobs.
type Service struct {
	fs       afs.Service
	cipher   *cipher.Service
	resolver *secret.Resolver
	results  dao.Service[string, job.Result]
	ids      *idgen.Generator
	logger   *zap.Logger
}

// New creates a job runner; unset collaborators get defaults (local afs,
// default cipher parameters, in-memory result store, "job-" ids, no-op logger).
func New(options ...Option) *Service {
	ret := &Service{}
	for _, option := range options {
		option(ret)
	}
	if ret.fs == nil {
		ret.fs = afs.New()
	}
	if ret.cipher == nil {
		ret.cipher = cipher.New(cipher.DefaultConfig())
	}
	if ret.resolver == nil {
		ret.resolver = secret.New()
	}
	if ret.results == nil {
		ret.results = memory.New()
	}
	if ret.ids == nil {
		ret.ids = idgen.NewGenerator(DefaultIDPrefix)
	}
	if ret.logger == nil {
		ret.logger = zap.NewNop()
	}
	return ret
}

// Results returns the result store.
func (s *Service) Results() dao.Service[string, job.Result] {
	return s.results
}

// Run re-encrypts request.SourceURL from InputPassword to OutputPassword and
// writes the result to request.Destination(). It never returns an error: every
// failure is reported through the returned result.
func (s *Service) Run(ctx context.Context, request *job.Request) *job.Result {
	result := s.newResult(request)
	ctx, span := tracing.StartSpan(ctx, "reencrypt", "INTERNAL")
	span.WithAttributes(map[string]string{"job.id": result.ID, "job.source": result.SourceURL})

	err := s.reencrypt(ctx, request, result)
	return s.complete(ctx, span, result, err)
}

// Seal encrypts the plain file at sourceURL under password and writes the
// envelope to destURL (sourceURL when empty). Failure semantics match Run.
func (s *Service) Seal(ctx context.Context, sourceURL, destURL, password string) *job.Result {
	request := &job.Request{SourceURL: sourceURL, DestURL: destURL, OutputPassword: password}
	result := s.newResult(request)
	ctx, span := tracing.StartSpan(ctx, "seal", "INTERNAL")
	span.WithAttributes(map[string]string{"job.id": result.ID, "job.source": result.SourceURL})

	err := s.seal(ctx, request, result)
	return s.complete(ctx, span, result, err)
}

func (s *Service) newResult(request *job.Request) *job.Result {
	result := &job.Result{StartedAt: clock.Now()}
	if request != nil {
		result.ID = request.ID
		result.SourceURL = request.SourceURL
		result.DestURL = request.Destination()
	}
	if result.ID == "" {
		result.ID = s.ids.Generate()
	}
	return result
}

func (s *Service) complete(ctx context.Context, span *tracing.Span, result *job.Result, err error) *job.Result {
	if err != nil {
		result.Fail(err)
	} else {
		result.Status = job.StatusSuccess
	}
	result.CompletedAt = clock.Now()
	span.WithAttributes(map[string]string{"job.status": string(result.Status)})
	tracing.EndSpan(span, err)

	if saveErr := s.results.Save(ctx, result); saveErr != nil {
		s.logger.Warn("failed to persist job result", zap.String("job", result.ID), zap.Error(saveErr))
	}
	fields := []zap.Field{
		zap.String("job", result.ID),
		zap.String("status", string(result.Status)),
		zap.String("source", result.SourceURL),
		zap.String("dest", result.DestURL),
		zap.Duration("elapsed", result.Elapsed()),
	}
	if err != nil {
		s.logger.Error("job failed", append(fields, zap.Error(err))...)
	} else {
		s.logger.Info("job completed", append(fields, zap.Int("bytes", result.Bytes))...)
	}
	return result.Clone()
}

func (s *Service) reencrypt(ctx context.Context, request *job.Request, result *job.Result) error {
	if err := request.Validate(); err != nil {
		return err
	}
	inputPassword, err := s.resolver.Resolve(ctx, request.InputPassword)
	if err != nil {
		return fmt.Errorf("input password: %w", err)
	}
	outputPassword, err := s.resolver.Resolve(ctx, request.OutputPassword)
	if err != nil {
		return fmt.Errorf("output password: %w", err)
	}

	sourceURL := url.Normalize(request.SourceURL, file.Scheme)
	destURL := url.Normalize(request.Destination(), file.Scheme)
	envelope, err := s.download(ctx, sourceURL)
	if err != nil {
		return err
	}
	plaintext, err := s.cipher.Open(inputPassword, envelope)
	if err != nil {
		return fmt.Errorf("failed to decrypt %s: %w", request.SourceURL, err)
	}
	sealed, err := s.cipher.Seal(outputPassword, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", request.SourceURL, err)
	}
	if err = s.replace(ctx, destURL, result.ID, sealed); err != nil {
		return err
	}
	result.Bytes = len(plaintext)
	return nil
}

func (s *Service) seal(ctx context.Context, request *job.Request, result *job.Result) error {
	if request.SourceURL == "" {
		return job.ErrEmptySource
	}
	if request.OutputPassword == "" {
		return job.ErrEmptyPassword
	}
	password, err := s.resolver.Resolve(ctx, request.OutputPassword)
	if err != nil {
		return fmt.Errorf("password: %w", err)
	}
	sourceURL := url.Normalize(request.SourceURL, file.Scheme)
	destURL := url.Normalize(request.Destination(), file.Scheme)
	plaintext, err := s.download(ctx, sourceURL)
	if err != nil {
		return err
	}
	if cipher.IsEnvelope(plaintext) {
		return fmt.Errorf("%s is already encrypted", request.SourceURL)
	}
	sealed, err := s.cipher.Seal(password, plaintext)
	if err != nil {
		return fmt.Errorf("failed to encrypt %s: %w", request.SourceURL, err)
	}
	if err = s.replace(ctx, destURL, result.ID, sealed); err != nil {
		return err
	}
	result.Bytes = len(plaintext)
	return nil
}

func (s *Service) download(ctx context.Context, URL string) ([]byte, error) {
	exists, err := s.fs.Exists(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to check if %s exists: %w", URL, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, URL)
	}
	object, err := s.fs.Object(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", URL, err)
	}
	if object.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrDirectory, URL)
	}
	data, err := s.fs.Download(ctx, object)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", URL, err)
	}
	return data, nil
}

// replace writes data next to destURL and moves it into place, so the
// destination is either left untouched or fully replaced.
func (s *Service) replace(ctx context.Context, destURL, jobID string, data []byte) error {
	tempURL := destURL + "." + path.Base(jobID) + ".tmp"
	if err := s.fs.Upload(ctx, tempURL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		_ = s.fs.Delete(ctx, tempURL)
		return fmt.Errorf("failed to write %s: %w", tempURL, err)
	}
	if err := s.fs.Move(ctx, tempURL, destURL); err != nil {
		_ = s.fs.Delete(ctx, tempURL)
		return fmt.Errorf("failed to replace %s: %w", destURL, err)
	}
	return nil
}
