package recrypt

import (
	"context"
	"fmt"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/recrypt/service/cipher"
	"github.com/viant/recrypt/service/reencrypt"
	"gopkg.in/yaml.v3"
)

// Config is a serialisable representation of the service configuration. It can
// be populated from YAML or JSON. The zero-value of nested sections inherits
// package defaults.
type Config struct {
	IDPrefix string        `json:"idPrefix" yaml:"idPrefix"`
	Cipher   cipher.Config `json:"cipher" yaml:"cipher"`
	Results  ResultsConfig `json:"results" yaml:"results"`
	Tracing  TracingConfig `json:"tracing" yaml:"tracing"`
}

// ResultsConfig selects the result store; an empty URL keeps results in memory.
type ResultsConfig struct {
	URL string `json:"url,omitempty" yaml:"url,omitempty"`
}

// TracingConfig enables the OpenTelemetry stdout exporter.
type TracingConfig struct {
	Enabled    bool   `json:"enabled" yaml:"enabled"`
	OutputFile string `json:"outputFile,omitempty" yaml:"outputFile,omitempty"`
}

// DefaultConfig returns a Config populated with package defaults.
func DefaultConfig() *Config {
	return &Config{
		IDPrefix: reencrypt.DefaultIDPrefix,
		Cipher:   cipher.DefaultConfig(),
	}
}

// Validate returns an error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if err := c.Cipher.Validate(); err != nil {
		return err
	}
	if c.Tracing.OutputFile != "" && !c.Tracing.Enabled {
		return fmt.Errorf("tracing.outputFile requires tracing.enabled")
	}
	return nil
}

// LoadConfig reads a YAML (or JSON) document from any afs URL on top of
// DefaultConfig and validates it.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	URL = url.Normalize(URL, file.Scheme)
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", URL, err)
	}
	cfg := DefaultConfig()
	if err = yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", URL, err)
	}
	return cfg, nil
}
