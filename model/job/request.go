package job

import "fmt"

// Request describes a single re-encryption job.
type Request struct {
	// ID is optional; the runner assigns a generated one when empty.
	ID string `json:"id,omitempty" yaml:"id,omitempty"`
	// SourceURL is a file path or any afs URL (file://, mem://, ...).
	SourceURL string `json:"sourceURL" yaml:"sourceURL"`
	// DestURL defaults to SourceURL (in-place re-encryption).
	DestURL string `json:"destURL,omitempty" yaml:"destURL,omitempty"`
	// InputPassword and OutputPassword are either literal passwords or
	// scy secret references (scy:<URL>[|<key>]).
	InputPassword  string `json:"-" yaml:"-"`
	OutputPassword string `json:"-" yaml:"-"`
}

// NewRequest creates an in-place re-encryption request.
func NewRequest(sourceURL, inputPassword, outputPassword string) *Request {
	return &Request{SourceURL: sourceURL, InputPassword: inputPassword, OutputPassword: outputPassword}
}

// Destination returns DestURL or SourceURL when no destination was set.
func (r *Request) Destination() string {
	if r.DestURL != "" {
		return r.DestURL
	}
	return r.SourceURL
}

// Validate checks that all mandatory fields are set.
func (r *Request) Validate() error {
	if r == nil {
		return ErrNilRequest
	}
	if r.SourceURL == "" {
		return ErrEmptySource
	}
	if r.InputPassword == "" {
		return fmt.Errorf("input %w", ErrEmptyPassword)
	}
	if r.OutputPassword == "" {
		return fmt.Errorf("output %w", ErrEmptyPassword)
	}
	return nil
}
