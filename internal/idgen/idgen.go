package idgen

import "github.com/google/uuid"

// New returns a new globally unique identifier as string. It is implemented
// as a thin wrapper so tests can stub it.

var NewFunc = func() string { return uuid.New().String() }

func New() string { return NewFunc() }

// Generator produces identifiers made of a fixed prefix followed by a unique
// suffix. It holds no mutable state and is safe for concurrent use.
type Generator struct {
	prefix string
}

// NewGenerator returns a generator for the supplied prefix. An empty prefix is
// allowed; identifiers then consist of the suffix alone.
func NewGenerator(prefix string) *Generator {
	return &Generator{prefix: prefix}
}

// Prefix returns the configured prefix.
func (g *Generator) Prefix() string {
	return g.prefix
}

// Generate returns prefix + unique suffix. The suffix is never empty.
func (g *Generator) Generate() string {
	suffix := New()
	if suffix == "" {
		// a stub returning "" must not produce a bare prefix
		suffix = uuid.New().String()
	}
	return g.prefix + suffix
}
