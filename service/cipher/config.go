package cipher

import "fmt"

// Cost limits applied to both sealing parameters and envelope headers, so an
// envelope can never make Open allocate or compute more than these bounds.
const (
	MaxLogN   = 20
	MaxMemory = 256 << 20 // bytes used by scrypt: 128 * r * N
	MaxRP     = 32
	MaxWork   = 1 << 22 // r * p * N
)

// Config holds scrypt cost parameters used when sealing.
type Config struct {
	LogN uint8 `json:"logN" yaml:"logN"`
	R    uint8 `json:"r" yaml:"r"`
	P    uint8 `json:"p" yaml:"p"`
}

// DefaultConfig returns the recommended interactive scrypt parameters (N=2^15, r=8, p=1).
func DefaultConfig() Config {
	return Config{LogN: 15, R: 8, P: 1}
}

// Validate returns an error describing invalid settings or nil.
func (c Config) Validate() error {
	if c.LogN < 10 {
		return fmt.Errorf("cipher.logN must be >= 10, got %d", c.LogN)
	}
	if c.R == 0 {
		return fmt.Errorf("cipher.r must be > 0")
	}
	if c.P == 0 {
		return fmt.Errorf("cipher.p must be > 0")
	}
	return c.checkLimits()
}

func (c Config) checkLimits() error {
	if c.LogN > MaxLogN {
		return fmt.Errorf("cipher.logN %d exceeds %d", c.LogN, MaxLogN)
	}
	n := uint64(1) << c.LogN
	r, p := uint64(c.R), uint64(c.P)
	if memory := 128 * r * n; memory > MaxMemory {
		return fmt.Errorf("cipher parameters need %d MiB, limit is %d MiB", memory>>20, MaxMemory>>20)
	}
	if r*p > MaxRP {
		return fmt.Errorf("cipher.r * cipher.p %d exceeds %d", r*p, MaxRP)
	}
	if work := r * p * n; work > MaxWork {
		return fmt.Errorf("cipher work factor %d exceeds %d", work, MaxWork)
	}
	return nil
}
