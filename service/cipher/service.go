package cipher

import (
	"bytes"
	gocipher "crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"
)

const (
	magic      = "RCRY"
	version    = byte(1)
	saltSize   = 16
	keySize    = chacha20poly1305.KeySize
	nonceSize  = chacha20poly1305.NonceSizeX
	headerSize = len(magic) + 4 + saltSize + nonceSize
)

// Service seals and opens envelopes. It holds no mutable state.
type Service struct {
	config Config
	random io.Reader
}

// New creates a cipher service. Invalid configs fall back to DefaultConfig.
func New(config Config) *Service {
	if config.Validate() != nil {
		config = DefaultConfig()
	}
	return &Service{config: config, random: rand.Reader}
}

// Config returns the parameters used for sealing.
func (s *Service) Config() Config {
	return s.config
}

// Seal encrypts plaintext under password with a fresh salt and nonce.
func (s *Service) Seal(password string, plaintext []byte) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	header := make([]byte, headerSize)
	copy(header, magic)
	offset := len(magic)
	header[offset] = version
	header[offset+1] = s.config.LogN
	header[offset+2] = s.config.R
	header[offset+3] = s.config.P
	offset += 4
	if _, err := io.ReadFull(s.random, header[offset:]); err != nil {
		return nil, fmt.Errorf("failed to generate salt and nonce: %w", err)
	}
	salt := header[offset : offset+saltSize]
	nonce := header[offset+saltSize:]

	aead, err := newAEAD(password, salt, s.config)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, headerSize+len(plaintext)+aead.Overhead())
	out = append(out, header...)
	return aead.Seal(out, nonce, plaintext, header), nil
}

// Open decrypts an envelope produced by Seal.
func (s *Service) Open(password string, envelope []byte) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	header, err := parseHeader(envelope)
	if err != nil {
		return nil, err
	}
	aead, err := newAEAD(password, header.salt, header.config)
	if err != nil {
		return nil, err
	}
	plaintext, err := aead.Open(nil, header.nonce, envelope[headerSize:], envelope[:headerSize])
	if err != nil {
		return nil, ErrAuthentication
	}
	return plaintext, nil
}

// IsEnvelope reports whether data starts with the envelope magic.
func IsEnvelope(data []byte) bool {
	return bytes.HasPrefix(data, []byte(magic))
}

type header struct {
	config Config
	salt   []byte
	nonce  []byte
}

func parseHeader(envelope []byte) (*header, error) {
	if !IsEnvelope(envelope) {
		return nil, ErrInvalidEnvelope
	}
	if len(envelope) < headerSize+chacha20poly1305.Overhead {
		return nil, fmt.Errorf("%w: truncated (%d bytes)", ErrInvalidEnvelope, len(envelope))
	}
	offset := len(magic)
	if envelope[offset] != version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, envelope[offset])
	}
	config := Config{LogN: envelope[offset+1], R: envelope[offset+2], P: envelope[offset+3]}
	// checked before any key derivation; the header is not authenticated yet
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidEnvelope, err)
	}
	offset += 4
	return &header{
		config: config,
		salt:   envelope[offset : offset+saltSize],
		nonce:  envelope[offset+saltSize : headerSize],
	}, nil
}

func newAEAD(password string, salt []byte, config Config) (gocipher.AEAD, error) {
	key, err := scrypt.Key([]byte(password), salt, 1<<config.LogN, int(config.R), int(config.P), keySize)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}
	return aead, nil
}
