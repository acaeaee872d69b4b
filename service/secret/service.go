package secret

import (
	"context"
	"fmt"
	"strings"

	"github.com/viant/scy"
)

const (
	// Prefix marks a password argument as a scy secret reference.
	Prefix = "scy:"
	// DefaultKey is used when a reference does not name an encryption key.
	DefaultKey = "blowfish://default"

	keySeparator = "|"
)

// Resolver turns password arguments into passwords. Literal values are
// returned unchanged; values of the form scy:<URL>[|<key>] are loaded and
// decrypted with viant/scy.
type Resolver struct {
	scyService *scy.Service
}

// New creates a resolver
func New() *Resolver {
	return &Resolver{
		scyService: scy.New(),
	}
}

// IsReference reports whether value points to a scy secret.
func IsReference(value string) bool {
	return strings.HasPrefix(value, Prefix)
}

// ParseReference splits a scy:<URL>[|<key>] reference into URL and key.
func ParseReference(value string) (URL string, key string, err error) {
	if !IsReference(value) {
		return "", "", fmt.Errorf("not a secret reference: missing %q prefix", Prefix)
	}
	ref := strings.TrimPrefix(value, Prefix)
	URL, key = ref, DefaultKey
	if index := strings.LastIndex(ref, keySeparator); index != -1 {
		URL, key = ref[:index], ref[index+1:]
	}
	if URL == "" {
		return "", "", fmt.Errorf("secret reference has empty URL")
	}
	if key == "" {
		key = DefaultKey
	}
	return URL, key, nil
}

// Resolve returns the password represented by value.
func (r *Resolver) Resolve(ctx context.Context, value string) (string, error) {
	if !IsReference(value) {
		return value, nil
	}
	URL, key, err := ParseReference(value)
	if err != nil {
		return "", err
	}
	resource := scy.NewResource(nil, URL, key)
	secret, err := r.scyService.Load(ctx, resource)
	if err != nil {
		return "", fmt.Errorf("failed to load secret from %s: %w", URL, err)
	}
	password := strings.TrimRight(secret.String(), "\r\n")
	if password == "" {
		return "", fmt.Errorf("secret %s holds an empty password", URL)
	}
	return password, nil
}

// Secure encrypts password with key and stores it at URL so that it can later
// be referenced as scy:<URL>|<key>.
func (r *Resolver) Secure(ctx context.Context, URL, key, password string) error {
	if password == "" {
		return fmt.Errorf("password is empty")
	}
	if key == "" {
		key = DefaultKey
	}
	resource := scy.NewResource(nil, URL, key)
	secret := scy.NewSecret(password, resource)
	if err := r.scyService.Store(ctx, secret); err != nil {
		return fmt.Errorf("failed to store encrypted secret: %w", err)
	}
	return nil
}

// Reference builds the scy:<URL>|<key> form for URL and key.
func Reference(URL, key string) string {
	if key == "" {
		key = DefaultKey
	}
	return Prefix + URL + keySeparator + key
}
