package secret

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReference(t *testing.T) {
	testCases := []struct {
		name      string
		value     string
		expectURL string
		expectKey string
		expectErr bool
	}{
		{name: "url and key", value: "scy:/tmp/in.enc|blowfish://default", expectURL: "/tmp/in.enc", expectKey: "blowfish://default"},
		{name: "url only", value: "scy:file:///tmp/in.enc", expectURL: "file:///tmp/in.enc", expectKey: DefaultKey},
		{name: "empty key", value: "scy:/tmp/in.enc|", expectURL: "/tmp/in.enc", expectKey: DefaultKey},
		{name: "empty url", value: "scy:|blowfish://default", expectErr: true},
		{name: "literal", value: "password", expectErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			URL, key, err := ParseReference(tc.value)
			if tc.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectURL, URL)
			assert.Equal(t, tc.expectKey, key)
		})
	}
}

func TestResolver_Literal(t *testing.T) {
	resolver := New()
	actual, err := resolver.Resolve(context.Background(), "inputPassword")
	require.NoError(t, err)
	assert.Equal(t, "inputPassword", actual)
}

func TestResolver_SecureResolve(t *testing.T) {
	ctx := context.Background()
	resolver := New()
	URL := "file://" + filepath.Join(t.TempDir(), "input.enc")

	require.NoError(t, resolver.Secure(ctx, URL, DefaultKey, "s3cr3t"))

	actual, err := resolver.Resolve(ctx, Reference(URL, DefaultKey))
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", actual)
}

func TestResolver_MissingSecret(t *testing.T) {
	resolver := New()
	URL := "file://" + filepath.Join(t.TempDir(), "missing.enc")
	_, err := resolver.Resolve(context.Background(), Reference(URL, ""))
	assert.Error(t, err)
}

func TestResolver_SecureEmpty(t *testing.T) {
	assert.Error(t, New().Secure(context.Background(), "mem://localhost/p.enc", "", ""))
}
