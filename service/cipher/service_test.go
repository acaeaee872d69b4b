package cipher

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fast parameters keep the tests quick
func testConfig() Config {
	return Config{LogN: 10, R: 8, P: 1}
}

func TestService_SealOpen(t *testing.T) {
	testCases := []struct {
		name      string
		plaintext []byte
	}{
		{name: "text", plaintext: []byte("the quick brown fox")},
		{name: "empty", plaintext: []byte{}},
		{name: "binary", plaintext: bytes.Repeat([]byte{0, 1, 2, 255}, 4096)},
	}
	srv := New(testConfig())
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			envelope, err := srv.Seal("secret", tc.plaintext)
			require.NoError(t, err)
			assert.True(t, IsEnvelope(envelope))
			actual, err := srv.Open("secret", envelope)
			require.NoError(t, err)
			assert.Equal(t, len(tc.plaintext), len(actual))
			assert.True(t, bytes.Equal(tc.plaintext, actual))
		})
	}
}

func TestService_SealIsRandomised(t *testing.T) {
	srv := New(testConfig())
	first, err := srv.Seal("secret", []byte("data"))
	require.NoError(t, err)
	second, err := srv.Seal("secret", []byte("data"))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestService_OpenErrors(t *testing.T) {
	srv := New(testConfig())
	envelope, err := srv.Seal("secret", []byte("payload"))
	require.NoError(t, err)

	tampered := append([]byte{}, envelope...)
	tampered[len(tampered)-1] ^= 0xff

	headerTampered := append([]byte{}, envelope...)
	headerTampered[len(magic)+4] ^= 0xff // first salt byte

	wrongVersion := append([]byte{}, envelope...)
	wrongVersion[len(magic)] = 9

	withCost := func(logN, r, p byte) []byte {
		ret := append([]byte{}, envelope...)
		ret[len(magic)+1], ret[len(magic)+2], ret[len(magic)+3] = logN, r, p
		return ret
	}

	testCases := []struct {
		name     string
		password string
		data     []byte
		expect   error
	}{
		{name: "wrong password", password: "other", data: envelope, expect: ErrAuthentication},
		{name: "tampered ciphertext", password: "secret", data: tampered, expect: ErrAuthentication},
		{name: "tampered header", password: "secret", data: headerTampered, expect: ErrAuthentication},
		{name: "not an envelope", password: "secret", data: []byte("plain text file"), expect: ErrInvalidEnvelope},
		{name: "truncated", password: "secret", data: envelope[:headerSize], expect: ErrInvalidEnvelope},
		{name: "unknown version", password: "secret", data: wrongVersion, expect: ErrUnsupportedVersion},
		{name: "empty password", password: "", data: envelope, expect: ErrEmptyPassword},
		{name: "excessive logN", password: "secret", data: withCost(22, 255, 255), expect: ErrInvalidEnvelope},
		{name: "excessive memory", password: "secret", data: withCost(20, 255, 1), expect: ErrInvalidEnvelope},
		{name: "excessive parallelism", password: "secret", data: withCost(14, 8, 8), expect: ErrInvalidEnvelope},
		{name: "excessive work", password: "secret", data: withCost(20, 1, 32), expect: ErrInvalidEnvelope},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := srv.Open(tc.password, tc.data)
			assert.ErrorIs(t, err, tc.expect)
		})
	}
}

func TestService_OpenUsesHeaderParameters(t *testing.T) {
	sealer := New(Config{LogN: 11, R: 4, P: 2})
	envelope, err := sealer.Seal("secret", []byte("payload"))
	require.NoError(t, err)

	opener := New(testConfig())
	actual, err := opener.Open("secret", envelope)
	require.NoError(t, err)
	assert.Equal(t, "payload", string(actual))
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
	assert.Error(t, Config{LogN: 4, R: 8, P: 1}.Validate())
	assert.Error(t, Config{LogN: 15, R: 0, P: 1}.Validate())
	assert.Error(t, Config{LogN: 15, R: 8, P: 0}.Validate())
	assert.Error(t, Config{LogN: 21, R: 1, P: 1}.Validate())
	assert.Error(t, Config{LogN: 18, R: 16, P: 1}.Validate())
	assert.NoError(t, Config{LogN: 17, R: 8, P: 2}.Validate())
	assert.Equal(t, DefaultConfig(), New(Config{}).Config())
}
