package cipher

import "errors"

var (
	// ErrEmptyPassword is returned when sealing or opening with an empty password.
	ErrEmptyPassword = errors.New("cipher: empty password")

	// ErrInvalidEnvelope indicates data that is not an envelope (bad magic or
	// truncated header).
	ErrInvalidEnvelope = errors.New("cipher: invalid envelope")

	// ErrUnsupportedVersion indicates an envelope written by an unknown format version.
	ErrUnsupportedVersion = errors.New("cipher: unsupported envelope version")

	// ErrAuthentication is returned when the password is wrong or the data was tampered with.
	ErrAuthentication = errors.New("cipher: authentication failed (wrong password or corrupted data)")
)
