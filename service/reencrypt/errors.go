package reencrypt

import "errors"

var (
	ErrFileNotFound = errors.New("file not found")
	ErrDirectory    = errors.New("file is a directory")
)
