package job

import "errors"

var (
	ErrNilRequest    = errors.New("job: nil request")
	ErrEmptySource   = errors.New("job: file name is empty")
	ErrEmptyPassword = errors.New("password is empty")
)
