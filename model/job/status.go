package job

// Status represents the terminal state of a job.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailure Status = "FAILURE"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	switch s {
	case StatusSuccess, StatusFailure:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
