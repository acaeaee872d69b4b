package job

import (
	"fmt"
	"strings"
	"time"
)

// Result is the structured outcome of a job. It never carries passwords.
type Result struct {
	ID          string    `json:"id" yaml:"id"`
	Status      Status    `json:"status" yaml:"status"`
	SourceURL   string    `json:"sourceURL,omitempty" yaml:"sourceURL,omitempty"`
	DestURL     string    `json:"destURL,omitempty" yaml:"destURL,omitempty"`
	Error       string    `json:"error,omitempty" yaml:"error,omitempty"`
	Bytes       int       `json:"bytes,omitempty" yaml:"bytes,omitempty"`
	StartedAt   time.Time `json:"startedAt" yaml:"startedAt"`
	CompletedAt time.Time `json:"completedAt" yaml:"completedAt"`
}

// Succeeded reports whether the job finished with StatusSuccess.
func (r *Result) Succeeded() bool {
	return r != nil && r.Status == StatusSuccess
}

// Elapsed returns the time taken by the job, zero while it has not completed.
func (r *Result) Elapsed() time.Duration {
	if r == nil || r.CompletedAt.IsZero() {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

// Fail marks the result as failed with err as diagnostic detail.
func (r *Result) Fail(err error) *Result {
	r.Status = StatusFailure
	if err != nil {
		r.Error = err.Error()
	}
	return r
}

// Clone returns a copy of the result.
func (r *Result) Clone() *Result {
	if r == nil {
		return nil
	}
	ret := *r
	return &ret
}

// String renders a single report line, e.g.
// "job job-1f0c… status: FAILURE error: ...".
func (r *Result) String() string {
	if r == nil {
		return "status: " + string(StatusFailure)
	}
	builder := strings.Builder{}
	if r.ID != "" {
		builder.WriteString("job ")
		builder.WriteString(r.ID)
		builder.WriteString(" ")
	}
	builder.WriteString("status: ")
	builder.WriteString(string(r.Status))
	if r.Error != "" {
		builder.WriteString(" error: ")
		builder.WriteString(r.Error)
	}
	if r.Status == StatusSuccess {
		builder.WriteString(fmt.Sprintf(" bytes: %d elapsed: %s", r.Bytes, r.Elapsed()))
	}
	return builder.String()
}
