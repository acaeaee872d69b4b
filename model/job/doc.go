// Package job defines the request and result types of a re-encryption job.
//
// A Result is the only thing a caller gets back from a run: operational
// failures (missing file, wrong password, storage errors) are expressed as a
// FAILURE status with a diagnostic message rather than as a returned error.
package job
