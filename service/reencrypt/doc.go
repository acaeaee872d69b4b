// Package reencrypt runs re-encryption jobs: a file sealed under one password
// is opened and sealed again under another password.
//
// Runs are synchronous and always end with a *job.Result. Operational failures
// (missing file, wrong password, storage errors) are reported as
// job.StatusFailure and never leave partial output behind: the new envelope is
// written to a temporary sibling and moved over the destination only once it
// is complete.
package reencrypt
