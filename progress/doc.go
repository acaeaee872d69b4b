// Package progress defines primitives for reporting and aggregating the
// progress of a batch of re-encryption jobs. Callers consume updates through
// an OnChange callback regardless of which component produced them.
package progress
