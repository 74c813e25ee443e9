// Package errors carries error codes across package boundaries so the
// CLI can classify a failure without matching message strings.
//
// Example usage:
//
//	err := errors.Wrap(errors.ErrCodeUnavailable, "failed to reach the cluster API", cause)
//	...
//	if errors.CodeOf(err) == errors.ErrCodeUnavailable {
//	    // connectivity problem, not a bug
//	}
package errors
