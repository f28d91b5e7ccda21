// Package experror defines the error taxonomy shared across the application.
package experror

import "fmt"

// ValidationError represents a rejected expense submission or edit.
// It is the only error class surfaced verbatim to the user besides ImportError.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// AIUnavailableError represents a failed call to the generative-language
// endpoint: missing credential, non-2xx response, network error, or a
// malformed response body. Callers must catch it and apply the deterministic
// fallback for the operation; it never reaches the user as a hard error.
type AIUnavailableError struct {
	Operation string
	Err       error
}

func (e *AIUnavailableError) Error() string {
	return fmt.Sprintf("ai unavailable during %s: %v", e.Operation, e.Err)
}

func (e *AIUnavailableError) Unwrap() error {
	return e.Err
}

// ImportError represents a malformed backup file. The collection is left
// untouched when it occurs.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("import failed: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("import failed: %s", e.Reason)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}

// StorageError represents a persistence read or write failure. It is logged
// and degraded, never fatal: reads fall back to the seed set, writes leave
// the in-memory state authoritative.
type StorageError struct {
	Op   string
	Path string
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed for %s: %v", e.Op, e.Path, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
