package weather

import "fmt"

// ValidationError is the client's fault: malformed or out-of-domain input.
// It is always raised before any storage access and never retried.
type ValidationError struct {
	Param   string
	Reason  string
	Missing bool
}

func (e *ValidationError) Error() string {
	if e.Missing {
		return fmt.Sprintf("missing parameter %q", e.Param)
	}
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

func invalidParam(param, reason string) *ValidationError {
	return &ValidationError{Param: param, Reason: reason}
}

func missingParam(param string) *ValidationError {
	return &ValidationError{Param: param, Missing: true}
}

// ConflictError reports a storage-enforced constraint violation, kept
// distinct from StorageError so clients can disambiguate.
type ConflictError struct {
	Err error
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("storage constraint violation: %v", e.Err)
}

func (e *ConflictError) Unwrap() error { return e.Err }

// StorageError wraps a backend failure. Full detail is for server-side logs
// only; transports must surface it as an opaque generic failure.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }
