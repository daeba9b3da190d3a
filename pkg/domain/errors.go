package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound reports a lookup for a record that does not exist, e.g. a cart
// entry addressed by an unknown ID.
var ErrNotFound = errors.New("not found")

// ErrInvalidImport is the sentinel matched by errors.Is for rejected import
// payloads.
var ErrInvalidImport = errors.New("invalid import payload")

// ImportError reports a malformed or structurally invalid import payload. The
// whole import is rejected atomically; no state was changed.
type ImportError struct {
	Reason string
	Err    error
}

func (e *ImportError) Error() string {
	if e.Reason == "" {
		return ErrInvalidImport.Error()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidImport.Error(), e.Reason)
}

// Unwrap exposes the underlying decode error, if any.
func (e *ImportError) Unwrap() error { return e.Err }

// Is matches ErrInvalidImport so callers can branch without the concrete type.
func (e *ImportError) Is(target error) bool { return target == ErrInvalidImport }

// PersistenceError wraps a failed snapshot write. The in-memory mutation has
// already committed; callers treat the write as best-effort per the storage
// contract and decide whether to surface or swallow it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist state (%s): %v", e.Op, e.Err)
}

// Unwrap exposes the driver error.
func (e *PersistenceError) Unwrap() error { return e.Err }
