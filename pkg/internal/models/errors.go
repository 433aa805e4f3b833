package models

import "fmt"

// The error taxonomy of the back office. Handlers map these onto HTTP
// statuses; everything else bubbles up as a plain 500.

// ValidationError rejects bad input before any persistent side effect.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Field) > 0 {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
	}
	return e.Reason
}

// ConflictError rejects a category slug that already exists within its kind.
type ConflictError struct {
	Kind string
	Slug string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("a %s category with slug %q already exists", e.Kind, e.Slug)
}

// ReferencedError refuses to delete a category that content still points at.
type ReferencedError struct {
	Kind  string
	Count int64
}

func (e *ReferencedError) Error() string {
	return fmt.Sprintf("category is still referenced by %d %s record(s)", e.Count, e.Kind)
}

type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

// TransientStoreError marks a storage or network outage; the caller may
// retry manually, nothing retries in a loop on their behalf.
type TransientStoreError struct {
	Op  string
	Err error
}

func (e *TransientStoreError) Error() string {
	return fmt.Sprintf("storage unavailable during %s: %v; try again later", e.Op, e.Err)
}

func (e *TransientStoreError) Unwrap() error { return e.Err }
