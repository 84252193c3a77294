package alerts

import "fmt"

// ValidationError reports input rejected before it reached the store.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NotFoundError reports an id that does not reference a stored alert.
type NotFoundError struct {
	ID uint
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("alert %d not found", e.ID)
}

// ConflictError reports a patch carrying a revision that no longer matches
// the stored record.
type ConflictError struct {
	ID       uint
	Expected uint
	Actual   uint
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("alert %d revision mismatch: got %d, current is %d", e.ID, e.Expected, e.Actual)
}

// StoreError wraps a persistence failure.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
