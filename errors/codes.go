package errors

// ErrorCode represents a machine-readable error code. A bare code is itself
// an immutable error value, usable as an errors.Is target for every AppError
// carrying it.
type ErrorCode string

func (c ErrorCode) Error() string { return string(c) }

// Sequence errors
const (
	// ErrCodeEmptySequence indicates an operation needed at least one element
	// but the source produced none.
	ErrCodeEmptySequence ErrorCode = "EMPTY_SEQUENCE"
	// ErrCodeIteratorFailed indicates a closable producer failed while
	// being pulled or released.
	ErrCodeIteratorFailed ErrorCode = "ITERATOR_FAILED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates a misuse of an API, such as validating a
	// value that is not a struct.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)
