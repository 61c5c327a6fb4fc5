package shared

import (
	"fmt"
	"strings"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target is a DomainError with the same code, so that
// errors.Is(err, ErrConflict) matches conflicts carrying a custom message.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Error codes used by the record core
const (
	CodeNotFound               = "NOT_FOUND"
	CodeConflict               = "CONFLICT"
	CodeCreationOrUpdateFailed = "CREATION_OR_UPDATE_FAILED"
	CodeInvalidSequenceState   = "INVALID_SEQUENCE_STATE"
	CodeInvalidInput           = "INVALID_INPUT"
)

// Common domain errors
var (
	ErrNotFound               = NewDomainError(CodeNotFound, "Resource not found")
	ErrConflict               = NewDomainError(CodeConflict, "Resource is referenced by other records")
	ErrCreationOrUpdateFailed = NewDomainError(CodeCreationOrUpdateFailed, "Failed to save the record")
	ErrInvalidSequenceState   = NewDomainError(CodeInvalidSequenceState, "The last issued code cannot be parsed")
	ErrInvalidInput           = NewDomainError(CodeInvalidInput, "Invalid input provided")
)

// NewNotFoundError creates a NOT_FOUND error naming the record kind
func NewNotFoundError(kind string) *DomainError {
	return NewDomainError(CodeNotFound, fmt.Sprintf("%s not found", kind))
}

// Reference counts the records of one dependent kind pointing at a record
type Reference struct {
	Kind  string
	Count int64
}

// NewConflictError creates a CONFLICT error stating how many records of
// each dependent kind still reference the record being deleted
func NewConflictError(kind string, refs ...Reference) *DomainError {
	parts := make([]string, 0, len(refs))
	for _, ref := range refs {
		parts = append(parts, fmt.Sprintf("%d %s", ref.Count, ref.Kind))
	}
	return NewDomainError(CodeConflict,
		fmt.Sprintf("Cannot delete %s: %s record(s) still reference it", kind, strings.Join(parts, ", ")))
}

// NewInvalidSequenceStateError creates an INVALID_SEQUENCE_STATE error for an unparsable code
func NewInvalidSequenceStateError(code string) *DomainError {
	return NewDomainError(CodeInvalidSequenceState,
		fmt.Sprintf("Cannot derive the next code from %q", code))
}

// NewInvalidInputError creates an INVALID_INPUT error with a custom message
func NewInvalidInputError(message string) *DomainError {
	return NewDomainError(CodeInvalidInput, message)
}
