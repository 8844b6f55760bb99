package media

import (
	"errors"
	"fmt"
)

// ErrAuthenticationRequired is returned from every mutating operation
// when no current actor can be resolved.
var ErrAuthenticationRequired = errors.New("authentication required")

var ErrNotFound = errors.New("media not found")

// ComplianceError wraps a failed export or erasure. Unlike ordinary
// storage failures it is always fatal to the caller: a silently partial
// GDPR action is a compliance violation, not a retryable glitch.
type ComplianceError struct {
	Op  string
	Err error
}

func (e *ComplianceError) Error() string { return fmt.Sprintf("compliance %s failed: %v", e.Op, e.Err) }
func (e *ComplianceError) Unwrap() error { return e.Err }

type ErrorCode string

const (
	CodeFileTooLarge      ErrorCode = "file_too_large"
	CodeInvalidType       ErrorCode = "invalid_type"
	CodeInvalidDimensions ErrorCode = "invalid_dimensions"
	CodeLimitExceeded     ErrorCode = "limit_exceeded"
)

// ValidationError is one field-level policy failure for one file.
// Checks never short-circuit; callers always receive the full list.
type ValidationError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}
