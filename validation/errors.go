package validation

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilTarget is returned when a validator is asked to validate nil.
	ErrNilTarget = errors.New("validation target cannot be nil")

	// ErrUnsupportedTarget is returned when a validator does not support the target type.
	ErrUnsupportedTarget = errors.New("validation target type is not supported")

	// ErrValidationFailed marks a report rendered as an error by Errors.Err.
	ErrValidationFailed = errors.New("validation failed")
)

var (
	_ error = (*TargetError)(nil)
	_ error = (*ReportError)(nil)
)

// TargetError reports a contract violation: the validator was handed a target
// it cannot inspect. It is never recorded in a report.
type TargetError struct {
	Validator string
	Target    string
	Cause     error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("validator %s cannot validate %s: %v", e.Validator, e.Target, e.Cause)
}

func (e *TargetError) Unwrap() error {
	return e.Cause
}

// ReportError wraps a non-empty report for callers that propagate failures as errors.
type ReportError struct {
	ObjectName string
	Errors     []ObjectError
}

func (e *ReportError) Error() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("validation of %q failed with %d error(s)", e.ObjectName, len(e.Errors)))
	for _, oe := range e.Errors {
		b.WriteString("; ")
		b.WriteString(oe.String())
	}
	return b.String()
}

func (e *ReportError) Is(target error) bool {
	return target == ErrValidationFailed
}

// newTargetError builds a TargetError naming the offending target's type.
func newTargetError(validator string, target any, cause error) *TargetError {
	return &TargetError{
		Validator: validator,
		Target:    typeName(target),
		Cause:     cause,
	}
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%T", v)
}
