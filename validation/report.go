package validation

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// ObjectError is a single violation recorded in an Errors report.
// Field is empty for object-level errors.
type ObjectError struct {
	ObjectName     string
	Field          string
	Codes          []string
	Args           []any
	DefaultMessage string
	RejectedValue  any
}

// IsFieldError reports whether the error is bound to a field.
func (e ObjectError) IsFieldError() bool {
	return e.Field != ""
}

// Code returns the least specific code, which is the rule code itself.
func (e ObjectError) Code() string {
	if len(e.Codes) == 0 {
		return ""
	}
	return e.Codes[len(e.Codes)-1]
}

func (e ObjectError) String() string {
	if e.IsFieldError() {
		return fmt.Sprintf("field error in object %q on field %q: rejected value [%v]; codes [%s]; default message [%s]",
			e.ObjectName, e.Field, e.RejectedValue, strings.Join(e.Codes, ","), e.DefaultMessage)
	}
	return fmt.Sprintf("error in object %q: codes [%s]; default message [%s]",
		e.ObjectName, strings.Join(e.Codes, ","), e.DefaultMessage)
}

// Errors collects the violations found while validating one target.
//
// An Errors value is created per validation call and is not safe for
// concurrent use.
type Errors struct {
	objectName string
	resolver   CodesResolver
	errors     []ObjectError
}

// NewErrors creates an empty report for target, named objectName.
// The target is only used to derive a name when objectName is empty.
func NewErrors(target any, objectName string) *Errors {
	if objectName == "" {
		objectName = defaultObjectName(target)
	}

	return &Errors{
		objectName: objectName,
		resolver:   DefaultCodesResolver{},
	}
}

// WithResolver replaces the codes resolver used for subsequent rejections.
func (e *Errors) WithResolver(resolver CodesResolver) *Errors {
	if resolver != nil {
		e.resolver = resolver
	}
	return e
}

// ObjectName returns the name of the validated object.
func (e *Errors) ObjectName() string {
	return e.objectName
}

// Reject records an object-level error.
func (e *Errors) Reject(code, defaultMessage string, args ...any) {
	e.errors = append(e.errors, ObjectError{
		ObjectName:     e.objectName,
		Codes:          e.resolver.ObjectCodes(code, e.objectName),
		Args:           args,
		DefaultMessage: defaultMessage,
	})
}

// RejectValue records an error for field. The rejected value is kept on the
// error and its type contributes a code.
func (e *Errors) RejectValue(field string, value any, code, defaultMessage string, args ...any) {
	if field == "" {
		e.Reject(code, defaultMessage, args...)
		return
	}

	fieldType := ""
	if value != nil {
		fieldType = fmt.Sprintf("%T", value)
	}

	e.errors = append(e.errors, ObjectError{
		ObjectName:     e.objectName,
		Field:          field,
		Codes:          e.resolver.FieldCodes(code, e.objectName, field, fieldType),
		Args:           args,
		DefaultMessage: defaultMessage,
		RejectedValue:  value,
	})
}

// HasErrors reports whether any violation was recorded.
func (e *Errors) HasErrors() bool {
	return len(e.errors) > 0
}

// ErrorCount returns the number of recorded violations.
func (e *Errors) ErrorCount() int {
	return len(e.errors)
}

// AllErrors returns a copy of every violation in recording order.
func (e *Errors) AllErrors() []ObjectError {
	out := make([]ObjectError, len(e.errors))
	copy(out, e.errors)
	return out
}

// GlobalErrors returns the object-level violations.
func (e *Errors) GlobalErrors() []ObjectError {
	return lo.Filter(e.errors, func(item ObjectError, _ int) bool {
		return !item.IsFieldError()
	})
}

// FieldErrors returns the field violations, optionally restricted to one field.
func (e *Errors) FieldErrors(field ...string) []ObjectError {
	return lo.Filter(e.errors, func(item ObjectError, _ int) bool {
		if !item.IsFieldError() {
			return false
		}
		return len(field) == 0 || lo.Contains(field, item.Field)
	})
}

// HasFieldErrors reports whether field has at least one violation.
func (e *Errors) HasFieldErrors(field string) bool {
	return lo.ContainsBy(e.errors, func(item ObjectError) bool {
		return item.IsFieldError() && item.Field == field
	})
}

// FieldError returns the first violation recorded for field.
func (e *Errors) FieldError(field string) (ObjectError, bool) {
	return lo.Find(e.errors, func(item ObjectError) bool {
		return item.IsFieldError() && item.Field == field
	})
}

// Err returns nil for an empty report and a *ReportError otherwise.
func (e *Errors) Err() error {
	if !e.HasErrors() {
		return nil
	}
	return &ReportError{
		ObjectName: e.objectName,
		Errors:     e.AllErrors(),
	}
}

func (e *Errors) String() string {
	if !e.HasErrors() {
		return fmt.Sprintf("%s: no errors", e.objectName)
	}

	lines := lo.Map(e.errors, func(item ObjectError, _ int) string {
		return item.String()
	})
	return fmt.Sprintf("%s: %d error(s)\n%s", e.objectName, len(e.errors), strings.Join(lines, "\n"))
}

// defaultObjectName derives "event" from *event.Event.
func defaultObjectName(target any) string {
	if target == nil {
		return "object"
	}

	name := typeName(target)
	name = strings.TrimLeft(name, "*[]")
	if i := strings.LastIndex(name, "."); i >= 0 {
		name = name[i+1:]
	}
	if name == "" {
		return "object"
	}
	return strings.ToLower(name[:1]) + name[1:]
}
