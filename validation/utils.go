package validation

import "strings"

// RejectIfEmpty records a field error when value is the empty string.
func RejectIfEmpty(errs *Errors, field, value, code, defaultMessage string, args ...any) {
	if value == "" {
		errs.RejectValue(field, value, code, defaultMessage, args...)
	}
}

// RejectIfEmptyOrWhitespace records a field error when value is empty or
// contains only whitespace.
func RejectIfEmptyOrWhitespace(errs *Errors, field, value, code, defaultMessage string, args ...any) {
	if strings.TrimSpace(value) == "" {
		errs.RejectValue(field, value, code, defaultMessage, args...)
	}
}
