package validation

import (
	"cmp"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Rule is a statically declared check. Rules with an empty Field are
// object-level rules.
type Rule[T any] struct {
	Field   string
	Code    string
	Message string
	Args    []any

	// Check returns true when the target satisfies the rule.
	Check func(T) bool

	// Value returns the value recorded as rejected. Optional.
	Value func(T) any
}

// Rules is a declarative Validator over targets of type T, usually a pointer
// to a struct. Field rules run in declaration order, object-level rules last.
type Rules[T any] struct {
	objectName  string
	fieldRules  []Rule[T]
	objectRules []Rule[T]
}

var _ Validator = (*Rules[any])(nil)

// NewRules returns a validator evaluating rules in order. objectName is only
// used for error messages; reports carry their own object name.
//
// NewRules panics if a rule has no Check or no Code, since rule lists are
// declared at program start.
func NewRules[T any](objectName string, rules ...Rule[T]) *Rules[T] {
	r := &Rules[T]{objectName: objectName}
	for i, rule := range rules {
		if rule.Check == nil {
			panic(fmt.Sprintf("validation: rule %d (%s) of %s has no check", i, rule.Code, objectName))
		}
		if rule.Code == "" {
			panic(fmt.Sprintf("validation: rule %d of %s has no code", i, objectName))
		}

		if rule.Field == "" {
			r.objectRules = append(r.objectRules, rule)
		} else {
			r.fieldRules = append(r.fieldRules, rule)
		}
	}
	return r
}

// Len returns the number of declared rules.
func (r *Rules[T]) Len() int {
	return len(r.fieldRules) + len(r.objectRules)
}

// Supports implements Validator.
func (r *Rules[T]) Supports(target any) bool {
	_, ok := target.(T)
	return ok
}

// Validate implements Validator.
func (r *Rules[T]) Validate(target any, errs *Errors) error {
	if err := CheckTarget(r, "rules("+r.objectName+")", target); err != nil {
		return err
	}

	t := target.(T)
	for _, rule := range r.fieldRules {
		if rule.Check(t) {
			continue
		}

		var value any
		if rule.Value != nil {
			value = rule.Value(t)
		}
		errs.RejectValue(rule.Field, value, rule.Code, rule.Message, rule.Args...)
	}

	for _, rule := range r.objectRules {
		if !rule.Check(t) {
			errs.Reject(rule.Code, rule.Message, rule.Args...)
		}
	}

	return nil
}

// NotEmpty requires a non-empty string.
func NotEmpty[T any](field string, get func(T) string) Rule[T] {
	return Rule[T]{
		Field:   field,
		Code:    "NotEmpty",
		Message: "must not be empty",
		Check:   func(t T) bool { return get(t) != "" },
		Value:   func(t T) any { return get(t) },
	}
}

// NotBlank requires a string with at least one non-whitespace character.
func NotBlank[T any](field string, get func(T) string) Rule[T] {
	return Rule[T]{
		Field:   field,
		Code:    "NotBlank",
		Message: "must not be blank",
		Check:   func(t T) bool { return strings.TrimSpace(get(t)) != "" },
		Value:   func(t T) any { return get(t) },
	}
}

// NotNull requires a non-nil value.
func NotNull[T any](field string, get func(T) any) Rule[T] {
	return Rule[T]{
		Field:   field,
		Code:    "NotNull",
		Message: "must not be null",
		Check:   func(t T) bool { return !IsNil(get(t)) },
		Value:   get,
	}
}

// Size requires a string length, in runes, within [min, max].
func Size[T any](field string, get func(T) string, min, max int) Rule[T] {
	return Rule[T]{
		Field:   field,
		Code:    "Size",
		Message: fmt.Sprintf("size must be between %d and %d", min, max),
		Args:    []any{min, max},
		Check: func(t T) bool {
			n := utf8.RuneCountInString(get(t))
			return n >= min && n <= max
		},
		Value: func(t T) any { return get(t) },
	}
}

// Min requires a value greater than or equal to min.
func Min[T any, N cmp.Ordered](field string, get func(T) N, min N) Rule[T] {
	return Rule[T]{
		Field:   field,
		Code:    "Min",
		Message: fmt.Sprintf("must be greater than or equal to %v", min),
		Args:    []any{min},
		Check:   func(t T) bool { return get(t) >= min },
		Value:   func(t T) any { return get(t) },
	}
}

// Max requires a value less than or equal to max.
func Max[T any, N cmp.Ordered](field string, get func(T) N, max N) Rule[T] {
	return Rule[T]{
		Field:   field,
		Code:    "Max",
		Message: fmt.Sprintf("must be less than or equal to %v", max),
		Args:    []any{max},
		Check:   func(t T) bool { return get(t) <= max },
		Value:   func(t T) any { return get(t) },
	}
}

// Pattern requires a string matching re.
func Pattern[T any](field string, get func(T) string, re *regexp.Regexp) Rule[T] {
	return Rule[T]{
		Field:   field,
		Code:    "Pattern",
		Message: fmt.Sprintf("must match %q", re.String()),
		Args:    []any{re.String()},
		Check:   func(t T) bool { return re.MatchString(get(t)) },
		Value:   func(t T) any { return get(t) },
	}
}

// Assert declares an object-level rule.
func Assert[T any](code, message string, check func(T) bool) Rule[T] {
	return Rule[T]{
		Code:    code,
		Message: message,
		Check:   check,
	}
}
