package validation

import (
	"reflect"
	"strings"

	"github.com/samber/lo"
)

// Validator validates targets of the types it supports.
//
// Validate records violations in errs and returns a non-nil error only for
// contract violations such as a nil or unsupported target. Implementations
// must not modify the target and must be safe for concurrent use.
type Validator interface {
	// Supports reports whether the validator can validate target.
	Supports(target any) bool

	// Validate checks target and records every violation in errs.
	Validate(target any, errs *Errors) error
}

// ValidateObject runs v against target with a fresh report named objectName.
// The report is returned even when it is empty. Contract errors come from v
// itself, so they name the validator that rejected the target.
func ValidateObject(v Validator, target any, objectName string) (*Errors, error) {
	errs := NewErrors(target, objectName)
	if err := v.Validate(target, errs); err != nil {
		return nil, err
	}

	return errs, nil
}

// CheckTarget returns a *TargetError when target is nil or unsupported by v.
// Validator implementations call it before touching the target.
func CheckTarget(v Validator, name string, target any) error {
	if IsNil(target) {
		return newTargetError(name, target, ErrNilTarget)
	}
	if !v.Supports(target) {
		return newTargetError(name, target, ErrUnsupportedTarget)
	}
	return nil
}

// IsNil reports whether v is nil or a nil pointer, map, slice, func or interface.
func IsNil(v any) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Interface, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// chain runs several validators over the same report.
type chain struct {
	validators []Validator
}

// Chain combines validators. The result supports a target when any member
// does, and runs every supporting member in order.
func Chain(validators ...Validator) Validator {
	return &chain{
		validators: lo.Filter(validators, func(v Validator, _ int) bool {
			return v != nil
		}),
	}
}

func (c *chain) Supports(target any) bool {
	return lo.ContainsBy(c.validators, func(v Validator) bool {
		return v.Supports(target)
	})
}

func (c *chain) Validate(target any, errs *Errors) error {
	if err := CheckTarget(c, c.name(), target); err != nil {
		return err
	}

	for _, v := range c.validators {
		if !v.Supports(target) {
			continue
		}
		if err := v.Validate(target, errs); err != nil {
			return err
		}
	}

	return nil
}

func (c *chain) name() string {
	names := lo.Map(c.validators, func(v Validator, _ int) string {
		return typeName(v)
	})
	return "chain(" + strings.Join(names, ",") + ")"
}
