package event

import (
	"github.com/kyunghwan/beans/validation"
)

// EventValidator is the hand-written Event validator.
type EventValidator struct {
	field   string
	code    string
	message string
}

var _ validation.Validator = (*EventValidator)(nil)

// NewEventValidator returns an EventValidator.
func NewEventValidator() *EventValidator {
	return &EventValidator{
		field:   "title",
		code:    "notempty",
		message: "Empty title is not allowed.",
	}
}

// Supports reports whether target is an *Event.
func (v *EventValidator) Supports(target any) bool {
	_, ok := target.(*Event)
	return ok
}

// Validate rejects an empty title.
func (v *EventValidator) Validate(target any, errs *validation.Errors) error {
	if err := validation.CheckTarget(v, "event", target); err != nil {
		return err
	}

	e := target.(*Event)
	validation.RejectIfEmpty(errs, v.field, e.Title, v.code, v.message)

	return nil
}
