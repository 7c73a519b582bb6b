package event

import "github.com/kyunghwan/beans/validation"

// NewRules returns the declarative Event validator.
func NewRules() *validation.Rules[*Event] {
	return validation.NewRules(ObjectName,
		validation.NotEmpty("title", func(e *Event) string { return e.Title }),
	)
}
