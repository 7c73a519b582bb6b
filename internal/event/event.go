// Package event holds the Event entity and its validators.
//
// Three validators check the same policy, a non-empty title:
//
//   - EventValidator, written by hand
//   - NewRules, a declarative rule list
//   - the struct tags on Event, checked by validation/tags
//
// Module registers all of them and exposes the one selected by
// configuration as the unnamed validation.Validator.
package event

// ObjectName names Event in validation reports.
const ObjectName = "event"

// Event is the validated entity.
type Event struct {
	Idx   int64  `json:"idx"`
	Title string `json:"title" validate:"required"`
}
