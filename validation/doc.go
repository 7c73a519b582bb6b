// Package validation provides a small field-level validation pipeline.
//
// A Validator inspects a target and records every violated rule in an
// Errors report. Violations are values, never returned as Go errors:
//
//	errs := validation.NewErrors(evt, "event")
//	if err := v.Validate(evt, errs); err != nil {
//	    // programming error: nil or unsupported target
//	}
//	if errs.HasErrors() {
//	    for _, e := range errs.AllErrors() {
//	        fmt.Println(e.Codes, e.DefaultMessage)
//	    }
//	}
//
// Two styles of validator satisfy the same contract. Hand-written validators
// implement Validator directly, usually with the RejectIfEmpty helpers.
// Declarative validators list their rules up front with Rules:
//
//	rules := validation.NewRules("event",
//	    validation.NotEmpty("title", func(e *Event) string { return e.Title }),
//	)
//
// Each recorded error carries a list of message codes ordered from most to
// least specific, produced by a CodesResolver:
//
//	NotEmpty.event.title
//	NotEmpty.title
//	NotEmpty.string
//	NotEmpty
package validation
