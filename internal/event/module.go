package event

import (
	"fmt"
	"strings"

	"github.com/kyunghwan/beans"
	"github.com/kyunghwan/beans/validation"
	"github.com/kyunghwan/beans/validation/tags"
)

// Mode selects the active Event validator.
type Mode string

const (
	// ModeManual selects EventValidator.
	ModeManual Mode = "manual"

	// ModeRules selects the declarative rule list.
	ModeRules Mode = "rules"

	// ModeTags selects the struct-tag validator.
	ModeTags Mode = "tags"
)

// Modes lists every supported mode.
var Modes = []Mode{ModeManual, ModeRules, ModeTags}

// ParseMode parses a mode name, case-insensitively.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown validation mode %q (want one of %v)", s, Modes)
}

// Module registers every Event validator under its mode name, the one
// selected by mode as the unnamed validation.Validator, and the Service.
// Validators get the given lifetime; the tag engine is always a singleton.
func Module(mode Mode, lifetime beans.Lifetime) beans.ModuleOption {
	active, err := ParseMode(string(mode))
	if err != nil {
		return beans.NewModule("event", func(beans.Collection) error { return err })
	}

	return beans.NewModule("event",
		beans.ProvideSingleton(func(beans.Resolver) (*tags.Validator, error) {
			return tags.New()
		}),
		beans.Provide(lifetime, func(beans.Resolver) (validation.Validator, error) {
			return NewEventValidator(), nil
		}, beans.Name(string(ModeManual))),
		beans.Provide(lifetime, func(beans.Resolver) (validation.Validator, error) {
			return NewRules(), nil
		}, beans.Name(string(ModeRules))),
		beans.Provide(lifetime, func(r beans.Resolver) (validation.Validator, error) {
			v, err := beans.Resolve[*tags.Validator](r)
			if err != nil {
				return nil, err
			}
			return v, nil
		}, beans.Name(string(ModeTags))),
		beans.Provide(lifetime, func(r beans.Resolver) (validation.Validator, error) {
			return beans.ResolveKeyed[validation.Validator](r, string(active))
		}),
		beans.ProvideSingleton(NewServiceFactory),
	)
}
