// Package tags provides a struct-tag driven validation.Validator backed by
// go-playground/validator.
//
// Constraints are declared with `validate` tags and fields are reported by
// their `json` name:
//
//	type Event struct {
//	    Title string `json:"title" validate:"required"`
//	}
//
// Tags are mapped to the constraint codes used by the validation package,
// so `required` is reported as NotEmpty.
package tags

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"github.com/kyunghwan/beans/validation"
)

// ErrTranslatorNotFound indicates the English translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// codes maps validator tags to constraint codes. Unlisted tags are used as-is.
var codes = map[string]string{
	"required": "NotEmpty",
	"min":      "Min",
	"max":      "Max",
	"len":      "Size",
	"gte":      "Min",
	"lte":      "Max",
	"email":    "Email",
	"url":      "URL",
	"uuid":     "UUID",
	"oneof":    "OneOf",
}

// Validator implements validation.Validator with struct tags.
// It is safe for concurrent use and should be shared.
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

var _ validation.Validator = (*Validator)(nil)

// New builds a Validator with English default messages.
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	return &Validator{
		validate:   validate,
		translator: enTrans,
	}, nil
}

// Supports reports whether target is a struct or a pointer to one.
func (v *Validator) Supports(target any) bool {
	t := reflect.TypeOf(target)
	if t == nil {
		return false
	}
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Kind() == reflect.Struct
}

// Validate implements validation.Validator.
func (v *Validator) Validate(target any, errs *validation.Errors) error {
	if err := validation.CheckTarget(v, "tags", target); err != nil {
		return err
	}

	err := v.validate.Struct(target)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// InvalidValidationError and friends are contract errors.
		return err
	}

	for _, fe := range fieldErrs {
		var args []any
		if p := fe.Param(); p != "" {
			args = append(args, p)
		}
		errs.RejectValue(fieldPath(fe), fe.Value(), code(fe.Tag()), fe.Translate(v.translator), args...)
	}

	return nil
}

func code(tag string) string {
	if c, ok := codes[tag]; ok {
		return c
	}
	return tag
}

// fieldPath strips the root struct name from the namespace: Event.title -> title.
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	default:
		return name
	}
}
