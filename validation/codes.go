package validation

import (
	"github.com/samber/lo"
)

// CodesResolver builds the message codes for a rejected rule.
type CodesResolver interface {
	// ObjectCodes returns the codes for an object-level error.
	ObjectCodes(code, objectName string) []string

	// FieldCodes returns the codes for a field error. fieldType may be empty.
	FieldCodes(code, objectName, field, fieldType string) []string
}

// DefaultCodesResolver orders codes from most to least specific:
//
//	code.objectName.field
//	code.field
//	code.fieldType
//	code
//
// Object errors resolve to code.objectName and code.
type DefaultCodesResolver struct {
	// Prefix is prepended to every generated code.
	Prefix string
}

// ObjectCodes implements CodesResolver.
func (r DefaultCodesResolver) ObjectCodes(code, objectName string) []string {
	return r.postProcess([]string{
		code + "." + objectName,
		code,
	})
}

// FieldCodes implements CodesResolver.
func (r DefaultCodesResolver) FieldCodes(code, objectName, field, fieldType string) []string {
	codes := []string{
		code + "." + objectName + "." + field,
		code + "." + field,
	}
	if fieldType != "" {
		codes = append(codes, code+"."+fieldType)
	}
	codes = append(codes, code)

	return r.postProcess(codes)
}

func (r DefaultCodesResolver) postProcess(codes []string) []string {
	codes = lo.Uniq(codes)
	if r.Prefix == "" {
		return codes
	}
	return lo.Map(codes, func(c string, _ int) string {
		return r.Prefix + c
	})
}
