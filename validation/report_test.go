package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyunghwan/beans/validation"
)

type account struct {
	Name string
}

func TestErrors(t *testing.T) {
	t.Run("empty report", func(t *testing.T) {
		errs := validation.NewErrors(&account{}, "account")

		assert.False(t, errs.HasErrors())
		assert.Equal(t, 0, errs.ErrorCount())
		assert.Empty(t, errs.AllErrors())
		assert.NoError(t, errs.Err())
		assert.Equal(t, "account: no errors", errs.String())
	})

	t.Run("default object name", func(t *testing.T) {
		assert.Equal(t, "account", validation.NewErrors(&account{}, "").ObjectName())
		assert.Equal(t, "object", validation.NewErrors(nil, "").ObjectName())
	})

	t.Run("field error codes", func(t *testing.T) {
		errs := validation.NewErrors(&account{}, "account")
		errs.RejectValue("name", "", "NotEmpty", "must not be empty")

		require.Equal(t, 1, errs.ErrorCount())
		e := errs.AllErrors()[0]

		assert.True(t, e.IsFieldError())
		assert.Equal(t, "name", e.Field)
		assert.Equal(t, "account", e.ObjectName)
		assert.Equal(t, []string{
			"NotEmpty.account.name",
			"NotEmpty.name",
			"NotEmpty.string",
			"NotEmpty",
		}, e.Codes)
		assert.Equal(t, "NotEmpty", e.Code())
		assert.Equal(t, "must not be empty", e.DefaultMessage)
		assert.Equal(t, "", e.RejectedValue)
	})

	t.Run("nil rejected value skips type code", func(t *testing.T) {
		errs := validation.NewErrors(nil, "account")
		errs.RejectValue("owner", nil, "NotNull", "must not be null")

		assert.Equal(t, []string{"NotNull.account.owner", "NotNull.owner", "NotNull"}, errs.AllErrors()[0].Codes)
	})

	t.Run("object error codes", func(t *testing.T) {
		errs := validation.NewErrors(nil, "account")
		errs.Reject("Locked", "account is locked")

		e := errs.AllErrors()[0]
		assert.False(t, e.IsFieldError())
		assert.Equal(t, []string{"Locked.account", "Locked"}, e.Codes)
	})

	t.Run("reject value without field is object error", func(t *testing.T) {
		errs := validation.NewErrors(nil, "account")
		errs.RejectValue("", "x", "Locked", "account is locked")

		assert.Len(t, errs.GlobalErrors(), 1)
		assert.Empty(t, errs.FieldErrors())
	})

	t.Run("filters keep order", func(t *testing.T) {
		errs := validation.NewErrors(nil, "account")
		errs.RejectValue("name", "", "NotEmpty", "a")
		errs.Reject("Locked", "b")
		errs.RejectValue("email", "x", "Email", "c")
		errs.RejectValue("name", "", "Size", "d")

		assert.Equal(t, 4, errs.ErrorCount())
		assert.Len(t, errs.GlobalErrors(), 1)
		assert.Len(t, errs.FieldErrors(), 3)
		assert.Len(t, errs.FieldErrors("name"), 2)
		assert.True(t, errs.HasFieldErrors("email"))
		assert.False(t, errs.HasFieldErrors("phone"))

		first, ok := errs.FieldError("name")
		require.True(t, ok)
		assert.Equal(t, "a", first.DefaultMessage)

		_, ok = errs.FieldError("phone")
		assert.False(t, ok)
	})

	t.Run("object errors are not field errors", func(t *testing.T) {
		errs := validation.NewErrors(nil, "account")
		errs.Reject("Locked", "b")

		assert.False(t, errs.HasFieldErrors(""))
		_, ok := errs.FieldError("")
		assert.False(t, ok)
		assert.Empty(t, errs.FieldErrors(""))
	})

	t.Run("AllErrors returns a copy", func(t *testing.T) {
		errs := validation.NewErrors(nil, "account")
		errs.Reject("Locked", "b")

		all := errs.AllErrors()
		all[0].DefaultMessage = "changed"
		assert.Equal(t, "b", errs.AllErrors()[0].DefaultMessage)
	})

	t.Run("Err wraps report", func(t *testing.T) {
		errs := validation.NewErrors(nil, "account")
		errs.RejectValue("name", "", "NotEmpty", "must not be empty")

		err := errs.Err()
		require.Error(t, err)
		assert.True(t, errors.Is(err, validation.ErrValidationFailed))

		var reportErr *validation.ReportError
		require.ErrorAs(t, err, &reportErr)
		assert.Equal(t, "account", reportErr.ObjectName)
		assert.Len(t, reportErr.Errors, 1)
		assert.Contains(t, err.Error(), `on field "name"`)
	})

	t.Run("custom resolver", func(t *testing.T) {
		errs := validation.NewErrors(nil, "account").
			WithResolver(validation.DefaultCodesResolver{Prefix: "validation."})
		errs.Reject("Locked", "b")

		assert.Equal(t, []string{"validation.Locked.account", "validation.Locked"}, errs.AllErrors()[0].Codes)
	})
}

func TestDefaultCodesResolver(t *testing.T) {
	r := validation.DefaultCodesResolver{}

	t.Run("field codes", func(t *testing.T) {
		assert.Equal(t,
			[]string{"Min.order.qty", "Min.qty", "Min.int", "Min"},
			r.FieldCodes("Min", "order", "qty", "int"))
	})

	t.Run("duplicates removed", func(t *testing.T) {
		assert.Equal(t,
			[]string{"X.a.b", "X.b", "X"},
			r.FieldCodes("X", "a", "b", "b"))
	})
}
