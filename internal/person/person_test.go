package person_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/kyunghwan/beans"
	"github.com/kyunghwan/beans/internal/person"
	"github.com/kyunghwan/beans/validation"
)

func TestController(t *testing.T) {
	c := beans.NewCollection()
	require.NoError(t, c.AddModules(beans.ProvideInstance(zap.NewNop()), person.Module()))

	provider, err := c.Build()
	require.NoError(t, err)
	defer provider.Close()

	controller, err := beans.Resolve[*person.Controller](provider)
	require.NoError(t, err)
	require.NotNil(t, controller)

	repository, err := beans.Resolve[*person.Repository](provider)
	require.NoError(t, err)
	assert.Same(t, repository, controller.Repository(), "controller gets the singleton repository")

	t.Run("save", func(t *testing.T) {
		saved, err := controller.Save("kyunghwan")
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)

		found, ok := repository.Find(saved.ID)
		require.True(t, ok)
		assert.Equal(t, saved, found)
	})

	t.Run("blank name rejected", func(t *testing.T) {
		before := repository.Count()

		_, err := controller.Save("   ")
		assert.ErrorIs(t, err, validation.ErrValidationFailed)

		var reportErr *validation.ReportError
		require.ErrorAs(t, err, &reportErr)
		assert.Equal(t, "name", reportErr.Errors[0].Field)
		assert.Equal(t, before, repository.Count())
	})

	t.Run("long name rejected", func(t *testing.T) {
		_, err := controller.Save(strings.Repeat("x", 65))
		assert.ErrorIs(t, err, validation.ErrValidationFailed)
	})

	t.Run("all sorted by name", func(t *testing.T) {
		_, err := controller.Save("alice")
		require.NoError(t, err)

		all := repository.All()
		require.GreaterOrEqual(t, len(all), 2)
		assert.Equal(t, "alice", all[0].Name)
	})
}

func TestModuleNeedsLogger(t *testing.T) {
	c := beans.NewCollection()
	require.NoError(t, c.AddModules(person.Module()))

	_, err := c.Build()
	assert.ErrorIs(t, err, beans.ErrServiceNotFound)
}
