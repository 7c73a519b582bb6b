package testutil

import (
	"errors"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyunghwan/beans"
)

// AssertServiceResolvable checks if a service can be resolved
func AssertServiceResolvable[T any](t *testing.T, r beans.Resolver) T {
	t.Helper()
	service, err := beans.Resolve[T](r)
	require.NoError(t, err, "failed to resolve service of type %s", reflect.TypeFor[T]())
	require.NotNil(t, service, "resolved service is nil")
	return service
}

// AssertKeyedServiceResolvable checks if a named service can be resolved
func AssertKeyedServiceResolvable[T any](t *testing.T, r beans.Resolver, key any) T {
	t.Helper()
	service, err := beans.ResolveKeyed[T](r, key)
	require.NoError(t, err, "failed to resolve service of type %s with name %v", reflect.TypeFor[T](), key)
	require.NotNil(t, service, "resolved keyed service is nil")
	return service
}

// AssertServiceNotFound checks if resolution fails with ErrServiceNotFound
func AssertServiceNotFound[T any](t *testing.T, r beans.Resolver) {
	t.Helper()
	_, err := beans.Resolve[T](r)
	assert.ErrorIs(t, err, beans.ErrServiceNotFound)
}

// AssertCircularDependency checks if an error carries a CircularDependencyError
// and returns its path.
func AssertCircularDependency(t *testing.T, err error) []string {
	t.Helper()
	var circular beans.CircularDependencyError
	require.True(t, errors.As(err, &circular), "expected circular dependency error, got: %v", err)
	require.NotEmpty(t, circular.Path)
	return circular.Path
}

// AssertProviderDisposed checks if operations on a closed provider fail correctly
func AssertProviderDisposed(t *testing.T, provider beans.Provider) {
	t.Helper()

	_, err := provider.Get(reflect.TypeFor[any]())
	assert.ErrorIs(t, err, beans.ErrProviderDisposed)

	_, err = provider.GetKeyed(reflect.TypeFor[any](), "key")
	assert.ErrorIs(t, err, beans.ErrProviderDisposed)

	_, err = provider.GetGroup(reflect.TypeFor[any](), "group")
	assert.ErrorIs(t, err, beans.ErrProviderDisposed)
}

// AssertErrorType checks if an error is of a specific type
func AssertErrorType[T error](t *testing.T, err error, msgAndArgs ...any) T {
	t.Helper()
	var target T
	assert.ErrorAs(t, err, &target, msgAndArgs...)
	return target
}
