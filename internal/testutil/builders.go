package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kyunghwan/beans"
)

// CollectionBuilder provides a fluent interface for building test collections
type CollectionBuilder struct {
	t          *testing.T
	collection beans.Collection
}

// NewCollectionBuilder creates a new CollectionBuilder
func NewCollectionBuilder(t *testing.T) *CollectionBuilder {
	return &CollectionBuilder{
		t:          t,
		collection: beans.NewCollection(),
	}
}

// WithModule adds modules such as beans.ProvideSingleton to the collection
func (b *CollectionBuilder) WithModule(modules ...beans.ModuleOption) *CollectionBuilder {
	require.NoError(b.t, b.collection.AddModules(modules...))
	return b
}

// Collection returns the underlying collection
func (b *CollectionBuilder) Collection() beans.Collection {
	return b.collection
}

// BuildProvider builds a Provider and closes it when the test ends
func (b *CollectionBuilder) BuildProvider(opts ...*beans.ProviderOptions) beans.Provider {
	b.t.Helper()

	var options *beans.ProviderOptions
	if len(opts) > 0 {
		options = opts[0]
	}

	provider, err := b.collection.BuildWithOptions(options)
	require.NoError(b.t, err, "failed to build provider")

	b.t.Cleanup(func() {
		_ = provider.Close()
	})

	return provider
}
