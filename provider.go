package beans

import (
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Resolver looks up services. Factories receive a Resolver to fetch their
// dependencies.
type Resolver interface {
	// Get resolves the unnamed service of the specified type.
	Get(serviceType reflect.Type) (any, error)

	// GetKeyed resolves a named service of the specified type.
	GetKeyed(serviceType reflect.Type, key any) (any, error)

	// GetGroup resolves every member of a group, in registration order.
	GetGroup(serviceType reflect.Type, group string) ([]any, error)
}

// Provider is a built container.
type Provider interface {
	Disposable
	Resolver

	// ID returns the unique identifier for this provider instance.
	ID() string

	// IsService reports whether an unnamed service of the type is registered.
	IsService(serviceType reflect.Type) bool

	// IsKeyedService reports whether a named service is registered.
	IsKeyedService(serviceType reflect.Type, key any) bool
}

// ProviderOptions configures BuildWithOptions.
type ProviderOptions struct {
	// Logger receives debug logs about singleton creation and disposal.
	// Defaults to a no-op logger.
	Logger *zap.Logger
}

// provider is the concrete implementation of Provider
type provider struct {
	id     string
	logger *zap.Logger

	// Service registry (immutable after build)
	services map[TypeKey]*Descriptor
	groups   map[GroupKey][]*Descriptor

	// Singleton instances, written only while building
	singletons map[*Descriptor]any
	created    []*Descriptor
	building   atomic.Bool

	closeOnce sync.Once
	closeErr  error
	disposed  atomic.Bool
}

func newProvider(
	services map[TypeKey]*Descriptor,
	groups map[GroupKey][]*Descriptor,
	order []*Descriptor,
	options *ProviderOptions,
) (*provider, error) {
	if options == nil {
		options = &ProviderOptions{}
	}

	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	p := &provider{
		id:         uuid.NewString(),
		services:   services,
		groups:     groups,
		singletons: make(map[*Descriptor]any),
	}
	p.logger = logger.With(zap.String("provider", p.id))

	p.building.Store(true)
	root := &resolution{provider: p}
	for _, d := range order {
		if d.Lifetime != Singleton {
			continue
		}

		if _, err := root.instance(d); err != nil {
			// Release whatever was already created.
			_ = p.Close()
			return nil, BuildError{
				Phase:   "singleton-creation",
				Details: d.String(),
				Cause:   err,
			}
		}
	}
	p.building.Store(false)

	p.logger.Debug("provider built",
		zap.Int("services", len(order)),
		zap.Int("singletons", len(p.created)),
	)

	return p, nil
}

// ID returns the unique identifier for the provider.
func (p *provider) ID() string {
	return p.id
}

// Get resolves an unnamed service
func (p *provider) Get(serviceType reflect.Type) (any, error) {
	return (&resolution{provider: p}).Get(serviceType)
}

// GetKeyed resolves a named service
func (p *provider) GetKeyed(serviceType reflect.Type, key any) (any, error) {
	return (&resolution{provider: p}).GetKeyed(serviceType, key)
}

// GetGroup resolves all services in a group
func (p *provider) GetGroup(serviceType reflect.Type, group string) ([]any, error) {
	return (&resolution{provider: p}).GetGroup(serviceType, group)
}

// IsService reports whether an unnamed service is registered.
func (p *provider) IsService(serviceType reflect.Type) bool {
	_, ok := p.services[TypeKey{Type: serviceType}]
	return ok
}

// IsKeyedService reports whether a named service is registered.
func (p *provider) IsKeyedService(serviceType reflect.Type, key any) bool {
	_, ok := p.services[TypeKey{Type: serviceType, Key: key}]
	return ok
}

// Close disposes singletons in reverse creation order. Prototypes are owned
// by their callers and are not closed. Close is idempotent.
func (p *provider) Close() error {
	p.closeOnce.Do(func() {
		p.disposed.Store(true)

		var errs []error
		for i := len(p.created) - 1; i >= 0; i-- {
			d := p.created[i]
			if d.IsInstance {
				continue
			}

			disposable, ok := p.singletons[d].(Disposable)
			if !ok {
				continue
			}

			if err := disposable.Close(); err != nil {
				errs = append(errs, fmt.Errorf("singleton %s: %w", d, err))
				continue
			}
			p.logger.Debug("singleton disposed", zap.Stringer("service", d))
		}

		if len(errs) > 0 {
			p.closeErr = DisposalError{
				Context: "provider",
				Errors:  errs,
			}
		}
	})

	return p.closeErr
}

// registeredTypes lists registered types for error suggestions.
func (p *provider) registeredTypes() []reflect.Type {
	seen := make(map[reflect.Type]struct{})
	var types []reflect.Type
	for key := range p.services {
		if _, ok := seen[key.Type]; !ok {
			seen[key.Type] = struct{}{}
			types = append(types, key.Type)
		}
	}
	for key := range p.groups {
		if _, ok := seen[key.Type]; !ok {
			seen[key.Type] = struct{}{}
			types = append(types, key.Type)
		}
	}
	return types
}
