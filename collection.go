package beans

import (
	"reflect"
	"sync"
)

// Collection holds the registrations that make up a container.
//
// Collection follows a builder pattern: services are registered with their
// lifetimes, then built into a Provider. A Collection should be configured
// in a single goroutine before building.
//
// Example:
//
//	collection := beans.NewCollection()
//	beans.AddSingleton(collection, NewRepository)
//	beans.AddPrototype(collection, NewProto)
//
//	provider, err := collection.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
type Collection interface {
	// Build creates a Provider from the registered services
	// using default options.
	Build() (Provider, error)

	// BuildWithOptions creates a Provider with custom options.
	BuildWithOptions(options *ProviderOptions) (Provider, error)

	// AddModules applies one or more module configurations to the collection.
	AddModules(modules ...ModuleOption) error

	// Add registers a descriptor created with NewDescriptor or NewInstanceDescriptor.
	Add(descriptor *Descriptor) error

	// Contains checks if an unnamed service type is registered.
	Contains(serviceType reflect.Type) bool

	// ContainsKeyed checks if a named service is registered.
	ContainsKeyed(serviceType reflect.Type, key any) bool

	// ContainsGroup checks if a group has at least one member.
	ContainsGroup(serviceType reflect.Type, group string) bool

	// ToSlice returns a copy of all descriptors in registration order.
	ToSlice() []*Descriptor

	// Count returns the number of registered services.
	Count() int
}

// TypeKey uniquely identifies an unnamed (Key == nil) or named service
type TypeKey struct {
	Type reflect.Type
	Key  any
}

// GroupKey uniquely identifies a group of services
type GroupKey struct {
	Type  reflect.Type
	Group string
}

type collection struct {
	mu sync.RWMutex

	// services stores unnamed and named services
	services map[TypeKey]*Descriptor

	// groups stores services that belong to groups, in registration order
	groups map[GroupKey][]*Descriptor

	// order keeps every descriptor in registration order
	order []*Descriptor
}

// NewCollection creates a new empty Collection instance.
func NewCollection() Collection {
	return &collection{
		services: make(map[TypeKey]*Descriptor),
		groups:   make(map[GroupKey][]*Descriptor),
	}
}

// AddSingleton registers factory with singleton lifetime.
func AddSingleton[T any](c Collection, factory Factory[T], opts ...AddOption) error {
	return addFactory(c, Singleton, factory, opts)
}

// AddPrototype registers factory with prototype lifetime.
func AddPrototype[T any](c Collection, factory Factory[T], opts ...AddOption) error {
	return addFactory(c, Prototype, factory, opts)
}

// AddInstance registers an already built singleton. The provider does not
// dispose instances registered this way.
func AddInstance[T any](c Collection, instance T, opts ...AddOption) error {
	d, err := NewInstanceDescriptor(instance, opts...)
	if err != nil {
		return err
	}
	return c.Add(d)
}

func addFactory[T any](c Collection, lifetime Lifetime, factory Factory[T], opts []AddOption) error {
	d, err := NewDescriptor(lifetime, factory, opts...)
	if err != nil {
		return err
	}
	return c.Add(d)
}

// Build creates a Provider from the registered services using default options.
func (c *collection) Build() (Provider, error) {
	return c.BuildWithOptions(nil)
}

// BuildWithOptions creates a Provider with custom options.
func (c *collection) BuildWithOptions(options *ProviderOptions) (Provider, error) {
	c.mu.RLock()
	services := make(map[TypeKey]*Descriptor, len(c.services))
	for k, d := range c.services {
		services[k] = d
	}
	groups := make(map[GroupKey][]*Descriptor, len(c.groups))
	for k, ds := range c.groups {
		groups[k] = append([]*Descriptor(nil), ds...)
	}
	order := append([]*Descriptor(nil), c.order...)
	c.mu.RUnlock()

	return newProvider(services, groups, order, options)
}

// AddModules applies one or more module configurations to the collection.
func (c *collection) AddModules(modules ...ModuleOption) error {
	for _, module := range modules {
		if module == nil {
			continue
		}

		if err := module(c); err != nil {
			return err
		}
	}

	return nil
}

// Add registers a descriptor.
func (c *collection) Add(d *Descriptor) error {
	if err := validateDescriptor(d); err != nil {
		var serviceType reflect.Type
		if d != nil {
			serviceType = d.Type
		}
		return RegistrationError{
			ServiceType: serviceType,
			Operation:   "validate-descriptor",
			Cause:       err,
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if d.Group != "" {
		key := GroupKey{Type: d.Type, Group: d.Group}
		c.groups[key] = append(c.groups[key], d)
		c.order = append(c.order, d)
		return nil
	}

	key := TypeKey{Type: d.Type, Key: d.Key}
	if _, exists := c.services[key]; exists {
		return AlreadyRegisteredError{ServiceType: d.Type, ServiceKey: d.Key}
	}

	c.services[key] = d
	c.order = append(c.order, d)
	return nil
}

// Contains checks if an unnamed service type is registered in the collection.
func (c *collection) Contains(serviceType reflect.Type) bool {
	return c.ContainsKeyed(serviceType, nil)
}

// ContainsKeyed checks if a named service is registered in the collection.
func (c *collection) ContainsKeyed(serviceType reflect.Type, key any) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, exists := c.services[TypeKey{Type: serviceType, Key: key}]
	return exists
}

// ContainsGroup checks if a group has any services
func (c *collection) ContainsGroup(serviceType reflect.Type, group string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.groups[GroupKey{Type: serviceType, Group: group}]) > 0
}

// ToSlice returns a copy of all registered service descriptors
func (c *collection) ToSlice() []*Descriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return append([]*Descriptor(nil), c.order...)
}

// Count returns the number of registered services in the collection.
func (c *collection) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.order)
}
