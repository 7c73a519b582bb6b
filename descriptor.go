package beans

import (
	"fmt"
	"reflect"
)

// Factory builds an instance of T. Dependencies are resolved explicitly
// from r; the factory should not keep r beyond the call unless it wraps it
// with Lazy.
type Factory[T any] func(r Resolver) (T, error)

// Descriptor describes one registration.
type Descriptor struct {
	// Type is the service type this descriptor produces
	Type reflect.Type

	// Key is optional - for named services
	Key any

	// Group this registration belongs to
	Group string

	// Lifetime determines instance caching behavior
	Lifetime Lifetime

	// IsInstance indicates the descriptor holds a prebuilt instance
	IsInstance bool

	// Instance is the prebuilt value when IsInstance is true
	Instance any

	factory func(r Resolver) (any, error)
}

// NewDescriptor creates a descriptor for a factory of T with the given lifetime and options.
func NewDescriptor[T any](lifetime Lifetime, factory Factory[T], opts ...AddOption) (*Descriptor, error) {
	serviceType := reflect.TypeFor[T]()

	if factory == nil {
		return nil, RegistrationError{
			ServiceType: serviceType,
			Operation:   "create-descriptor",
			Cause:       ErrConstructorNil,
		}
	}

	d, err := newDescriptor(serviceType, lifetime, opts)
	if err != nil {
		return nil, err
	}

	d.factory = func(r Resolver) (any, error) {
		instance, err := factory(r)
		if err != nil {
			return nil, err
		}
		return instance, nil
	}

	return d, nil
}

// NewInstanceDescriptor creates a singleton descriptor holding instance.
func NewInstanceDescriptor[T any](instance T, opts ...AddOption) (*Descriptor, error) {
	d, err := newDescriptor(reflect.TypeFor[T](), Singleton, opts)
	if err != nil {
		return nil, err
	}

	d.IsInstance = true
	d.Instance = instance
	return d, nil
}

func newDescriptor(serviceType reflect.Type, lifetime Lifetime, opts []AddOption) (*Descriptor, error) {
	if !lifetime.IsValid() {
		return nil, RegistrationError{
			ServiceType: serviceType,
			Operation:   "create-descriptor",
			Cause:       LifetimeError{Value: int(lifetime)},
		}
	}

	options := &addOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt.applyAddOption(options)
		}
	}

	if err := options.Validate(); err != nil {
		return nil, RegistrationError{
			ServiceType: serviceType,
			Operation:   "create-descriptor",
			Cause:       err,
		}
	}

	d := &Descriptor{
		Type:     serviceType,
		Group:    options.Group,
		Lifetime: lifetime,
	}
	if options.Name != "" {
		d.Key = options.Name
	}

	return d, nil
}

// String returns a short description such as "*Repository[shop.repositories] (Singleton)".
func (d *Descriptor) String() string {
	if d == nil {
		return "<nil>"
	}

	name := formatType(d.Type)
	switch {
	case d.Key != nil:
		name = fmt.Sprintf("%s(%v)", name, d.Key)
	case d.Group != "":
		name = fmt.Sprintf("%s[%s]", name, d.Group)
	}

	return fmt.Sprintf("%s (%s)", name, d.Lifetime)
}

// validateDescriptor validates a single descriptor
func validateDescriptor(d *Descriptor) error {
	if d == nil {
		return ErrDescriptorNil
	}

	if d.Type == nil {
		return ErrServiceTypeNil
	}

	if !d.IsInstance && d.factory == nil {
		return ErrConstructorNil
	}

	if d.IsInstance && d.Lifetime != Singleton {
		return fmt.Errorf("instance registration must be %s, got %s", Singleton, d.Lifetime)
	}

	if !d.Lifetime.IsValid() {
		return LifetimeError{Value: int(d.Lifetime)}
	}

	return nil
}

// An AddOption modifies the default behavior of AddSingleton, AddPrototype and AddInstance.
type AddOption interface {
	applyAddOption(*addOptions)
}

type addOptions struct {
	Name  string
	Group string
}

func (o *addOptions) Validate() error {
	if o.Group != "" && o.Name != "" {
		return fmt.Errorf("cannot use both beans.Name and beans.Group: name:%q provided with group:%q", o.Name, o.Group)
	}
	return nil
}

type nameOption string

func (o nameOption) applyAddOption(opts *addOptions) {
	opts.Name = string(o)
}

// Name registers the service under a name, so several implementations of
// one type can coexist. Resolve it with ResolveKeyed.
func Name(name string) AddOption {
	return nameOption(name)
}

type groupOption string

func (o groupOption) applyAddOption(opts *addOptions) {
	opts.Group = string(o)
}

// Group adds the service to a named group. Every member of the group is
// returned, in registration order, by ResolveGroup.
func Group(group string) AddOption {
	return groupOption(group)
}
