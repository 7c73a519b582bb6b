package beans

import (
	"reflect"
	"runtime/debug"

	"go.uber.org/zap"
)

// resolution is one link of a resolution chain. Each factory call receives
// a child resolution, so the chain records the path used for cycle detection.
// Resolutions are immutable and may be kept by factories.
type resolution struct {
	provider   *provider
	parent     *resolution
	descriptor *Descriptor
}

var _ Resolver = (*resolution)(nil)

func (r *resolution) Get(serviceType reflect.Type) (any, error) {
	return r.GetKeyed(serviceType, nil)
}

func (r *resolution) GetKeyed(serviceType reflect.Type, key any) (any, error) {
	if r.provider.disposed.Load() {
		return nil, ErrProviderDisposed
	}

	if serviceType == nil {
		return nil, ErrServiceTypeNil
	}

	d, ok := r.provider.services[TypeKey{Type: serviceType, Key: key}]
	if !ok {
		return nil, ResolutionError{
			ServiceType: serviceType,
			ServiceKey:  key,
			Cause:       ErrServiceNotFound,
			Available:   r.provider.registeredTypes(),
		}
	}

	return r.instance(d)
}

func (r *resolution) GetGroup(serviceType reflect.Type, group string) ([]any, error) {
	if r.provider.disposed.Load() {
		return nil, ErrProviderDisposed
	}

	if serviceType == nil {
		return nil, ErrServiceTypeNil
	}

	if group == "" {
		return nil, ResolutionError{
			ServiceType: serviceType,
			Cause:       ErrGroupNameEmpty,
		}
	}

	descriptors := r.provider.groups[GroupKey{Type: serviceType, Group: group}]
	instances := make([]any, 0, len(descriptors))
	for _, d := range descriptors {
		instance, err := r.instance(d)
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}

	return instances, nil
}

// instance returns the singleton for d or runs its factory.
func (r *resolution) instance(d *Descriptor) (any, error) {
	p := r.provider

	if d.Lifetime == Singleton {
		if instance, ok := p.singletons[d]; ok {
			return instance, nil
		}
		if !p.building.Load() {
			return nil, ResolutionError{
				ServiceType: d.Type,
				ServiceKey:  d.Key,
				Cause:       ErrSingletonNotInitialized,
			}
		}
	}

	if path := r.cycle(d); path != nil {
		return nil, CircularDependencyError{Path: path}
	}

	var (
		instance any
		err      error
	)
	if d.IsInstance {
		instance = d.Instance
	} else {
		instance, err = invoke(d, &resolution{provider: p, parent: r, descriptor: d})
		if err != nil {
			return nil, err
		}
	}

	if d.Lifetime == Singleton {
		p.singletons[d] = instance
		p.created = append(p.created, d)
		p.logger.Debug("singleton created", zap.Stringer("service", d))
	}

	return instance, nil
}

// cycle returns the dependency path when d is already being resolved.
func (r *resolution) cycle(d *Descriptor) []string {
	var chain []*Descriptor
	found := false
	for link := r; link != nil && link.descriptor != nil; link = link.parent {
		chain = append(chain, link.descriptor)
		if link.descriptor == d {
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	path := make([]string, 0, len(chain)+1)
	for i := len(chain) - 1; i >= 0; i-- {
		path = append(path, chain[i].String())
	}
	return append(path, d.String())
}

// invoke runs the factory, converting panics into ConstructorPanicError.
func invoke(d *Descriptor, r Resolver) (instance any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			instance = nil
			err = ConstructorPanicError{
				ServiceType: d.Type,
				Panic:       rec,
				Stack:       debug.Stack(),
			}
		}
	}()

	instance, err = d.factory(r)
	if err != nil {
		return nil, ConstructorInvocationError{
			ServiceType: d.Type,
			ServiceKey:  d.Key,
			Cause:       err,
		}
	}

	return instance, nil
}
