package beans

import (
	"fmt"
	"reflect"
)

// Resolve resolves the unnamed service of type T.
//
// Example:
//
//	controller, err := beans.Resolve[*person.Controller](provider)
func Resolve[T any](r Resolver) (T, error) {
	var zero T
	if r == nil {
		return zero, ErrProviderNil
	}

	instance, err := r.Get(reflect.TypeFor[T]())
	if err != nil {
		return zero, err
	}

	return cast[T](instance, "resolve")
}

// MustResolve resolves the unnamed service of type T and panics on failure.
func MustResolve[T any](r Resolver) T {
	instance, err := Resolve[T](r)
	if err != nil {
		panic(fmt.Sprintf("beans: %v", err))
	}
	return instance
}

// ResolveKeyed resolves the service of type T registered with Name(key).
func ResolveKeyed[T any](r Resolver, key any) (T, error) {
	var zero T
	if r == nil {
		return zero, ErrProviderNil
	}

	if key == nil {
		return zero, ErrServiceKeyNil
	}

	instance, err := r.GetKeyed(reflect.TypeFor[T](), key)
	if err != nil {
		return zero, err
	}

	return cast[T](instance, "resolve keyed")
}

// ResolveGroup resolves every member of group registered as T, in
// registration order. An unknown group yields an empty slice.
func ResolveGroup[T any](r Resolver, group string) ([]T, error) {
	if r == nil {
		return nil, ErrProviderNil
	}

	instances, err := r.GetGroup(reflect.TypeFor[T](), group)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, len(instances))
	for _, instance := range instances {
		typed, err := cast[T](instance, "resolve group")
		if err != nil {
			return nil, err
		}
		out = append(out, typed)
	}

	return out, nil
}

// Lazy returns a function resolving T on every call. A singleton holding a
// prototype keeps the function instead of an instance to get a fresh
// prototype each time.
func Lazy[T any](r Resolver) func() (T, error) {
	return func() (T, error) {
		return Resolve[T](r)
	}
}

func cast[T any](instance any, context string) (T, error) {
	var zero T
	if instance == nil {
		return zero, nil
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, TypeMismatchError{
			Expected: reflect.TypeFor[T](),
			Actual:   reflect.TypeOf(instance),
			Context:  context,
		}
	}

	return typed, nil
}
