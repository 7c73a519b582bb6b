package beans

// ModuleOption represents a registration action within a module.
type ModuleOption func(Collection) error

// NewModule creates a new module with the given name and builders.
// Modules are a way to group related service registrations together.
//
// Example:
//
//	var ShopModule = beans.NewModule("shop",
//	    beans.ProvideSingleton(NewFirstRepository, beans.Group("shop.repositories")),
//	    beans.ProvideSingleton(NewSecondRepository, beans.Group("shop.repositories")),
//	    beans.ProvideSingleton(NewController),
//	)
//
//	var AppModule = beans.NewModule("app",
//	    ShopModule,
//	    beans.ProvidePrototype(NewProto),
//	)
func NewModule(name string, builders ...ModuleOption) ModuleOption {
	return func(c Collection) error {
		for _, builder := range builders {
			if builder == nil {
				continue
			}

			if err := builder(c); err != nil {
				return ModuleError{Module: name, Cause: err}
			}
		}

		return nil
	}
}

// ProvideSingleton creates a ModuleOption adding a singleton factory.
func ProvideSingleton[T any](factory Factory[T], opts ...AddOption) ModuleOption {
	return func(c Collection) error {
		return AddSingleton(c, factory, opts...)
	}
}

// ProvidePrototype creates a ModuleOption adding a prototype factory.
func ProvidePrototype[T any](factory Factory[T], opts ...AddOption) ModuleOption {
	return func(c Collection) error {
		return AddPrototype(c, factory, opts...)
	}
}

// Provide creates a ModuleOption adding factory with the given lifetime.
// It is useful when the lifetime comes from configuration.
func Provide[T any](lifetime Lifetime, factory Factory[T], opts ...AddOption) ModuleOption {
	return func(c Collection) error {
		return addFactory(c, lifetime, factory, opts)
	}
}

// ProvideInstance creates a ModuleOption adding a prebuilt singleton.
func ProvideInstance[T any](instance T, opts ...AddOption) ModuleOption {
	return func(c Collection) error {
		return AddInstance(c, instance, opts...)
	}
}
