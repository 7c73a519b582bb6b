// Package beans provides a small, explicit bean container.
//
// # Overview
//
// Services are registered as typed factory functions with one of two
// lifetimes, built into a Provider and resolved by type:
//
//   - Singleton: one instance per provider, created when the provider is built
//   - Prototype: a new instance on every lookup, owned by the caller
//
// There are no struct tags and no hidden injection points. A factory takes a
// Resolver and fetches its dependencies explicitly, then passes them to a
// plain constructor:
//
//	collection := beans.NewCollection()
//	beans.AddSingleton(collection, func(r beans.Resolver) (*Repository, error) {
//	    return NewRepository(), nil
//	})
//	beans.AddSingleton(collection, func(r beans.Resolver) (*Controller, error) {
//	    repo, err := beans.Resolve[*Repository](r)
//	    if err != nil {
//	        return nil, err
//	    }
//	    return NewController(repo), nil
//	})
//
//	provider, err := collection.Build()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer provider.Close()
//
//	controller, err := beans.Resolve[*Controller](provider)
//
// # Named Services
//
// Register several implementations of one type with Name and pick one with
// ResolveKeyed:
//
//	beans.AddSingleton(collection, NewManualValidator, beans.Name("manual"))
//	beans.AddSingleton(collection, NewRulesValidator, beans.Name("rules"))
//
//	v, err := beans.ResolveKeyed[validation.Validator](provider, "rules")
//
// # Groups
//
// Group collects every registration of a type under one name. ResolveGroup
// returns them in registration order, which is how a controller receives
// "all repositories":
//
//	beans.AddSingleton(collection, NewFirstRepository, beans.Group("repositories"))
//	beans.AddSingleton(collection, NewSecondRepository, beans.Group("repositories"))
//
//	repos, err := beans.ResolveGroup[Repository](provider, "repositories")
//
// # Singletons Holding Prototypes
//
// A singleton that needs a fresh prototype per use keeps a Lazy function
// rather than an instance:
//
//	beans.AddSingleton(collection, func(r beans.Resolver) (*Single, error) {
//	    return NewSingle(beans.Lazy[*Proto](r)), nil
//	})
//
// # Modules
//
// Organize registrations into reusable modules:
//
//	var ShopModule = beans.NewModule("shop",
//	    beans.ProvideSingleton(NewFirstRepository, beans.Group("repositories")),
//	    beans.ProvideSingleton(NewController),
//	)
//
//	collection.AddModules(ShopModule)
//
// # Errors
//
// Failures are reported with typed errors that wrap sentinel errors, so
// errors.Is and errors.As work across the chain:
//
//	_, err := beans.Resolve[*Missing](provider)
//	if errors.Is(err, beans.ErrServiceNotFound) {
//	    // ...
//	}
//
// Dependency cycles are reported as CircularDependencyError, factory panics
// as ConstructorPanicError.
package beans
