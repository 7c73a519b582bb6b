package beans_test

import (
	"errors"
	"fmt"

	"github.com/kyunghwan/beans"
)

type exampleRepository struct{ items []string }

type exampleController struct{ repository *exampleRepository }

func Example() {
	collection := beans.NewCollection()
	_ = beans.AddSingleton(collection, func(beans.Resolver) (*exampleRepository, error) {
		return &exampleRepository{items: []string{"apple", "pear"}}, nil
	})
	_ = beans.AddSingleton(collection, func(r beans.Resolver) (*exampleController, error) {
		repo, err := beans.Resolve[*exampleRepository](r)
		if err != nil {
			return nil, err
		}
		return &exampleController{repository: repo}, nil
	})

	provider, err := collection.Build()
	if err != nil {
		fmt.Println(err)
		return
	}
	defer provider.Close()

	controller := beans.MustResolve[*exampleController](provider)
	fmt.Println(controller.repository.items)
	// Output: [apple pear]
}

func ExampleResolveGroup() {
	type repository interface{ Name() string }

	collection := beans.NewCollection()
	_ = collection.AddModules(beans.NewModule("shop",
		beans.ProvideInstance[repository](exampleNamed("items"), beans.Group("repositories")),
		beans.ProvideInstance[repository](exampleNamed("orders"), beans.Group("repositories")),
	))

	provider, _ := collection.Build()
	defer provider.Close()

	repositories, _ := beans.ResolveGroup[repository](provider, "repositories")
	for _, r := range repositories {
		fmt.Println(r.Name())
	}
	// Output:
	// items
	// orders
}

type exampleNamed string

func (n exampleNamed) Name() string { return string(n) }

func ExampleLazy() {
	counter := 0

	collection := beans.NewCollection()
	_ = beans.AddPrototype(collection, func(beans.Resolver) (int, error) {
		counter++
		return counter, nil
	})

	provider, _ := collection.Build()
	defer provider.Close()

	next := beans.Lazy[int](provider)
	a, _ := next()
	b, _ := next()
	fmt.Println(a, b)
	// Output: 1 2
}

func ExampleCircularDependencyError() {
	type a struct{}
	type b struct{}

	collection := beans.NewCollection()
	_ = beans.AddSingleton(collection, func(r beans.Resolver) (*a, error) {
		_, err := beans.Resolve[*b](r)
		return &a{}, err
	})
	_ = beans.AddSingleton(collection, func(r beans.Resolver) (*b, error) {
		_, err := beans.Resolve[*a](r)
		return &b{}, err
	})

	_, err := collection.Build()

	var circular beans.CircularDependencyError
	if errors.As(err, &circular) {
		fmt.Println(circular.Path)
	}
	// Output: [*a (Singleton) *b (Singleton) *a (Singleton)]
}
