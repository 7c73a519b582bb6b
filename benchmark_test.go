package beans_test

import (
	"testing"

	"github.com/samber/do/v2"
	"go.uber.org/dig"

	"github.com/kyunghwan/beans"
)

// Benchmark types: a repository, a validator and a controller depending on both.
type (
	benchRepository struct{ name string }
	benchValidator  struct{ code string }
	benchController struct {
		repository *benchRepository
		validator  *benchValidator
	}
)

func newBenchRepository() *benchRepository { return &benchRepository{name: "events"} }
func newBenchValidator() *benchValidator   { return &benchValidator{code: "NotEmpty"} }
func newBenchController(r *benchRepository, v *benchValidator) *benchController {
	return &benchController{repository: r, validator: v}
}

func benchModule(lifetime beans.Lifetime) beans.ModuleOption {
	return beans.NewModule("bench",
		beans.ProvideSingleton(func(beans.Resolver) (*benchRepository, error) {
			return newBenchRepository(), nil
		}),
		beans.Provide(lifetime, func(beans.Resolver) (*benchValidator, error) {
			return newBenchValidator(), nil
		}),
		beans.Provide(lifetime, func(r beans.Resolver) (*benchController, error) {
			repository, err := beans.Resolve[*benchRepository](r)
			if err != nil {
				return nil, err
			}
			validator, err := beans.Resolve[*benchValidator](r)
			if err != nil {
				return nil, err
			}
			return newBenchController(repository, validator), nil
		}),
	)
}

func buildBench(b *testing.B, lifetime beans.Lifetime) beans.Provider {
	b.Helper()

	c := beans.NewCollection()
	if err := c.AddModules(benchModule(lifetime)); err != nil {
		b.Fatal(err)
	}
	p, err := c.Build()
	if err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = p.Close() })
	return p
}

// =============================================================================
// Build
// =============================================================================

func BenchmarkBuild_Beans(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := beans.NewCollection()
		_ = c.AddModules(benchModule(beans.Singleton))
		p, _ := c.Build()
		_ = p.Close()
	}
}

func BenchmarkBuild_Dig(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		c := dig.New()
		_ = c.Provide(newBenchRepository)
		_ = c.Provide(newBenchValidator)
		_ = c.Provide(newBenchController)
	}
}

func BenchmarkBuild_Do(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		injector := do.New()
		do.Provide(injector, func(do.Injector) (*benchRepository, error) { return newBenchRepository(), nil })
		do.Provide(injector, func(do.Injector) (*benchValidator, error) { return newBenchValidator(), nil })
		do.Provide(injector, func(i do.Injector) (*benchController, error) {
			return newBenchController(do.MustInvoke[*benchRepository](i), do.MustInvoke[*benchValidator](i)), nil
		})
		injector.Shutdown()
	}
}

// =============================================================================
// Singleton resolution
// =============================================================================

func BenchmarkResolve_Singleton_Beans(b *testing.B) {
	p := buildBench(b, beans.Singleton)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = beans.MustResolve[*benchController](p)
	}
}

func BenchmarkResolve_Singleton_Dig(b *testing.B) {
	c := dig.New()
	_ = c.Provide(newBenchRepository)
	_ = c.Provide(newBenchValidator)
	_ = c.Provide(newBenchController)

	// Warm up
	_ = c.Invoke(func(*benchController) {})

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = c.Invoke(func(*benchController) {})
	}
}

func BenchmarkResolve_Singleton_Do(b *testing.B) {
	injector := do.New()
	do.Provide(injector, func(do.Injector) (*benchRepository, error) { return newBenchRepository(), nil })
	do.Provide(injector, func(do.Injector) (*benchValidator, error) { return newBenchValidator(), nil })
	do.Provide(injector, func(i do.Injector) (*benchController, error) {
		return newBenchController(do.MustInvoke[*benchRepository](i), do.MustInvoke[*benchValidator](i)), nil
	})
	defer injector.Shutdown()

	// Warm up
	_ = do.MustInvoke[*benchController](injector)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = do.MustInvoke[*benchController](injector)
	}
}

// =============================================================================
// Prototype resolution
// =============================================================================

func BenchmarkResolve_Prototype_Beans(b *testing.B) {
	p := buildBench(b, beans.Prototype)

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = beans.MustResolve[*benchController](p)
	}
}

func BenchmarkResolve_Prototype_Do(b *testing.B) {
	injector := do.New()
	do.Provide(injector, func(do.Injector) (*benchRepository, error) { return newBenchRepository(), nil })
	do.ProvideTransient(injector, func(do.Injector) (*benchValidator, error) { return newBenchValidator(), nil })
	do.ProvideTransient(injector, func(i do.Injector) (*benchController, error) {
		return newBenchController(do.MustInvoke[*benchRepository](i), do.MustInvoke[*benchValidator](i)), nil
	})
	defer injector.Shutdown()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = do.MustInvoke[*benchController](injector)
	}
}

// Dig has no per-lookup lifetime.

// =============================================================================
// Concurrent resolution
// =============================================================================

func BenchmarkResolve_Concurrent_Beans(b *testing.B) {
	p := buildBench(b, beans.Singleton)

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = beans.MustResolve[*benchController](p)
		}
	})
}

func BenchmarkResolve_Concurrent_Dig(b *testing.B) {
	c := dig.New()
	_ = c.Provide(newBenchRepository)
	_ = c.Provide(newBenchValidator)
	_ = c.Provide(newBenchController)
	_ = c.Invoke(func(*benchController) {})

	b.ResetTimer()
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = c.Invoke(func(*benchController) {})
		}
	})
}
