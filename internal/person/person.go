// Package person shows constructor injection: Controller receives its
// Repository as a constructor parameter.
package person

import (
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kyunghwan/beans"
	"github.com/kyunghwan/beans/validation"
)

// Person is a saved record.
type Person struct {
	ID   string
	Name string
}

var rules = validation.NewRules("person",
	validation.NotBlank("name", func(p *Person) string { return p.Name }),
	validation.Size("name", func(p *Person) string { return p.Name }, 1, 64),
)

// Repository stores people in memory.
type Repository struct {
	mu     sync.RWMutex
	people map[string]Person
	logger *zap.Logger
}

// NewRepository creates an empty Repository.
func NewRepository(logger *zap.Logger) *Repository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Repository{
		people: make(map[string]Person),
		logger: logger,
	}
}

// Save stores p under a new ID and returns the stored record.
func (r *Repository) Save(p Person) Person {
	p.ID = uuid.NewString()

	r.mu.Lock()
	r.people[p.ID] = p
	r.mu.Unlock()

	r.logger.Debug("person saved", zap.String("id", p.ID), zap.String("name", p.Name))
	return p
}

// Find returns the person with the given ID.
func (r *Repository) Find(id string) (Person, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.people[id]
	return p, ok
}

// All returns every person ordered by name.
func (r *Repository) All() []Person {
	r.mu.RLock()
	out := make([]Person, 0, len(r.people))
	for _, p := range r.people {
		out = append(out, p)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Count returns the number of stored people.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.people)
}

// Controller saves people through its Repository.
type Controller struct {
	repository *Repository
}

// NewController creates a Controller.
func NewController(repository *Repository) *Controller {
	return &Controller{repository: repository}
}

// Save validates and stores a person. A rejected name is reported as a
// *validation.ReportError.
func (c *Controller) Save(name string) (Person, error) {
	p := &Person{Name: name}

	errs, err := validation.ValidateObject(rules, p, "person")
	if err != nil {
		return Person{}, err
	}
	if err := errs.Err(); err != nil {
		return Person{}, err
	}

	return c.repository.Save(*p), nil
}

// Repository returns the injected repository.
func (c *Controller) Repository() *Repository {
	return c.repository
}

// Module registers the Repository and Controller as singletons.
// It needs a *zap.Logger in the container.
func Module() beans.ModuleOption {
	return beans.NewModule("person",
		beans.ProvideSingleton(func(r beans.Resolver) (*Repository, error) {
			logger, err := beans.Resolve[*zap.Logger](r)
			if err != nil {
				return nil, err
			}
			return NewRepository(logger), nil
		}),
		beans.ProvideSingleton(func(r beans.Resolver) (*Controller, error) {
			repository, err := beans.Resolve[*Repository](r)
			if err != nil {
				return nil, err
			}
			return NewController(repository), nil
		}),
	)
}
