// Package student registers three controllers sharing one Repository.
// All of them receive the repository as a constructor parameter.
package student

import (
	"slices"
	"sync"

	"github.com/kyunghwan/beans"
)

// Repository keeps enrolled student names.
type Repository struct {
	mu       sync.Mutex
	students []string
}

// NewRepository creates an empty Repository.
func NewRepository() *Repository {
	return &Repository{}
}

// Enroll adds a student.
func (r *Repository) Enroll(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.students = append(r.students, name)
}

// Students returns enrolled students in enrollment order.
func (r *Repository) Students() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return slices.Clone(r.students)
}

// AController enrolls students.
type AController struct {
	repository *Repository
}

// NewAController creates an AController.
func NewAController(repository *Repository) *AController {
	return &AController{repository: repository}
}

// Enroll adds a student.
func (c *AController) Enroll(name string) {
	c.repository.Enroll(name)
}

// BController lists students.
type BController struct {
	repository *Repository
}

// NewBController creates a BController.
func NewBController(repository *Repository) *BController {
	return &BController{repository: repository}
}

// Students returns enrolled students.
func (c *BController) Students() []string {
	return c.repository.Students()
}

// CController counts students.
type CController struct {
	repository *Repository
}

// NewCController creates a CController.
func NewCController(repository *Repository) *CController {
	return &CController{repository: repository}
}

// Count returns the number of enrolled students.
func (c *CController) Count() int {
	return len(c.repository.Students())
}

// Module registers the Repository and the three controllers as singletons.
func Module() beans.ModuleOption {
	return beans.NewModule("student",
		beans.ProvideSingleton(func(beans.Resolver) (*Repository, error) {
			return NewRepository(), nil
		}),
		beans.ProvideSingleton(withRepository(NewAController)),
		beans.ProvideSingleton(withRepository(NewBController)),
		beans.ProvideSingleton(withRepository(NewCController)),
	)
}

func withRepository[T any](constructor func(*Repository) T) beans.Factory[T] {
	return func(r beans.Resolver) (T, error) {
		repository, err := beans.Resolve[*Repository](r)
		if err != nil {
			var zero T
			return zero, err
		}
		return constructor(repository), nil
	}
}
