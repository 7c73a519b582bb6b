package testutil

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/kyunghwan/beans"
)

// TestService is a plain service with a unique identity.
type TestService struct {
	ID    string
	Value int
}

// NewTestService is a factory for TestService.
func NewTestService(beans.Resolver) (*TestService, error) {
	return &TestService{ID: uuid.NewString(), Value: 42}, nil
}

// TestRepository is a dependency of TestController.
type TestRepository struct {
	ID string
}

// NewTestRepository is a factory for TestRepository.
func NewTestRepository(beans.Resolver) (*TestRepository, error) {
	return &TestRepository{ID: uuid.NewString()}, nil
}

// TestController depends on TestRepository.
type TestController struct {
	Repository *TestRepository
}

// NewTestController resolves its repository from r.
func NewTestController(r beans.Resolver) (*TestController, error) {
	repo, err := beans.Resolve[*TestRepository](r)
	if err != nil {
		return nil, err
	}
	return &TestController{Repository: repo}, nil
}

// TestHandler is implemented by group members.
type TestHandler interface {
	Handle() string
}

type namedHandler string

func (h namedHandler) Handle() string { return string(h) }

// NewTestHandler returns a factory for a handler answering name.
func NewTestHandler(name string) beans.Factory[TestHandler] {
	return func(beans.Resolver) (TestHandler, error) {
		return namedHandler(name), nil
	}
}

// CloseRecorder records the order in which TestDisposables are closed.
type CloseRecorder struct {
	mu    sync.Mutex
	order []string
}

// Order returns the names closed so far.
func (r *CloseRecorder) Order() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.order...)
}

func (r *CloseRecorder) record(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.order = append(r.order, name)
}

// TestDisposable tracks whether it was closed.
type TestDisposable struct {
	Name     string
	recorder *CloseRecorder
	err      error

	mu     sync.Mutex
	closes int
}

// NewTestDisposable creates a TestDisposable reporting to recorder, which may be nil.
func NewTestDisposable(name string, recorder *CloseRecorder) *TestDisposable {
	return &TestDisposable{Name: name, recorder: recorder}
}

// NewTestDisposableWithError creates a TestDisposable whose Close fails.
func NewTestDisposableWithError(name string, err error) *TestDisposable {
	if err == nil {
		err = errors.New("close failed")
	}
	return &TestDisposable{Name: name, err: err}
}

// Close implements beans.Disposable.
func (d *TestDisposable) Close() error {
	d.mu.Lock()
	d.closes++
	d.mu.Unlock()

	if d.recorder != nil {
		d.recorder.record(d.Name)
	}
	return d.err
}

// Closes returns how many times Close was called.
func (d *TestDisposable) Closes() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closes
}

// IsDisposed reports whether Close was called.
func (d *TestDisposable) IsDisposed() bool {
	return d.Closes() > 0
}

// CircularServiceA and CircularServiceB depend on each other.
type (
	CircularServiceA struct{ B *CircularServiceB }
	CircularServiceB struct{ A *CircularServiceA }
)

// NewCircularServiceA resolves CircularServiceB.
func NewCircularServiceA(r beans.Resolver) (*CircularServiceA, error) {
	b, err := beans.Resolve[*CircularServiceB](r)
	if err != nil {
		return nil, err
	}
	return &CircularServiceA{B: b}, nil
}

// NewCircularServiceB resolves CircularServiceA.
func NewCircularServiceB(r beans.Resolver) (*CircularServiceB, error) {
	a, err := beans.Resolve[*CircularServiceA](r)
	if err != nil {
		return nil, err
	}
	return &CircularServiceB{A: a}, nil
}
