// Package shop shows collection injection: Controller receives every
// Repository registered in the RepositoriesGroup.
package shop

import (
	"fmt"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/kyunghwan/beans"
)

// RepositoriesGroup is the group every shop Repository joins.
const RepositoriesGroup = "shop.repositories"

// Repository is implemented by every shop repository.
type Repository interface {
	Name() string
}

// ItemRepository stores shop items.
type ItemRepository struct{}

// Name implements Repository.
func (*ItemRepository) Name() string { return "items" }

// OrderRepository stores shop orders.
type OrderRepository struct{}

// Name implements Repository.
func (*OrderRepository) Name() string { return "orders" }

// Controller holds all shop repositories.
type Controller struct {
	repositories []Repository
	logger       *zap.Logger
}

// NewController creates a Controller.
func NewController(repositories []Repository, logger *zap.Logger) *Controller {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		repositories: repositories,
		logger:       logger,
	}
}

// Repositories returns the injected repositories in registration order.
func (c *Controller) Repositories() []Repository {
	return append([]Repository(nil), c.repositories...)
}

// RepositoryTypes returns the concrete type of each repository.
func (c *Controller) RepositoryTypes() []string {
	return lo.Map(c.repositories, func(r Repository, _ int) string {
		return fmt.Sprintf("%T", r)
	})
}

// PrintBeans logs every injected repository.
func (c *Controller) PrintBeans() {
	for _, r := range c.repositories {
		c.logger.Info("shop repository",
			zap.String("name", r.Name()),
			zap.String("type", fmt.Sprintf("%T", r)),
		)
	}
}

// Module registers both repositories in RepositoriesGroup and the Controller.
// It needs a *zap.Logger in the container.
func Module() beans.ModuleOption {
	return beans.NewModule("shop",
		beans.ProvideSingleton(func(beans.Resolver) (Repository, error) {
			return &ItemRepository{}, nil
		}, beans.Group(RepositoriesGroup)),
		beans.ProvideSingleton(func(beans.Resolver) (Repository, error) {
			return &OrderRepository{}, nil
		}, beans.Group(RepositoriesGroup)),
		beans.ProvideSingleton(func(r beans.Resolver) (*Controller, error) {
			repositories, err := beans.ResolveGroup[Repository](r, RepositoriesGroup)
			if err != nil {
				return nil, err
			}
			logger, err := beans.Resolve[*zap.Logger](r)
			if err != nil {
				return nil, err
			}
			return NewController(repositories, logger), nil
		}),
	)
}
