// Package app wires the demo components into one container.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kyunghwan/beans"
	"github.com/kyunghwan/beans/internal/config"
	"github.com/kyunghwan/beans/internal/event"
	"github.com/kyunghwan/beans/internal/person"
	"github.com/kyunghwan/beans/internal/scope"
	"github.com/kyunghwan/beans/internal/shop"
	"github.com/kyunghwan/beans/internal/student"
	"github.com/kyunghwan/beans/validation"
)

// App owns the provider built from configuration.
type App struct {
	cfg      *config.Config
	logger   *zap.Logger
	provider beans.Provider
}

// New builds the container described by cfg and installs it as the default
// provider.
func New(cfg *config.Config, logger *zap.Logger) (*App, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	c := beans.NewCollection()
	if err := c.AddModules(Module(cfg, logger)); err != nil {
		return nil, err
	}

	provider, err := c.BuildWithOptions(&beans.ProviderOptions{Logger: logger})
	if err != nil {
		return nil, err
	}
	beans.SetDefaultProvider(provider)

	logger.Info("container ready",
		zap.String("provider", provider.ID()),
		zap.Int("services", c.Count()),
		zap.String("validation_mode", string(cfg.Validation.Mode)),
		zap.Stringer("validation_lifetime", cfg.Validation.Lifetime),
	)

	return &App{
		cfg:      cfg,
		logger:   logger,
		provider: provider,
	}, nil
}

// Module registers every component of the application.
func Module(cfg *config.Config, logger *zap.Logger) beans.ModuleOption {
	return beans.NewModule("app",
		beans.ProvideInstance(logger),
		beans.ProvideInstance(cfg),
		person.Module(),
		shop.Module(),
		scope.Module(),
		student.Module(),
		event.Module(cfg.Validation.Mode, cfg.Validation.Lifetime),
	)
}

// Provider returns the application's provider.
func (a *App) Provider() beans.Provider {
	return a.provider
}

// Validate validates e with the configured validator.
func (a *App) Validate(e *event.Event) (*validation.Errors, error) {
	svc, err := beans.Resolve[*event.Service](a.provider)
	if err != nil {
		return nil, err
	}
	return svc.Validate(e)
}

// Run exercises each component once and logs what it sees.
func (a *App) Run(ctx context.Context) error {
	steps := []struct {
		name string
		run  func() error
	}{
		{"person", a.runPerson},
		{"shop", a.runShop},
		{"scope", a.runScope},
		{"student", a.runStudent},
		{"validation", a.runValidation},
	}

	for _, step := range steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := step.run(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return nil
}

func (a *App) runPerson() error {
	controller, err := beans.Resolve[*person.Controller](a.provider)
	if err != nil {
		return err
	}

	saved, err := controller.Save("kyunghwan")
	if err != nil {
		return err
	}
	a.logger.Info("person saved", zap.String("id", saved.ID), zap.String("name", saved.Name))

	if _, err := controller.Save(" "); errors.Is(err, validation.ErrValidationFailed) {
		a.logger.Info("person rejected", zap.Error(err))
	}

	return nil
}

func (a *App) runShop() error {
	controller, err := beans.Resolve[*shop.Controller](a.provider)
	if err != nil {
		return err
	}

	controller.PrintBeans()
	return nil
}

func (a *App) runScope() error {
	single, err := beans.Resolve[*scope.Single](a.provider)
	if err != nil {
		return err
	}
	single2, err := beans.Resolve[*scope.Single](a.provider)
	if err != nil {
		return err
	}

	proto, err := single.Proto()
	if err != nil {
		return err
	}
	proto2, err := single.Proto()
	if err != nil {
		return err
	}

	a.logger.Info("scope",
		zap.Bool("singleton_shared", single == single2),
		zap.String("proto", proto.ID()),
		zap.String("proto2", proto2.ID()),
	)
	return nil
}

func (a *App) runStudent() error {
	enroll, err := beans.Resolve[*student.AController](a.provider)
	if err != nil {
		return err
	}
	list, err := beans.Resolve[*student.BController](a.provider)
	if err != nil {
		return err
	}

	enroll.Enroll("kim")
	a.logger.Info("students", zap.Strings("names", list.Students()))
	return nil
}

func (a *App) runValidation() error {
	for _, e := range []*event.Event{{Idx: 1}, {Idx: 2, Title: "Conference"}} {
		errs, err := a.Validate(e)
		if err != nil {
			return err
		}

		a.logger.Info("event validated",
			zap.Int64("idx", e.Idx),
			zap.Bool("has_errors", errs.HasErrors()),
		)
		for _, oe := range errs.AllErrors() {
			a.logger.Info("validation error",
				zap.String("field", oe.Field),
				zap.Strings("codes", oe.Codes),
				zap.String("message", oe.DefaultMessage),
			)
		}
	}

	return nil
}

// Close closes the provider and clears the default provider.
func (a *App) Close() error {
	if beans.DefaultProvider() == a.provider {
		beans.SetDefaultProvider(nil)
	}
	return a.provider.Close()
}
