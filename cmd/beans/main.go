// Command beans builds the demo container and runs every component once.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/kyunghwan/beans"
	"github.com/kyunghwan/beans/internal/app"
	"github.com/kyunghwan/beans/internal/config"
	"github.com/kyunghwan/beans/internal/event"
	"github.com/kyunghwan/beans/internal/logger"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "beans:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	flags := pflag.NewFlagSet("beans", pflag.ContinueOnError)
	configPath := flags.StringP("config", "c", "", "path to a configuration file")
	mode := flags.StringP("mode", "m", "", "validator mode overriding the configuration (manual, rules, tags)")
	lifetime := flags.StringP("lifetime", "l", "", "validator lifetime overriding the configuration (singleton, prototype)")
	printSchema := flags.Bool("print-schema", false, "print the configuration file JSON Schema and exit")
	if err := flags.Parse(args); err != nil {
		return err
	}

	if *printSchema {
		schema, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(os.Stdout, string(schema))
		return err
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}

	if *mode != "" {
		if cfg.Validation.Mode, err = event.ParseMode(*mode); err != nil {
			return err
		}
	}
	if *lifetime != "" {
		if cfg.Validation.Lifetime, err = beans.ParseLifetime(*lifetime); err != nil {
			return err
		}
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	a, err := app.New(cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Error("close", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.Run(ctx)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
