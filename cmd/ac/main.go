package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"ac-tracker/internal/cli"
	"ac-tracker/internal/config"
	"ac-tracker/internal/errors"
	"ac-tracker/internal/logging"
)

func main() {
	errorHandler := cli.NewErrorHandler()

	// Defaults, then config file, then environment; flags are applied by the root command
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", errorHandler.HandleSimple(err))
		os.Exit(errorHandler.ExitCode(err))
	}
	logging.Debug("configuration loaded", "instance", cfg.GetInstancePath(), "env", config.GetEnvironment())

	root := cli.NewRootCommand(cfg, cli.DefaultAPIFactory)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := root.ExecuteContext(ctx); err != nil {
		prefix := "Error"
		if errors.IsFatal(err) {
			prefix = "Fatal"
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", prefix, err)
		stop()
		os.Exit(errorHandler.ExitCode(err))
	}
}
