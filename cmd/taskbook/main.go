package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"taskbook/internal/cli"
	"taskbook/internal/config"
	"taskbook/internal/errors"
	"taskbook/internal/logging"
)

func main() {
	// A local .env file may supply the TASKBOOK_* variables.
	godotenv.Load()

	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Application.Timeout)
	defer cancel()

	factory := NewRepositoryFactory(cfg)
	repo, closeRepo, err := factory.CreateRepository(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating repository: %v\n", err)
		os.Exit(1)
	}
	defer closeRepo()

	logging.Debugf("using %s driver\n", cfg.Database.Driver)

	root := cli.NewRootCommand(repo, cfg)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetUserMessage(err))
		os.Exit(1)
	}
}
