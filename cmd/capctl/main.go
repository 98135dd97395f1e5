package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nhl-cap-service/internal/cli"
	"nhl-cap-service/internal/config"
	"nhl-cap-service/internal/logging"
	"nhl-cap-service/internal/server"
)

const appVersion = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg := config.Load()
	level := os.Getenv("LOG_LEVEL")
	if level == "" {
		level = "warn"
	}
	logger := logging.NewLogger(logging.Config{
		Level:   level,
		Format:  os.Getenv("LOG_FORMAT"),
		Output:  os.Stderr,
		Service: "capctl",
		Version: appVersion,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := cli.NewDeps(cfg, server.NewProvider(cfg, logger, nil))
	if err := cli.ExecuteContext(ctx, deps, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
