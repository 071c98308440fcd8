// Command badges builds analyzer status badges.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/smartcontractkit/analyzer-badges/commands"
	"github.com/smartcontractkit/analyzer-badges/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	lvl, err := logger.ParseLevel(os.Getenv("BADGES_LOG_LEVEL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid BADGES_LOG_LEVEL: %v\n", err)
		return err
	}

	lcfg := logger.Config{Level: lvl}
	lggr, err := lcfg.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		return err
	}
	defer func() { _ = lggr.Sync() }()

	cmd, err := commands.NewCommand(commands.Config{Logger: lggr})
	if err != nil {
		lggr.Errorw("Failed to create command", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cmd.ExecuteContext(ctx)
}
