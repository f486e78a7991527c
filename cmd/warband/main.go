// Warband - collection companion for your champion roster.
//
// An offline-first CLI and TUI for tracking characters, resources,
// tasks, and milestones, with an optional synced roster backend.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ember-forge/warband/internal/cli"
	"github.com/ember-forge/warband/internal/telemetry"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	telemetryClient := telemetry.New()
	defer telemetryClient.Close()

	if err := cli.Execute(ctx, telemetryClient); err != nil {
		os.Exit(1)
	}
}
