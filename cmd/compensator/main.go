// Package main is the compensator CLI. It lists undo operations that failed
// while a unit of work was compensating and replays them against the item
// store once it has recovered.
//
//	APP_PROFILE=prod compensator list --limit 20
//	APP_PROFILE=prod compensator replay --format json
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err := newRootCommand(openRuntime).ExecuteContext(ctx)
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	if errors.Is(err, errReplayIncomplete) {
		os.Exit(exitReplayIncomplete)
	}
	os.Exit(exitCommandError)
}
