package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/jsamuelsen11/task-saga-service/internal/adapters/clients/itemstore"
	"github.com/jsamuelsen11/task-saga-service/internal/adapters/journal/sqlite"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/config"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/task-saga-service/internal/platform/logging"
	"github.com/jsamuelsen11/task-saga-service/internal/ports"
)

// errMemoryDriver is returned when a replay is requested against the
// in-memory store, which loses its contents when the service exits.
var errMemoryDriver = errors.New("the memory store driver keeps no state between runs; replay needs store.driver=http")

// runtime holds what a command needs. store is nil when the configured
// driver cannot serve replays.
type runtime struct {
	journal ports.CompensationJournal
	store   ports.ItemStore
	logger  *slog.Logger
	close   func() error
}

// openFunc builds a runtime from the global flags. Tests swap it for one
// backed by memstore and an in-memory journal.
type openFunc func(opts *rootOptions) (*runtime, error)

// openRuntime loads the profile's config, opens the journal, and builds the
// item store client the service itself would use.
func openRuntime(opts *rootOptions) (*runtime, error) {
	var loadOpts []config.Option
	if opts.JournalPath != "" {
		loadOpts = append(loadOpts, config.WithOverrides(map[string]any{
			"saga.journal.path": opts.JournalPath,
		}))
	}
	cfg, err := config.Load(opts.Profile, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	journal, err := sqlite.Open(cfg.Saga.Journal.Path)
	if err != nil {
		return nil, err
	}

	rt := &runtime{journal: journal, logger: logger, close: journal.Close}
	if cfg.Store.Driver == config.DriverHTTP {
		client := httpclient.New(&cfg.Client, "item-store", nil, logger)
		rt.store = itemstore.NewClient(client, cfg.Client.Token, logger)
	}
	return rt, nil
}
