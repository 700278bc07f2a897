package cli

import (
	"log/slog"

	"github.com/roach88/contacts/internal/command"
	"github.com/roach88/contacts/internal/store"
)

// openDispatcher opens the configured database and wraps it in a
// Dispatcher. The caller owns the returned store and must close it.
func openDispatcher(opts *RootOptions) (*store.Store, *command.Dispatcher, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	log.Debug("opening database", "path", opts.Database)
	st, err := store.Open(opts.Database)
	if err != nil {
		log.Error("database unavailable", "path", opts.Database, "error", err)
		return nil, nil, err
	}
	return st, command.NewDispatcher(st, log), nil
}

// closeStore closes st, logging any error.
func closeStore(opts *RootOptions, st *store.Store) {
	if err := st.Close(); err != nil && opts.Logger != nil {
		opts.Logger.Error("error closing database", "error", err)
	}
}
