// Shared helpers for jobdeck CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobdeck/internal/blob"
	"github.com/jobdeck/jobdeck/internal/store"
	"github.com/jobdeck/jobdeck/internal/tracker"
)

// newLogger builds the process logger. Human-readable on a terminal,
// structured JSON otherwise.
func newLogger() zerolog.Logger {
	var w io.Writer = os.Stderr
	if fi, err := os.Stderr.Stat(); err == nil && fi.Mode()&os.ModeCharDevice != 0 {
		w = zerolog.ConsoleWriter{Out: os.Stderr}
	}
	return zerolog.New(w).With().Timestamp().Logger()
}

// openService builds the backend selected by configuration and wires the
// record store and lifecycle service on top of it. The caller must call the
// returned closer when done.
func openService(log zerolog.Logger) (*tracker.Service, func(), error) {
	cfg, err := backendConfig()
	if err != nil {
		return nil, nil, err
	}

	backend, err := blob.Open(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("open backend: %w", err)
	}

	closer := func() {
		if c, ok := backend.(io.Closer); ok {
			_ = c.Close()
		}
	}

	st := store.New(backend, log)
	return tracker.New(st, log), closer, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
