// Package blob provides the interchangeable table blob backends: local
// filesystem, Redis, and SQLite. All three satisfy the same two-method
// contract; the choice is made once from configuration and the resulting
// backend is injected into the record store.
package blob

import (
	"fmt"

	"github.com/jobdeck/jobdeck/pkg/types"
)

// Open builds the Backend selected by cfg. The config is validated first,
// so an unknown backend name fails here rather than deep inside an I/O call.
func Open(cfg types.Config) (types.Backend, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("backend config: %w", err)
	}

	switch cfg.Backend {
	case types.BackendFile:
		return NewFileBackend(cfg.DataDir), nil
	case types.BackendRedis:
		return NewRedisBackend(cfg.Redis)
	case types.BackendSQLite:
		return OpenSQLiteBackend(cfg.DataDir)
	default:
		// Validate guards this; kept for exhaustiveness.
		return nil, fmt.Errorf("backend config: %w", types.ErrBackendUnknown)
	}
}
