// Package store is the record store: the only component that reads or
// writes the table blob. Every mutation rewrites the whole blob; there is
// no incremental append. That wholesale-replace strategy trades O(n) cost
// per mutation for immunity to partial-row corruption.
package store

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/jobdeck/jobdeck/internal/table"
	"github.com/jobdeck/jobdeck/pkg/types"
)

// Store orchestrates load-all and save-all against an injected Backend.
type Store struct {
	backend types.Backend
	log     zerolog.Logger
}

// New returns a Store using the given backend.
func New(backend types.Backend, log zerolog.Logger) *Store {
	return &Store{backend: backend, log: log}
}

// LoadAll reads and decodes the full record list. Read-path failures favor
// availability: a missing blob means "first run" and a corrupt or unreadable
// blob is logged and treated as empty. Callers never see a load error turn
// into a crash of the read path.
func (s *Store) LoadAll() ([]types.Application, error) {
	data, err := s.backend.Read()
	if errors.Is(err, types.ErrBlobNotFound) {
		return nil, nil
	}
	if err != nil {
		s.log.Warn().Err(err).Msg("table blob unreadable, starting from empty table")
		return nil, nil
	}

	records, err := table.Decode(data)
	if err != nil {
		s.log.Warn().Err(err).Msg("table blob corrupt, starting from empty table")
		return nil, nil
	}
	return records, nil
}

// SaveAll encodes the full record list and replaces the blob wholesale.
// Write failures are never swallowed: the caller must know the change is
// not durable.
func (s *Store) SaveAll(records []types.Application) error {
	data, err := table.Encode(records)
	if err != nil {
		return fmt.Errorf("%w: encoding table: %v", types.ErrPersistence, err)
	}
	if err := s.backend.Write(data); err != nil {
		return fmt.Errorf("%w: %v", types.ErrPersistence, err)
	}
	return nil
}

// RestoreFrom validates that data parses as a well-formed table, persists
// the bytes verbatim, and returns the resulting record list. Used for
// disaster recovery and import.
func (s *Store) RestoreFrom(data []byte) ([]types.Application, error) {
	records, err := table.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrInvalidRestore, err)
	}
	if err := s.backend.Write(data); err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrPersistence, err)
	}
	return records, nil
}

// Export returns the current table blob bytes for backup. An absent blob
// exports as a header-only table so the result is always importable.
func (s *Store) Export() ([]byte, error) {
	data, err := s.backend.Read()
	if errors.Is(err, types.ErrBlobNotFound) {
		return table.Encode(nil)
	}
	if err != nil {
		return nil, fmt.Errorf("reading table blob: %w", err)
	}
	return data, nil
}
