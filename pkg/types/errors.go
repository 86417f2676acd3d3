package types

import "errors"

// Service operation errors.
var (
	ErrNotFound     = errors.New("application not found")
	ErrDuplicateURL = errors.New("duplicate application url")
	ErrInvalidInput = errors.New("invalid input")
)

// Storage errors.
var (
	// ErrBlobNotFound is returned by Backend.Read when no table blob has
	// been written yet. Callers treat it as "first run", never as failure.
	ErrBlobNotFound = errors.New("table blob not found")

	// ErrCorruptTable is returned by the codec when the blob cannot be
	// parsed. The store recovers by starting from an empty table.
	ErrCorruptTable = errors.New("corrupt table blob")

	// ErrInvalidRestore is returned when imported bytes do not parse as a
	// well-formed table. Nothing is persisted in that case.
	ErrInvalidRestore = errors.New("invalid restore data")

	// ErrPersistence wraps backend write failures. Write errors are never
	// swallowed; the caller must know the change is not durable.
	ErrPersistence = errors.New("persistence failure")
)
