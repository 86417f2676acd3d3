package types

// Backend is the raw byte storage contract for the table blob. The record
// store depends on nothing else; implementations are selected once per
// process by configuration and injected at construction.
//
// Write must be atomic from the caller's point of view: after a failed Write
// the previous blob content is still what Read returns, never a partial blob.
type Backend interface {
	// Read returns the current table blob. Returns ErrBlobNotFound when no
	// blob has been written yet (including "backing store not configured").
	Read() ([]byte, error)

	// Write replaces the table blob wholesale.
	Write(data []byte) error
}
