package blob

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jobdeck/jobdeck/pkg/types"
)

// blobFileName is the on-disk name of the table blob inside the data dir.
const blobFileName = "applications.table"

// FileBackend stores the table blob as a single file under a data directory.
type FileBackend struct {
	path string
}

// NewFileBackend returns a file backend rooted at dataDir. The directory is
// created lazily on the first Write; a missing directory on Read is just
// "not found".
func NewFileBackend(dataDir string) *FileBackend {
	if dataDir == "" {
		dataDir = "."
	}
	return &FileBackend{path: filepath.Join(dataDir, blobFileName)}
}

// Read returns the blob file contents, or ErrBlobNotFound when the file
// does not exist yet.
func (b *FileBackend) Read() ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if os.IsNotExist(err) {
		return nil, types.ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", b.path, err)
	}
	return data, nil
}

// Write replaces the blob file atomically using the temp-file, fsync,
// rename pattern. A failed write leaves the previous file untouched.
func (b *FileBackend) Write(data []byte) error {
	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".table-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing blob: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
