package blob

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/pkg/types"
)

func TestOpenFileBackend(t *testing.T) {
	backend, err := Open(types.Config{Backend: types.BackendFile, DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileBackend{}, backend)
}

func TestOpenSQLite(t *testing.T) {
	backend, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteBackend{}, backend)
	backend.(*SQLiteBackend).Close()
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		config  types.Config
		wantErr error
	}{
		{"empty backend", types.Config{}, types.ErrBackendEmpty},
		{"unknown backend", types.Config{Backend: "dynamo"}, types.ErrBackendUnknown},
		{"redis without addr", types.Config{Backend: types.BackendRedis}, types.ErrRedisAddrEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Open(tt.config)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
