package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr error
	}{
		{
			name:   "file backend",
			config: Config{Backend: BackendFile, DataDir: "/tmp/deck"},
		},
		{
			name:   "sqlite backend",
			config: Config{Backend: BackendSQLite, DataDir: "/tmp/deck"},
		},
		{
			name:   "redis backend with addr",
			config: Config{Backend: BackendRedis, Redis: RedisConfig{Addr: "localhost:6379"}},
		},
		{
			name:    "empty backend rejected",
			config:  Config{},
			wantErr: ErrBackendEmpty,
		},
		{
			name:    "unknown backend rejected",
			config:  Config{Backend: "postgres"},
			wantErr: ErrBackendUnknown,
		},
		{
			name:    "redis backend requires addr",
			config:  Config{Backend: BackendRedis},
			wantErr: ErrRedisAddrEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
