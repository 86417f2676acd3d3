package types

import "errors"

// Config holds backend selection and parameters. Resolved once per process;
// the concrete Backend built from it is injected into the record store at
// construction, never branched on inside business logic.
type Config struct {
	Backend string      `json:"backend" yaml:"backend"`
	DataDir string      `json:"data_dir" yaml:"data_dir"`
	Redis   RedisConfig `json:"redis" yaml:"redis"`
}

// RedisConfig holds the parameters for the remote blob backend.
type RedisConfig struct {
	Addr     string `json:"addr" yaml:"addr"`
	Password string `json:"password" yaml:"password"`
	DB       int    `json:"db" yaml:"db"`
	Key      string `json:"key" yaml:"key"`
}

// Supported backend names.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrRedisAddrEmpty = errors.New("redis backend requires an address")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendFile:   true,
	BackendRedis:  true,
	BackendSQLite: true,
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return ErrBackendUnknown
	}
	if c.Backend == BackendRedis && c.Redis.Addr == "" {
		return ErrRedisAddrEmpty
	}
	return nil
}
