package generation

import "time"

// Config holds configuration for the generation service.
type Config struct {
	// DefaultStrategy is used when a request names none.
	DefaultStrategy string `mapstructure:"default_strategy" default:"cluster_bias"`
	// Seed fixes the seed of requests that carry none. Zero draws a fresh seed.
	Seed uint64 `mapstructure:"seed" default:"0"`
	// CacheTTLSeconds is how long identical requests reuse a result. Zero disables caching.
	CacheTTLSeconds int `mapstructure:"cache_ttl_seconds" default:"300"`
	// SnapshotPrefix is the object key prefix of configuration snapshots.
	SnapshotPrefix string `mapstructure:"snapshot_prefix" default:"snapshots/"`
	// Persist stores reports and snapshots when the backing stores are available.
	Persist bool `mapstructure:"persist" default:"true"`
	// AutoMigrate creates or updates the report table at startup.
	AutoMigrate bool `mapstructure:"auto_migrate" default:"true"`
}

// CacheTTL returns the result cache lifetime.
func (c Config) CacheTTL() time.Duration {
	if c.CacheTTLSeconds <= 0 {
		return 0
	}
	return time.Duration(c.CacheTTLSeconds) * time.Second
}
