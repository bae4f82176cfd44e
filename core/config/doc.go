// Package config provides configuration management for the item-bias service.
//
// It loads a .env file if present, then maps environment variables onto the
// Config struct through Viper. Defaults come from the `default` struct tags of
// each section.
//
// # Configuration Structure
//
//   - Server: HTTP port, API key and body limit
//   - Database: MySQL or SQLite connection for generation reports
//   - Storage: S3/MinIO credentials and bucket for configuration snapshots
//   - Log: logging level and format
//   - Generation: default strategy, seed, cache TTL and persistence switches
//
// Nested keys map to upper-case variables joined by underscores, so
// generation.cache_ttl_seconds is set with GENERATION_CACHE_TTL_SECONDS.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
