// Package database handles database connections and schema inspection.
//
// It wraps GORM to open either MySQL (production) or SQLite (local runs and
// tests) based on the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, tunes the connection pool and pings the
// database before returning. The service treats the database as optional:
// without it, generation reports are simply not persisted.
//
// # Schema Inspection
//
// TableColumns and MissingColumns read the live table definition, so a
// deployment that does not auto-migrate can detect a stale schema at startup.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Warn("Database unavailable", zap.Error(err))
//	}
//
//	missing, err := database.MissingColumns(db, "generation_reports", []string{"id", "seed"})
package database
