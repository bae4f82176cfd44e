// Package generation runs biased item placements end to end and exposes them
// over HTTP.
//
// One run takes a Request (strategy, seed, and either player settings for a
// standard world or a full world document) and:
//
//  1. builds the world,
//  2. builds and freezes the bias configuration for the strategy,
//  3. promotes major items to advancement or priority,
//  4. plans and applies the pool balance (size correction and placeholders).
//
// All randomness comes from one source seeded with the request seed, so the
// same request always yields the same Result. Results are cached by request
// fingerprint for the configured TTL; concurrent identical requests share one
// run.
//
// # Persistence
//
// When a database is available, a Report row is stored in the
// generation_reports table (gorm). When object storage is available, the
// frozen configuration is stored as JSON under the snapshot prefix (minio).
// Both are optional; the service still runs without them.
//
// # Routes
//
//	POST   /generations               run a generation
//	GET    /generations               list recent reports
//	GET    /generations/:id           one report
//	GET    /generations/:id/snapshot  one configuration snapshot
//	DELETE /generations/:id           remove report and snapshot
package generation
