// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and integrates with the Fiber web framework.
//
// # Context Awareness
//
// WithRayID extracts the request id from a Fiber context and attaches it to
// the log entry, so all logs of one request can be correlated. WithGeneration
// tags a logger with the generation id and seed, which is enough to replay the
// run.
//
// # Configuration
//
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Server started")
//
//	l := logger.WithGeneration(log, id, seed)
//	l.Warn("Too many good items in pool, not enough trash to remove")
package logger
