// Package middleware contains HTTP middleware for the Fiber application.
//
// # Components
//
//   - auth: API key validation protecting the generation endpoints.
//   - rayid: assigns every request a unique id (RayID), stored in the context
//     and echoed in the response headers for tracing.
//
// Both are registered globally in the start command; rayid first so that
// every log line of a request carries its id.
package middleware
