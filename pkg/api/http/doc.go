// Package http provides the HTTP REST API implementation.
//
// The HTTP server exposes endpoints for:
//   - Graphiti integration status
//   - State marker inspection
//   - Health checks
//   - Prometheus metrics
package http
