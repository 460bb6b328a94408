// Package controller holds the HTTP middlewares and debug handlers shared by
// the API server.
//
//   - WithCORS answers preflight requests for the configured origins.
//   - WithLogger tags each request with an ID and writes an access log.
//   - PprofMux serves net/http/pprof under /debug/pprof/.
package controller
