// Package metrics provides Prometheus metrics for monitoring.
//
// Key metrics:
//   - Fetch counts by record kind and result
//   - Fetch latency and the row count of the last successful fetch
//   - Database connection pool stats (via the client_golang DBStats collector)
package metrics
