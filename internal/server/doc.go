// Package server exposes the data sources over HTTP.
//
// Routes:
//
//	GET /health             database reachability; 503 when the pool cannot ping
//	GET <metrics_path>      Prometheus metrics
//	GET /v1/players/{kind}  every record of one kind as a JSON array
//	GET /v1/players         every kind at once, fetched concurrently
package server
