// Package httpserver implements the HTTP surface using the Echo framework.
//
// It owns middleware (request logging, recovery, correlation, error mapping,
// CORS, metrics), the health and version probes, the root /api/ endpoint, and
// the mount point for route collaborators.
package httpserver
