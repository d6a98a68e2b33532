// Package mongo owns the document-database client lifecycle.
//
// Connect constructs the client without dialing; Initialize and Close are
// wired into the application lifecycle, Ping into the readiness probe. An
// unreachable deployment therefore degrades the start instead of aborting it.
package mongo
