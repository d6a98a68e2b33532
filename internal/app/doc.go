// Package app ties resource acquisition and release to the process lifetime.
//
// The startup routine is supplied by the database collaborator; its failure
// degrades the start instead of aborting it. Teardown closes registered
// resources exactly once, in reverse order.
package app
